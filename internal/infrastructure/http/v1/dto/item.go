package dto

import (
	"time"

	"bakhaar/internal/domain/item"
)

// CreateItemRequest for POST /items.
type CreateItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}

// ItemResponse contains catalog item fields. Family tells the client which
// extra fields to collect on inbound submissions (books take subject and
// grade, electronics take brand).
type ItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Family    string    `json:"family"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromItem creates ItemResponse from item.Item.
func FromItem(it *item.Item) ItemResponse {
	return ItemResponse{
		ID:        it.ID.String(),
		Name:      it.Name,
		Category:  it.Category,
		Family:    string(item.FamilyOf(it.Category)),
		CreatedAt: it.CreatedAt,
	}
}

// FromItems maps a slice of items.
func FromItems(items []item.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = FromItem(&items[i])
	}
	return out
}
