// Package item provides the warehouse item catalog.
// An item is identified by its (name, category) pair; names and categories are
// free text and compared case-sensitively for inventory purposes.
package item

import (
	"context"
	"strings"
	"time"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
)

// Item represents a stock-keeping item in the warehouse.
type Item struct {
	ID        id.ID     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// New creates a new Item with required fields.
func New(name, category string) *Item {
	return &Item{
		ID:        id.New(),
		Name:      name,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate implements basic field validation.
func (i *Item) Validate(ctx context.Context) error {
	if strings.TrimSpace(i.Name) == "" {
		return apperror.NewValidation("item name is required").
			WithDetail("field", "name")
	}
	if strings.TrimSpace(i.Category) == "" {
		return apperror.NewValidation("item category is required").
			WithDetail("field", "category")
	}
	return nil
}

// Family classifies a category into a known family for presentation rules
// (book categories collect subject/grade, electronics collect brand).
type Family string

const (
	FamilyBook        Family = "book"
	FamilyElectronics Family = "electronics"
	FamilyGeneral     Family = "general"
)

// FamilyOf matches a category name against known families.
// Matching is case- and surrounding-whitespace-insensitive, unlike inventory
// keys which stay case-sensitive.
func FamilyOf(category string) Family {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "book", "books", "buug", "buugaag":
		return FamilyBook
	case "electronics", "elektronik", "laptop", "laptops":
		return FamilyElectronics
	default:
		return FamilyGeneral
	}
}
