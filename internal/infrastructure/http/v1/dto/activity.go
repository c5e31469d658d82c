package dto

import (
	"time"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/domain/activity"
)

// SubmitActivityRequest for POST /activities.
//
// Movements are submitted with structured fields. The legacy `action` string
// ("Geliyay: 5 Laptop" / "Bixiyay: 2 Chair") is still accepted for older
// clients and is decoded server side; a malformed action is rejected.
type SubmitActivityRequest struct {
	Direction string `json:"direction"`
	Quantity  int64  `json:"quantity"`
	ItemName  string `json:"itemName"`
	Action    string `json:"action"` // legacy alternative to the three fields above

	ItemCategory string `json:"itemCategory"`
	Recipient    string `json:"recipient" binding:"required"`
	Comment      string `json:"comment"`
	Date         string `json:"date"` // dd/mm/yyyy, defaults to today
}

// ToDraft converts the request to a movement draft, decoding the legacy
// action string when the structured fields are absent.
func (r SubmitActivityRequest) ToDraft() (activity.Draft, error) {
	d := activity.Draft{
		Direction:    activity.Direction(r.Direction),
		Quantity:     r.Quantity,
		ItemName:     r.ItemName,
		ItemCategory: r.ItemCategory,
		Recipient:    r.Recipient,
		Comment:      r.Comment,
		Date:         r.Date,
	}

	if r.Action != "" {
		if r.Direction != "" || r.Quantity != 0 || r.ItemName != "" {
			return activity.Draft{}, apperror.NewValidation("provide either action or direction/quantity/itemName, not both")
		}
		dir, qty, name, err := activity.ParseAction(r.Action)
		if err != nil {
			return activity.Draft{}, err
		}
		d.Direction = dir
		d.Quantity = qty
		d.ItemName = name
	}

	return d, nil
}

// RejectActivityRequest for POST /activities/:id/reject.
type RejectActivityRequest struct {
	Confirm bool `json:"confirm"`
}

// ActivityResponse contains a single movement record.
type ActivityResponse struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	Action       string    `json:"action"`
	Direction    string    `json:"direction"`
	Quantity     int64     `json:"quantity"`
	ItemName     string    `json:"itemName"`
	ItemCategory string    `json:"itemCategory,omitempty"`
	Recipient    string    `json:"recipient"`
	User         string    `json:"user"`
	Comment      string    `json:"comment,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromActivity creates ActivityResponse from activity.Activity.
func FromActivity(a *activity.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID.String(),
		Date:         a.Date,
		Action:       a.ActionString(),
		Direction:    string(a.Direction),
		Quantity:     a.Quantity,
		ItemName:     a.ItemName,
		ItemCategory: a.ItemCategory,
		Recipient:    a.Recipient,
		User:         a.User,
		Comment:      a.Comment,
		Status:       string(a.EffectiveStatus()),
		CreatedAt:    a.CreatedAt,
	}
}

// FromActivities maps a slice of records.
func FromActivities(acts []activity.Activity) []ActivityResponse {
	out := make([]ActivityResponse, len(acts))
	for i := range acts {
		out[i] = FromActivity(&acts[i])
	}
	return out
}
