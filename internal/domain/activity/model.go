// Package activity provides the append-only movement log, the approval
// lifecycle of its records and the admission checks for new movements.
package activity

import (
	"context"
	"strings"
	"time"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
)

// Direction of a stock movement.
type Direction string

const (
	// DirectionIn marks an inbound movement ("Geliyay").
	DirectionIn Direction = "Geliyay"
	// DirectionOut marks an outbound movement ("Bixiyay").
	DirectionOut Direction = "Bixiyay"
)

// Valid reports whether the direction token is one of the two known markers.
func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Status is the approval lifecycle state of an activity.
// The empty status marks legacy records and counts as approved.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// CountsTowardStock reports whether reconstruction includes this status.
// Only approved (or legacy status-absent) records contribute to stock.
func (s Status) CountsTowardStock() bool {
	return s == "" || s == StatusApproved
}

// Terminal reports whether no further transition is permitted.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// DateLayout is the storage format for activity dates.
const DateLayout = "02/01/2006"

// Activity is a single movement record in the append-only log.
// Direction, Quantity and ItemName are distinct typed fields; the legacy
// "<Direction>: <qty> <name>" encoding exists only at the codec boundary.
// Records are never deleted; only Status is ever mutated, by the approval
// state machine.
type Activity struct {
	ID           id.ID     `db:"id" json:"id"`
	Date         string    `db:"date" json:"date"` // dd/mm/yyyy
	Direction    Direction `db:"direction" json:"direction"`
	Quantity     int64     `db:"quantity" json:"quantity"`
	ItemName     string    `db:"item_name" json:"itemName"`
	ItemCategory string    `db:"item_category" json:"itemCategory,omitempty"`
	Recipient    string    `db:"recipient" json:"recipient"`
	User         string    `db:"username" json:"user"`
	Comment      string    `db:"comment" json:"comment,omitempty"`
	Status       Status    `db:"status" json:"status,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// Parsable reports whether the record carries a well-formed movement.
// Malformed legacy rows (unknown direction, non-positive or missing quantity,
// empty item name) are skipped by all stock computations.
func (a *Activity) Parsable() bool {
	return a.Direction.Valid() && a.Quantity > 0 && a.ItemName != ""
}

// ActionString renders the legacy encoded form, e.g. "Geliyay: 10 Chair".
func (a *Activity) ActionString() string {
	return FormatAction(a.Direction, a.Quantity, a.ItemName)
}

// EffectiveStatus returns the status with the legacy default applied.
func (a *Activity) EffectiveStatus() Status {
	if a.Status == "" {
		return StatusApproved
	}
	return a.Status
}

// Validate checks a record produced by admission (not legacy rows).
func (a *Activity) Validate(ctx context.Context) error {
	if !a.Direction.Valid() {
		return apperror.NewParse("unknown direction token").
			WithDetail("direction", string(a.Direction))
	}
	if a.Quantity <= 0 {
		return apperror.NewValidation("quantity must be a positive integer").
			WithDetail("field", "quantity").
			WithDetail("value", a.Quantity)
	}
	if strings.TrimSpace(a.ItemName) == "" {
		return apperror.NewValidation("item name is required").
			WithDetail("field", "itemName")
	}
	if _, err := time.Parse(DateLayout, a.Date); err != nil {
		return apperror.NewValidation("date must be dd/mm/yyyy").
			WithDetail("field", "date").
			WithDetail("value", a.Date)
	}
	return nil
}
