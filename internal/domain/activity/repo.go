package activity

import (
	"context"

	"bakhaar/internal/core/id"
)

// Repository defines the interface for Activity persistence.
// The log is append-only: no delete operation exists, and the only permitted
// mutation is the status compare-and-swap used by the approval state machine.
type Repository interface {
	// List retrieves the full log in insertion order.
	List(ctx context.Context) ([]Activity, error)

	// ListByStatus retrieves records with the given status, oldest first.
	ListByStatus(ctx context.Context, status Status) ([]Activity, error)

	// GetByID retrieves a single record.
	GetByID(ctx context.Context, activityID id.ID) (*Activity, error)

	// Create appends a new record to the log.
	Create(ctx context.Context, a *Activity) error

	// UpdateStatusFromPending atomically moves a record from Pending to the
	// given terminal status. Returns false when the record was not Pending
	// (already decided by a concurrent call, or never pending).
	UpdateStatusFromPending(ctx context.Context, activityID id.ID, to Status) (bool, error)
}
