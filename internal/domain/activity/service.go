package activity

import (
	"context"
	"fmt"
	"time"

	"bakhaar/internal/core/appctx"
	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
	"bakhaar/internal/core/tx"
	"bakhaar/internal/domain/auth"
	"bakhaar/internal/domain/item"
	"bakhaar/pkg/logger"
)

// StockProvider reports the currently available quantity for an item.
// Implemented by the inventory service; admission consults it before
// letting an outbound movement into the log.
type StockProvider interface {
	Available(ctx context.Context, name, category string) (int64, error)
}

// ItemCatalog is the slice of the item service admission depends on.
type ItemCatalog interface {
	EnsureExists(ctx context.Context, name, category string) (*item.Item, error)
}

// Service provides admission and the approval state machine for the
// movement log.
type Service struct {
	repo  Repository
	items ItemCatalog
	stock StockProvider
	txm   tx.Manager
}

// NewService creates a new activity service.
func NewService(repo Repository, items ItemCatalog, stock StockProvider, txm tx.Manager) *Service {
	return &Service{
		repo:  repo,
		items: items,
		stock: stock,
		txm:   txm,
	}
}

// Draft is a proposed movement before admission.
type Draft struct {
	Direction    Direction
	Quantity     int64
	ItemName     string
	ItemCategory string
	Recipient    string
	Comment      string
	Date         string // dd/mm/yyyy; defaults to today
}

// Submit validates a proposed movement and appends it to the log.
//
// Outbound movements are checked against reconstructed stock and fail with
// INSUFFICIENT_STOCK when the requested quantity exceeds what is available.
// The initial status follows the submitter's capabilities: storekeepers enter
// Pending, roles with CanSubmitDirect enter directly as Approved. Item
// auto-creation and the log append run in one transaction.
func (s *Service) Submit(ctx context.Context, d Draft) (*Activity, error) {
	caller := appctx.GetUser(ctx)
	if caller == nil {
		return nil, apperror.NewUnauthorized("authentication required")
	}

	status := StatusPending
	if auth.CapabilitiesFor(caller.Role).CanSubmitDirect {
		status = StatusApproved
	}

	date := d.Date
	if date == "" {
		date = time.Now().Format(DateLayout)
	}

	a := &Activity{
		ID:           id.New(),
		Date:         date,
		Direction:    d.Direction,
		Quantity:     d.Quantity,
		ItemName:     d.ItemName,
		ItemCategory: d.ItemCategory,
		Recipient:    d.Recipient,
		User:         caller.Name,
		Comment:      d.Comment,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}

	if err := a.Validate(ctx); err != nil {
		return nil, err
	}

	if a.Direction == DirectionOut {
		available, err := s.stock.Available(ctx, a.ItemName, a.ItemCategory)
		if err != nil {
			return nil, fmt.Errorf("compute available stock: %w", err)
		}
		if a.Quantity > available {
			return nil, apperror.NewInsufficientStock(a.ItemName, a.ItemCategory, a.Quantity, available)
		}
	}

	err := s.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if a.Direction == DirectionIn {
			if _, err := s.items.EnsureExists(ctx, a.ItemName, a.ItemCategory); err != nil {
				return err
			}
		}
		if err := s.repo.Create(ctx, a); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "movement admitted",
		"id", a.ID,
		"action", a.ActionString(),
		"status", a.Status,
	)
	return a, nil
}

// Approve moves a pending record to Approved.
//
// Approving an already approved record is a no-op. Approving a rejected
// record is a conflict: terminal states admit no transition.
func (s *Service) Approve(ctx context.Context, activityID id.ID) (*Activity, error) {
	return s.decide(ctx, activityID, StatusApproved)
}

// Reject moves a pending record to Rejected. The confirmed flag is the
// human-in-the-loop gate: the transition is refused without it.
func (s *Service) Reject(ctx context.Context, activityID id.ID, confirmed bool) (*Activity, error) {
	if !confirmed {
		return nil, apperror.NewValidation("rejection requires explicit confirmation").
			WithDetail("field", "confirm")
	}
	return s.decide(ctx, activityID, StatusRejected)
}

func (s *Service) decide(ctx context.Context, activityID id.ID, to Status) (*Activity, error) {
	caller := appctx.GetUser(ctx)
	if caller == nil {
		return nil, apperror.NewUnauthorized("authentication required")
	}
	if !auth.CapabilitiesFor(caller.Role).CanApprove {
		return nil, apperror.NewForbidden("deciding requests requires the agaasime role")
	}

	swapped, err := s.repo.UpdateStatusFromPending(ctx, activityID, to)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	a, err := s.repo.GetByID(ctx, activityID)
	if err != nil {
		return nil, err
	}

	if !swapped {
		// Lost the race or the record was never pending. Re-applying the
		// same terminal status stays a no-op; anything else is a conflict.
		if a.EffectiveStatus() != to {
			return nil, apperror.NewConflict("request has already been decided").
				WithDetail("status", string(a.Status))
		}
		return a, nil
	}

	logger.Info(ctx, "request decided",
		"id", a.ID,
		"action", a.ActionString(),
		"status", to,
		"decided_by", caller.Username,
	)
	return a, nil
}

// List returns the full movement log.
func (s *Service) List(ctx context.Context) ([]Activity, error) {
	return s.repo.List(ctx)
}

// ListPending returns undecided requests, oldest first.
func (s *Service) ListPending(ctx context.Context) ([]Activity, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}
