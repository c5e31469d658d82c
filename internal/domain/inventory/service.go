package inventory

import (
	"context"
	"fmt"
	"time"

	"bakhaar/internal/domain/activity"
	"bakhaar/internal/domain/item"
)

// Service computes derived stock views over the item and activity repositories.
type Service struct {
	items      item.Repository
	activities activity.Repository
}

// NewService creates a new inventory service.
func NewService(items item.Repository, activities activity.Repository) *Service {
	return &Service{items: items, activities: activities}
}

// Stock reconstructs the current stock mapping from the full log.
func (s *Service) Stock(ctx context.Context) (Stock, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	acts, err := s.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return Compute(items, acts), nil
}

// Available returns the current quantity for one item-category bucket.
// An empty category resolves the same way reconstruction resolves it, so
// admission and reconstruction always consult the same bucket. Unknown
// buckets report zero. Implements activity.StockProvider.
func (s *Service) Available(ctx context.Context, name, category string) (int64, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list items: %w", err)
	}
	acts, err := s.activities.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list activities: %w", err)
	}

	if category == "" {
		for _, it := range items {
			if it.Name == name {
				category = it.Category
				break
			}
		}
	}
	if category == "" {
		category = DefaultCategory
	}

	return Compute(items, acts)[Key{Name: name, Category: category}], nil
}

// Dashboard summarizes the warehouse for the landing view.
type Dashboard struct {
	TotalStock   int64 `json:"totalStock"`
	InToday      int64 `json:"inToday"`
	OutToday     int64 `json:"outToday"`
	PendingCount int   `json:"pendingCount"`
}

// Summarize builds the dashboard: total reconstructed stock, today's inbound
// and outbound volumes, and the number of undecided requests. Today's volumes
// count every parsable record dated today regardless of status, mirroring the
// activity feed rather than the stock ledger.
func (s *Service) Summarize(ctx context.Context) (*Dashboard, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	acts, err := s.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	d := &Dashboard{
		TotalStock: Compute(items, acts).Total(),
	}

	today := time.Now().Format(activity.DateLayout)
	for _, a := range acts {
		if a.Status == activity.StatusPending {
			d.PendingCount++
		}
		if a.Date != today || !a.Parsable() {
			continue
		}
		if a.Direction == activity.DirectionIn {
			d.InToday += a.Quantity
		} else {
			d.OutToday += a.Quantity
		}
	}

	return d, nil
}
