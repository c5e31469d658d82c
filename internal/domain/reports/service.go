package reports

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/domain/activity"
	"bakhaar/internal/domain/auth"
	"bakhaar/internal/domain/inventory"
	"bakhaar/internal/domain/item"
)

// Service builds filtered reports over the movement log, reusing the
// inventory reconstructor for the stock summary variant.
type Service struct {
	items      item.Repository
	activities activity.Repository
	users      auth.Repository
}

// NewService creates a new reports service.
func NewService(items item.Repository, activities activity.Repository, users auth.Repository) *Service {
	return &Service{items: items, activities: activities, users: users}
}

// Query builds the requested report.
func (s *Service) Query(ctx context.Context, req Request) (*Report, error) {
	if !req.Type.Valid() {
		return nil, apperror.NewValidation("unknown report type").
			WithDetail("type", string(req.Type))
	}

	from := parseDate(req.From)
	to := parseDate(req.To)

	switch req.Type {
	case TypeInventory:
		return s.inventoryReport(ctx, from, to, req.User)
	case TypeMovement:
		return s.movementReport(ctx, from, to, req.User)
	default:
		return s.usersReport(ctx)
	}
}

func (s *Service) inventoryReport(ctx context.Context, from, to *time.Time, user string) (*Report, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	acts, err := s.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	filtered := filterActivities(acts, from, to, user)
	stock := inventory.Compute(items, filtered)

	report := &Report{
		Title:          "Inventory Summary Report",
		DateRangeTitle: rangeTitle(from, to),
		Headers:        []string{"Item Name", "Category", "Quantity"},
	}
	for _, row := range stock.Rows() {
		if row.Quantity == 0 {
			continue
		}
		report.Rows = append(report.Rows, []string{
			row.Name, row.Category, strconv.FormatInt(row.Quantity, 10),
		})
	}
	return report, nil
}

func (s *Service) movementReport(ctx context.Context, from, to *time.Time, user string) (*Report, error) {
	acts, err := s.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	report := &Report{
		Title:          "Warbixinta Dhaqdhaqaaqa Hantida",
		DateRangeTitle: rangeTitle(from, to),
		Headers:        []string{"Date", "Activity", "Recipient/Source", "User", "Status"},
	}
	for _, a := range filterActivities(acts, from, to, user) {
		report.Rows = append(report.Rows, []string{
			a.Date,
			a.ActionString(),
			a.Recipient,
			a.User,
			string(a.EffectiveStatus()),
		})
	}
	return report, nil
}

func (s *Service) usersReport(ctx context.Context) (*Report, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	report := &Report{
		Title:   "User Management Report",
		Headers: []string{"Name", "Role", "Status"},
	}
	for _, u := range users {
		report.Rows = append(report.Rows, []string{u.Name, u.Role, u.Status})
	}
	return report, nil
}

// filterActivities applies the user and date-range filters. A record whose
// stored date does not parse is always kept: the fallback is inclusive.
func filterActivities(acts []activity.Activity, from, to *time.Time, user string) []activity.Activity {
	out := make([]activity.Activity, 0, len(acts))
	for _, a := range acts {
		if user != "" && user != "ALL" && a.User != user {
			continue
		}
		d := parseDate(a.Date)
		if d != nil {
			if from != nil && d.Before(*from) {
				continue
			}
			if to != nil && d.After(*to) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

// parseDate accepts "yyyy-mm-dd" (filter inputs) and "dd/mm/yyyy" (storage).
// Anything else yields nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", activity.DateLayout} {
		if d, err := time.Parse(layout, s); err == nil {
			return &d
		}
	}
	return nil
}

func rangeTitle(from, to *time.Time) string {
	const layout = "02/01/2006"
	switch {
	case from != nil && to != nil:
		return fmt.Sprintf("Range: %s - %s", from.Format(layout), to.Format(layout))
	case from != nil:
		return fmt.Sprintf("Laga bilaabo: %s", from.Format(layout))
	case to != nil:
		return fmt.Sprintf("Ku eg: %s", to.Format(layout))
	default:
		return ""
	}
}
