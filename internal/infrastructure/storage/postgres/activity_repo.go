package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
	"bakhaar/internal/domain/activity"
)

const activitiesTable = "activities"

var activityCols = []string{
	"id", "date", "direction", "quantity", "item_name", "item_category",
	"recipient", "username", "comment", "status", "created_at",
}

// ActivityRepo is the PostgreSQL implementation of activity.Repository.
// The table is append-only; the only UPDATE it ever issues is the status
// compare-and-swap guarding concurrent approve/reject.
type ActivityRepo struct {
	txm *TxManager
}

// NewActivityRepo creates a new activity repository.
func NewActivityRepo(txm *TxManager) *ActivityRepo {
	return &ActivityRepo{txm: txm}
}

var _ activity.Repository = (*ActivityRepo)(nil)

// List retrieves the full log in insertion order.
func (r *ActivityRepo) List(ctx context.Context) ([]activity.Activity, error) {
	sql, args, err := builder().
		Select(activityCols...).
		From(activitiesTable).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var acts []activity.Activity
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &acts, sql, args...); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return acts, nil
}

// ListByStatus retrieves records with the given status, oldest first.
func (r *ActivityRepo) ListByStatus(ctx context.Context, status activity.Status) ([]activity.Activity, error) {
	sql, args, err := builder().
		Select(activityCols...).
		From(activitiesTable).
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var acts []activity.Activity
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &acts, sql, args...); err != nil {
		return nil, fmt.Errorf("list activities by status: %w", err)
	}
	return acts, nil
}

// GetByID retrieves a single record.
func (r *ActivityRepo) GetByID(ctx context.Context, activityID id.ID) (*activity.Activity, error) {
	sql, args, err := builder().
		Select(activityCols...).
		From(activitiesTable).
		Where(squirrel.Eq{"id": activityID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var a activity.Activity
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &a, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("activity", activityID.String())
		}
		return nil, fmt.Errorf("get activity: %w", err)
	}
	return &a, nil
}

// Create appends a new record to the log.
func (r *ActivityRepo) Create(ctx context.Context, a *activity.Activity) error {
	sql, args, err := builder().
		Insert(activitiesTable).
		SetMap(map[string]any{
			"id":            a.ID,
			"date":          a.Date,
			"direction":     a.Direction,
			"quantity":      a.Quantity,
			"item_name":     a.ItemName,
			"item_category": a.ItemCategory,
			"recipient":     a.Recipient,
			"username":      a.User,
			"comment":       a.Comment,
			"status":        a.Status,
			"created_at":    a.CreatedAt,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return nil
}

// UpdateStatusFromPending atomically decides a pending record.
func (r *ActivityRepo) UpdateStatusFromPending(ctx context.Context, activityID id.ID, to activity.Status) (bool, error) {
	sql, args, err := builder().
		Update(activitiesTable).
		Set("status", to).
		Where(squirrel.Eq{"id": activityID, "status": activity.StatusPending}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("update activity status: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
