package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
	"bakhaar/internal/domain/activity"
	"bakhaar/internal/domain/item"
)

type fakeItemRepo struct{ items []item.Item }

func (f *fakeItemRepo) List(ctx context.Context) ([]item.Item, error) { return f.items, nil }
func (f *fakeItemRepo) FindByNameCategory(ctx context.Context, name, category string) (*item.Item, error) {
	return nil, apperror.NewNotFound("item", name)
}
func (f *fakeItemRepo) Create(ctx context.Context, it *item.Item) error { return nil }

type fakeActivityRepo struct{ acts []activity.Activity }

func (f *fakeActivityRepo) List(ctx context.Context) ([]activity.Activity, error) {
	return f.acts, nil
}
func (f *fakeActivityRepo) ListByStatus(ctx context.Context, status activity.Status) ([]activity.Activity, error) {
	var out []activity.Activity
	for _, a := range f.acts {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeActivityRepo) GetByID(ctx context.Context, activityID id.ID) (*activity.Activity, error) {
	return nil, apperror.NewNotFound("activity", activityID)
}
func (f *fakeActivityRepo) Create(ctx context.Context, a *activity.Activity) error { return nil }
func (f *fakeActivityRepo) UpdateStatusFromPending(ctx context.Context, activityID id.ID, to activity.Status) (bool, error) {
	return false, nil
}

func TestAvailable(t *testing.T) {
	svc := NewService(
		&fakeItemRepo{items: []item.Item{{Name: "Laptop", Category: "Electronics"}}},
		&fakeActivityRepo{acts: []activity.Activity{
			in("01/06/2025", "Laptop", "Electronics", 10, activity.StatusApproved),
			out("02/06/2025", "Laptop", "Electronics", 3, activity.StatusApproved),
		}},
	)
	ctx := context.Background()

	qty, err := svc.Available(ctx, "Laptop", "Electronics")
	require.NoError(t, err)
	assert.Equal(t, int64(7), qty)

	// Empty category resolves through the catalog to the same bucket.
	qty, err = svc.Available(ctx, "Laptop", "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), qty)

	// Unknown buckets report zero.
	qty, err = svc.Available(ctx, "Ghost", "Nowhere")
	require.NoError(t, err)
	assert.Equal(t, int64(0), qty)
}

func TestSummarize(t *testing.T) {
	today := time.Now().Format(activity.DateLayout)

	svc := NewService(
		&fakeItemRepo{},
		&fakeActivityRepo{acts: []activity.Activity{
			in(today, "Laptop", "Electronics", 10, activity.StatusApproved),
			out(today, "Laptop", "Electronics", 2, activity.StatusApproved),
			// Pending records show in today's feed totals but not in stock.
			out(today, "Laptop", "Electronics", 4, activity.StatusPending),
			in("01/01/2020", "Buug", "Books", 5, activity.StatusApproved),
			in("01/01/2020", "Kursi", "General", 1, activity.StatusRejected),
		}},
	)

	d, err := svc.Summarize(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(13), d.TotalStock)
	assert.Equal(t, int64(10), d.InToday)
	assert.Equal(t, int64(6), d.OutToday)
	assert.Equal(t, 1, d.PendingCount)
}
