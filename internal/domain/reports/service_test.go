package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
	"bakhaar/internal/domain/activity"
	"bakhaar/internal/domain/auth"
	"bakhaar/internal/domain/item"
)

// --- fakes ---

type fakeItems struct{ items []item.Item }

func (f *fakeItems) List(ctx context.Context) ([]item.Item, error) { return f.items, nil }
func (f *fakeItems) FindByNameCategory(ctx context.Context, name, category string) (*item.Item, error) {
	return nil, apperror.NewNotFound("item", name)
}
func (f *fakeItems) Create(ctx context.Context, it *item.Item) error { return nil }

type fakeActivities struct{ acts []activity.Activity }

func (f *fakeActivities) List(ctx context.Context) ([]activity.Activity, error) { return f.acts, nil }
func (f *fakeActivities) ListByStatus(ctx context.Context, status activity.Status) ([]activity.Activity, error) {
	var out []activity.Activity
	for _, a := range f.acts {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}
func (f *fakeActivities) GetByID(ctx context.Context, activityID id.ID) (*activity.Activity, error) {
	return nil, apperror.NewNotFound("activity", activityID)
}
func (f *fakeActivities) Create(ctx context.Context, a *activity.Activity) error { return nil }
func (f *fakeActivities) UpdateStatusFromPending(ctx context.Context, activityID id.ID, to activity.Status) (bool, error) {
	return false, nil
}

type fakeUsers struct{ users []auth.User }

func (f *fakeUsers) List(ctx context.Context) ([]auth.User, error) { return f.users, nil }
func (f *fakeUsers) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	return nil, apperror.NewNotFound("user", userID)
}
func (f *fakeUsers) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	return nil, apperror.NewNotFound("user", username)
}
func (f *fakeUsers) Create(ctx context.Context, u *auth.User) error { return nil }
func (f *fakeUsers) Update(ctx context.Context, u *auth.User) error { return nil }
func (f *fakeUsers) Delete(ctx context.Context, userID id.ID) error { return nil }

func mov(date, user string, dir activity.Direction, qty int64, name string, status activity.Status) activity.Activity {
	return activity.Activity{
		Date: date, Direction: dir, Quantity: qty, ItemName: name,
		Recipient: "Somewhere", User: user, Status: status,
	}
}

func newTestService(acts []activity.Activity, items []item.Item, users []auth.User) *Service {
	return NewService(&fakeItems{items: items}, &fakeActivities{acts: acts}, &fakeUsers{users: users})
}

// --- tests ---

func TestQueryUnknownType(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.Query(context.Background(), Request{Type: "bogus"})
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
}

func TestInventoryReportDropsZeroRows(t *testing.T) {
	svc := newTestService([]activity.Activity{
		mov("01/06/2025", "Salah Axmed", activity.DirectionIn, 10, "Laptop", activity.StatusApproved),
		mov("02/06/2025", "Salah Axmed", activity.DirectionIn, 5, "Buug", activity.StatusApproved),
		mov("03/06/2025", "Salah Axmed", activity.DirectionOut, 5, "Buug", activity.StatusApproved),
	}, []item.Item{{Name: "Kursi", Category: "General"}}, nil)

	report, err := svc.Query(context.Background(), Request{Type: TypeInventory})
	require.NoError(t, err)

	assert.Equal(t, "Inventory Summary Report", report.Title)
	assert.Equal(t, []string{"Item Name", "Category", "Quantity"}, report.Headers)
	// Buug netted to zero, Kursi never moved. Only Laptop survives.
	require.Len(t, report.Rows, 1)
	assert.Equal(t, []string{"Laptop", "General", "10"}, report.Rows[0])
}

func TestMovementReportDateFilter(t *testing.T) {
	svc := newTestService([]activity.Activity{
		mov("01/06/2025", "A", activity.DirectionIn, 1, "X", activity.StatusApproved),
		mov("15/06/2025", "A", activity.DirectionIn, 2, "X", activity.StatusApproved),
		mov("30/06/2025", "A", activity.DirectionIn, 3, "X", activity.StatusApproved),
	}, nil, nil)

	tests := []struct {
		name     string
		from, to string
		wantRows int
	}{
		{"iso bounds", "2025-06-10", "2025-06-20", 1},
		{"storage format bounds", "10/06/2025", "20/06/2025", 1},
		{"from only", "2025-06-10", "", 2},
		{"to only", "", "2025-06-10", 1},
		{"no bounds", "", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := svc.Query(context.Background(), Request{Type: TypeMovement, From: tt.from, To: tt.to})
			require.NoError(t, err)
			assert.Len(t, report.Rows, tt.wantRows)
		})
	}
}

func TestMovementReportRangeInclusive(t *testing.T) {
	svc := newTestService([]activity.Activity{
		mov("10/06/2025", "A", activity.DirectionIn, 1, "X", activity.StatusApproved),
		mov("20/06/2025", "A", activity.DirectionIn, 2, "X", activity.StatusApproved),
	}, nil, nil)

	report, err := svc.Query(context.Background(), Request{
		Type: TypeMovement, From: "2025-06-10", To: "2025-06-20",
	})
	require.NoError(t, err)
	assert.Len(t, report.Rows, 2)
}

func TestMovementReportUnparseableDateAlwaysKept(t *testing.T) {
	acts := []activity.Activity{
		mov("garbage-date", "A", activity.DirectionIn, 1, "X", activity.StatusApproved),
	}
	svc := newTestService(acts, nil, nil)

	report, err := svc.Query(context.Background(), Request{
		Type: TypeMovement, From: "2030-01-01", To: "2030-01-02",
	})
	require.NoError(t, err)
	assert.Len(t, report.Rows, 1)
}

func TestMovementReportUserFilter(t *testing.T) {
	svc := newTestService([]activity.Activity{
		mov("01/06/2025", "Salah Axmed", activity.DirectionIn, 1, "X", activity.StatusApproved),
		mov("02/06/2025", "Abdinur Xasan", activity.DirectionIn, 2, "X", activity.StatusApproved),
	}, nil, nil)

	for _, user := range []string{"", "ALL"} {
		report, err := svc.Query(context.Background(), Request{Type: TypeMovement, User: user})
		require.NoError(t, err)
		assert.Len(t, report.Rows, 2)
	}

	report, err := svc.Query(context.Background(), Request{Type: TypeMovement, User: "Salah Axmed"})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, "Salah Axmed", report.Rows[0][3])
}

func TestMovementReportRowShape(t *testing.T) {
	svc := newTestService([]activity.Activity{
		mov("01/06/2025", "Salah Axmed", activity.DirectionOut, 2, "Chair", ""),
	}, nil, nil)

	report, err := svc.Query(context.Background(), Request{Type: TypeMovement})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	// Legacy blank status renders as Approved.
	assert.Equal(t, []string{"01/06/2025", "Bixiyay: 2 Chair", "Somewhere", "Salah Axmed", "Approved"}, report.Rows[0])
}

func TestUsersReportIgnoresFilters(t *testing.T) {
	svc := newTestService(nil, nil, []auth.User{
		{Name: "Maxamed Cali", Role: auth.RoleWasiir, Status: auth.StatusActive},
		{Name: "Salah Axmed", Role: auth.RoleStorekeeper, Status: auth.StatusInactive},
	})

	report, err := svc.Query(context.Background(), Request{
		Type: TypeUsers, From: "2030-01-01", To: "2030-01-01", User: "Nobody",
	})
	require.NoError(t, err)

	assert.Equal(t, "User Management Report", report.Title)
	assert.Empty(t, report.DateRangeTitle)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, []string{"Maxamed Cali", "wasiir", "Active"}, report.Rows[0])
}

func TestRangeTitles(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	report, err := svc.Query(context.Background(), Request{Type: TypeMovement, From: "2025-06-01", To: "2025-06-30"})
	require.NoError(t, err)
	assert.Equal(t, "Range: 01/06/2025 - 30/06/2025", report.DateRangeTitle)

	report, err = svc.Query(context.Background(), Request{Type: TypeMovement, From: "2025-06-01"})
	require.NoError(t, err)
	assert.Equal(t, "Laga bilaabo: 01/06/2025", report.DateRangeTitle)

	report, err = svc.Query(context.Background(), Request{Type: TypeMovement, To: "2025-06-30"})
	require.NoError(t, err)
	assert.Equal(t, "Ku eg: 30/06/2025", report.DateRangeTitle)

	report, err = svc.Query(context.Background(), Request{Type: TypeMovement})
	require.NoError(t, err)
	assert.Empty(t, report.DateRangeTitle)
}
