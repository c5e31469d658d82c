package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakhaar/internal/core/appctx"
	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
)

type fakeUserRepo struct {
	byID       map[id.ID]*User
	byUsername map[string]*User
	deleted    []id.ID
}

func newFakeUserRepo(users ...*User) *fakeUserRepo {
	r := &fakeUserRepo{
		byID:       make(map[id.ID]*User),
		byUsername: make(map[string]*User),
	}
	for _, u := range users {
		r.byID[u.ID] = u
		r.byUsername[u.Username] = u
	}
	return r
}

func (r *fakeUserRepo) List(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	u, ok := r.byID[userID]
	if !ok {
		return nil, apperror.NewNotFound("user", userID)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, apperror.NewNotFound("user", username)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	cp := *u
	r.byID[u.ID] = &cp
	r.byUsername[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return apperror.NewNotFound("user", u.ID)
	}
	cp := *u
	r.byID[u.ID] = &cp
	r.byUsername[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, userID id.ID) error {
	u, ok := r.byID[userID]
	if !ok {
		return apperror.NewNotFound("user", userID)
	}
	delete(r.byUsername, u.Username)
	delete(r.byID, userID)
	r.deleted = append(r.deleted, userID)
	return nil
}

func ctxAs(u *User) context.Context {
	return appctx.WithUser(context.Background(), &appctx.UserContext{
		UserID:   u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	})
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return hash
}

func TestLogin(t *testing.T) {
	u := NewUser("salah", mustHash(t, "salah123"), "Salah Axmed", RoleStorekeeper)
	svc := NewService(newFakeUserRepo(u), NewJWTService(DefaultJWTConfig("test-secret")))

	session, err := svc.Login(context.Background(), Credentials{Username: "salah", Password: "salah123"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "salah", session.User.Username)

	// The issued token round-trips.
	userCtx, err := svc.jwt.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), userCtx.UserID)
}

func TestLoginFailures(t *testing.T) {
	u := NewUser("salah", mustHash(t, "salah123"), "Salah Axmed", RoleStorekeeper)
	disabled := NewUser("dahir", mustHash(t, "dahir123"), "Dahir Yusuf", RoleStorekeeper)
	disabled.Status = StatusInactive
	svc := NewService(newFakeUserRepo(u, disabled), NewJWTService(DefaultJWTConfig("test-secret")))

	tests := []struct {
		name     string
		creds    Credentials
		wantCode string
	}{
		{"unknown username", Credentials{Username: "nobody", Password: "x"}, apperror.CodeUnauthorized},
		{"wrong password", Credentials{Username: "salah", Password: "wrong"}, apperror.CodeUnauthorized},
		{"disabled account", Credentials{Username: "dahir", Password: "dahir123"}, apperror.CodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.creds)
			require.Error(t, err)
			appErr, _ := apperror.AsAppError(err)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestCreateUserRequiresWasiir(t *testing.T) {
	wasiir := NewUser("maxamed", "hash", "Maxamed Cali", RoleWasiir)
	agaasime := NewUser("abdinur", "hash", "Abdinur Xasan", RoleAgaasime)
	repo := newFakeUserRepo(wasiir, agaasime)
	svc := NewService(repo, NewJWTService(DefaultJWTConfig("test-secret")))

	in := CreateUserInput{Username: "cumar", Password: "cumar123", Name: "Cumar Faarax", Role: RoleStorekeeper}

	_, err := svc.CreateUser(ctxAs(agaasime), in)
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)

	_, err = svc.CreateUser(context.Background(), in)
	require.Error(t, err)
	appErr, _ = apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)

	created, err := svc.CreateUser(ctxAs(wasiir), in)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, created.Status)
	assert.NotEqual(t, "cumar123", created.PasswordHash)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	wasiir := NewUser("maxamed", "hash", "Maxamed Cali", RoleWasiir)
	svc := NewService(newFakeUserRepo(wasiir), NewJWTService(DefaultJWTConfig("test-secret")))

	_, err := svc.CreateUser(ctxAs(wasiir), CreateUserInput{
		Username: "maxamed", Password: "x1234", Name: "Another", Role: RoleStorekeeper,
	})
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestUpdateUserPatchesOnlyGivenFields(t *testing.T) {
	wasiir := NewUser("maxamed", "hash", "Maxamed Cali", RoleWasiir)
	target := NewUser("salah", "hash", "Salah Axmed", RoleStorekeeper)
	repo := newFakeUserRepo(wasiir, target)
	svc := NewService(repo, NewJWTService(DefaultJWTConfig("test-secret")))

	newStatus := StatusInactive
	updated, err := svc.UpdateUser(ctxAs(wasiir), target.ID, UpdateUserInput{Status: &newStatus})
	require.NoError(t, err)

	assert.Equal(t, StatusInactive, updated.Status)
	assert.Equal(t, "Salah Axmed", updated.Name)
	assert.Equal(t, RoleStorekeeper, updated.Role)
}

func TestDeleteUser(t *testing.T) {
	wasiir := NewUser("maxamed", "hash", "Maxamed Cali", RoleWasiir)
	target := NewUser("salah", "hash", "Salah Axmed", RoleStorekeeper)
	repo := newFakeUserRepo(wasiir, target)
	svc := NewService(repo, NewJWTService(DefaultJWTConfig("test-secret")))

	// Self-deletion is refused.
	err := svc.DeleteUser(ctxAs(wasiir), wasiir.ID)
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)

	require.NoError(t, svc.DeleteUser(ctxAs(wasiir), target.ID))
	assert.Equal(t, []id.ID{target.ID}, repo.deleted)
}
