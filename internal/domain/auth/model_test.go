package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakhaar/internal/core/apperror"
)

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		role string
		want Capabilities
	}{
		{RoleStorekeeper, Capabilities{}},
		{RoleAgaasime, Capabilities{CanApprove: true, CanSubmitDirect: true}},
		{RoleWasiir, Capabilities{CanManageUsers: true, CanSubmitDirect: true}},
		{"unknown", Capabilities{}},
		{"", Capabilities{}},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, CapabilitiesFor(tt.role))
		})
	}
}

func TestUserValidate(t *testing.T) {
	ctx := context.Background()

	valid := NewUser("salah", "hash", "Salah Axmed", RoleStorekeeper)
	require.NoError(t, valid.Validate(ctx))

	tests := []struct {
		name   string
		mutate func(u *User)
	}{
		{"blank username", func(u *User) { u.Username = "  " }},
		{"blank name", func(u *User) { u.Name = "" }},
		{"unknown role", func(u *User) { u.Role = "boss" }},
		{"unknown status", func(u *User) { u.Status = "Frozen" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewUser("salah", "hash", "Salah Axmed", RoleStorekeeper)
			tt.mutate(u)

			err := u.Validate(ctx)
			require.Error(t, err)
			appErr, _ := apperror.AsAppError(err)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
		})
	}
}

func TestCanLogin(t *testing.T) {
	u := NewUser("salah", "hash", "Salah Axmed", RoleStorekeeper)
	require.NoError(t, u.CanLogin())

	u.Status = StatusInactive
	err := u.CanLogin()
	require.Error(t, err)
	appErr, _ := apperror.AsAppError(err)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
}
