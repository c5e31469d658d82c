// Package auth provides authentication and authorization domain logic.
package auth

import (
	"context"
	"strings"
	"time"

	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
)

// Roles known to the system.
const (
	RoleStorekeeper = "storekeeper" // submits movement requests
	RoleAgaasime    = "agaasime"    // director: approves or rejects requests
	RoleWasiir      = "wasiir"      // minister: manages user accounts
)

// User account statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// User represents a system user.
type User struct {
	ID           id.ID     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         string    `db:"role" json:"role"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// NewUser creates a new user account.
func NewUser(username, passwordHash, name, role string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           id.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate validates user data.
func (u *User) Validate(ctx context.Context) error {
	if strings.TrimSpace(u.Username) == "" {
		return apperror.NewValidation("username is required").WithDetail("field", "username")
	}
	if strings.TrimSpace(u.Name) == "" {
		return apperror.NewValidation("name is required").WithDetail("field", "name")
	}
	if !ValidRole(u.Role) {
		return apperror.NewValidation("invalid role").
			WithDetail("field", "role").
			WithDetail("value", u.Role)
	}
	if u.Status != StatusActive && u.Status != StatusInactive {
		return apperror.NewValidation("invalid status").
			WithDetail("field", "status").
			WithDetail("value", u.Status)
	}
	return nil
}

// IsActive reports whether the account may be used.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// CanLogin checks if user can log in.
func (u *User) CanLogin() error {
	if !u.IsActive() {
		return apperror.NewForbidden("account is disabled")
	}
	return nil
}

// ValidRole reports whether the role name is known.
func ValidRole(role string) bool {
	switch role {
	case RoleStorekeeper, RoleAgaasime, RoleWasiir:
		return true
	}
	return false
}

// Capabilities is the per-role permission set. Role gating is enforced here,
// at the service boundary, never by client-side hiding.
type Capabilities struct {
	// CanApprove allows deciding pending movement requests.
	CanApprove bool `json:"canApprove"`
	// CanManageUsers allows creating, updating and deleting accounts.
	CanManageUsers bool `json:"canManageUsers"`
	// CanSubmitDirect admits movements as Approved, bypassing Pending.
	CanSubmitDirect bool `json:"canSubmitDirect"`
}

// CapabilitiesFor returns the capability set of a role.
// Unknown roles get no capabilities.
func CapabilitiesFor(role string) Capabilities {
	switch role {
	case RoleStorekeeper:
		return Capabilities{}
	case RoleAgaasime:
		return Capabilities{CanApprove: true, CanSubmitDirect: true}
	case RoleWasiir:
		return Capabilities{CanManageUsers: true, CanSubmitDirect: true}
	default:
		return Capabilities{}
	}
}
