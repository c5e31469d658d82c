package auth

import (
	"context"

	"bakhaar/internal/core/id"
)

// Repository defines the interface for User persistence.
type Repository interface {
	// List retrieves all users ordered by name.
	List(ctx context.Context) ([]User, error)

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, userID id.ID) (*User, error)

	// GetByUsername retrieves a user by username.
	// Returns apperror.NewNotFound when absent.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create inserts a new user.
	Create(ctx context.Context, u *User) error

	// Update modifies an existing user.
	Update(ctx context.Context, u *User) error

	// Delete removes a user account.
	Delete(ctx context.Context, userID id.ID) error
}
