package dto

import (
	"time"

	"bakhaar/internal/domain/auth"
)

// LoginRequest for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ToCredentials converts request to domain credentials.
func (r LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{Username: r.Username, Password: r.Password}
}

// LoginResponse returns the issued token together with the account.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UserResponse contains public account fields.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromUser creates UserResponse from auth.User.
func FromUser(u *auth.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// FromSession creates LoginResponse from auth.Session.
func FromSession(s *auth.Session) LoginResponse {
	return LoginResponse{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		User:      FromUser(s.User),
	}
}

// CreateUserRequest for POST /users.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// ToInput converts request to service input.
func (r CreateUserRequest) ToInput() auth.CreateUserInput {
	return auth.CreateUserInput{
		Username: r.Username,
		Password: r.Password,
		Name:     r.Name,
		Role:     r.Role,
	}
}

// UpdateUserRequest for PATCH /users/:id. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
	Password *string `json:"password"`
}

// ToInput converts request to service input.
func (r UpdateUserRequest) ToInput() auth.UpdateUserInput {
	return auth.UpdateUserInput{
		Name:     r.Name,
		Role:     r.Role,
		Status:   r.Status,
		Password: r.Password,
	}
}
