package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bakhaar/internal/core/appctx"
	"bakhaar/internal/core/apperror"
	"bakhaar/internal/core/id"
	"bakhaar/pkg/logger"
)

// Service provides authentication and user management operations.
// User mutation is gated on the CanManageUsers capability here, at the
// service boundary, so it cannot be bypassed by a differently-built client.
type Service struct {
	repo Repository
	jwt  *JWTService
}

// NewService creates a new auth service.
func NewService(repo Repository, jwt *JWTService) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Credentials for login.
type Credentials struct {
	Username string
	Password string
}

// Session is the result of a successful login.
type Session struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}

// Login verifies credentials and issues an access token.
func (s *Service) Login(ctx context.Context, creds Credentials) (*Session, error) {
	u, err := s.repo.GetByUsername(ctx, creds.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid username or password")
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid username or password")
	}

	if err := u.CanLogin(); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(u)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	logger.Info(ctx, "user logged in", "username", u.Username, "role", u.Role)

	return &Session{User: u, Token: token, ExpiresAt: expiresAt}, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// --- User management (wasiir only) ---

// CreateUserInput holds fields for account creation.
type CreateUserInput struct {
	Username string
	Password string
	Name     string
	Role     string
}

// UpdateUserInput holds patchable account fields. Nil means "leave as is".
type UpdateUserInput struct {
	Name     *string
	Role     *string
	Status   *string
	Password *string
}

// ListUsers returns all accounts. Any authenticated user may list.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	if appctx.GetUser(ctx) == nil {
		return nil, apperror.NewUnauthorized("authentication required")
	}
	return s.repo.List(ctx)
}

// CreateUser registers a new account.
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*User, error) {
	if err := s.requireManage(ctx); err != nil {
		return nil, err
	}

	if in.Password == "" {
		return nil, apperror.NewValidation("password is required").WithDetail("field", "password")
	}

	existing, err := s.repo.GetByUsername(ctx, in.Username)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, apperror.NewDuplicate("user", "username", in.Username)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := NewUser(in.Username, hash, in.Name, in.Role)
	if err := u.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info(ctx, "user created", "username", u.Username, "role", u.Role)
	return u, nil
}

// UpdateUser patches an existing account.
func (s *Service) UpdateUser(ctx context.Context, userID id.ID, in UpdateUserInput) (*User, error) {
	if err := s.requireManage(ctx); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Status != nil {
		u.Status = *in.Status
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = time.Now().UTC()

	if err := u.Validate(ctx); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	logger.Info(ctx, "user updated", "username", u.Username)
	return u, nil
}

// DeleteUser removes an account. Self-deletion is refused.
func (s *Service) DeleteUser(ctx context.Context, userID id.ID) error {
	if err := s.requireManage(ctx); err != nil {
		return err
	}

	if caller := appctx.GetUser(ctx); caller != nil && caller.UserID == userID.String() {
		return apperror.NewConflict("cannot delete your own account")
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	logger.Info(ctx, "user deleted", "username", u.Username)
	return nil
}

func (s *Service) requireManage(ctx context.Context) error {
	caller := appctx.GetUser(ctx)
	if caller == nil {
		return apperror.NewUnauthorized("authentication required")
	}
	if !CapabilitiesFor(caller.Role).CanManageUsers {
		return apperror.NewForbidden("user management requires the wasiir role")
	}
	return nil
}
