package repository

import (
	"context"
	"errors"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the username or email is taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user account and
// profile persistence. Every user row owns exactly one profile row, created
// together with the account.
type UserRepository interface {
	// Create persists a new user account with its empty profile. The
	// password hash is stored alongside the account and never surfaces on
	// the entity.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// FindByID retrieves a user with their profile and donor link.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by their unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAuthByUsername retrieves a user together with their password
	// hash, for credential verification.
	FindAuthByUsername(ctx context.Context, username string) (*entity.User, string, error)

	// Update modifies the account fields of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// UpdateProfile modifies the profile row of an existing user.
	UpdateProfile(ctx context.Context, profile *entity.Profile) error
}
