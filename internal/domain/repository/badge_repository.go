package repository

import (
	"context"
	"errors"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBadgeNotFound is returned when a badge is not found in the catalog.
var ErrBadgeNotFound = errors.New("badge not found")

// BadgeRepository defines the standard operations for the badge catalog and
// per-user grants.
type BadgeRepository interface {
	// Create adds a badge to the catalog.
	Create(ctx context.Context, badge *entity.Badge) error

	// FindByName retrieves a catalog badge by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Badge, error)

	// Grant awards a badge to a user. Granting an already-held badge is a
	// no-op, so repeated threshold crossings stay idempotent.
	Grant(ctx context.Context, userID, badgeID uuid.UUID) error

	// ListByUser retrieves all badges held by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Badge, error)
}
