package repository

import (
	"context"
	"errors"
	"time"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when a blood request is not found.
var ErrRequestNotFound = errors.New("blood request not found")

// RequestRepository defines the standard operations for blood request
// persistence.
type RequestRepository interface {
	// Create persists a new blood request.
	Create(ctx context.Context, request *entity.BloodRequest) error

	// FindByID retrieves a single request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error)

	// FindActive retrieves all requests still in the active status, most
	// urgent first and newest first within the same urgency.
	FindActive(ctx context.Context) ([]*entity.BloodRequest, error)

	// FindByStatus retrieves requests in the given status, newest first.
	// An empty status returns every request.
	FindByStatus(ctx context.Context, status string) ([]*entity.BloodRequest, error)

	// FindActiveLocated retrieves active requests that carry coordinates,
	// for the live map feed.
	FindActiveLocated(ctx context.Context) ([]*entity.BloodRequest, error)

	// Update modifies an existing request.
	Update(ctx context.Context, request *entity.BloodRequest) error

	// CountActive returns the number of requests in the active status.
	CountActive(ctx context.Context) (int64, error)

	// DeleteStaleByUrgency removes active requests of the given urgency
	// created before the cutoff and returns how many were removed.
	DeleteStaleByUrgency(ctx context.Context, urgency string, cutoff time.Time) (int64, error)

	// DeleteInactiveOlderThan removes non-active requests created before
	// the cutoff and returns how many were removed.
	DeleteInactiveOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
