package repository

import (
	"context"
	"errors"
	"time"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for donation event persistence.
var (
	// ErrDonationNotFound is returned when a donation event is not found.
	ErrDonationNotFound = errors.New("donation event not found")
	// ErrDuplicateDonation is returned when the donor already volunteered
	// for the same request. Backed by a unique index on (donor_id, request_id).
	ErrDuplicateDonation = errors.New("donation event already exists for this donor and request")
	// ErrDonationAlreadyCompleted is returned when the event was completed
	// before this call, usually by a concurrent completion.
	ErrDonationAlreadyCompleted = errors.New("donation event is already completed")
)

// DonationRepository defines the standard operations for donation event
// persistence.
type DonationRepository interface {
	// Create persists a new donation event. Returns ErrDuplicateDonation
	// when the (donor, request) pair already exists.
	Create(ctx context.Context, event *entity.DonationEvent) error

	// FindByID retrieves a single donation event by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationEvent, error)

	// MarkCompleted flips a donation event to completed at the given time.
	// Returns ErrDonationAlreadyCompleted when the event was completed
	// concurrently, so callers can skip the completion side effects.
	MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error

	// FindInvolvedByUser retrieves donation events the user participates in
	// either as the volunteering donor or as the requester, newest first.
	FindInvolvedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DonationEvent, error)

	// CountCompletedByDonorUser returns how many completed donations the
	// given user account has made. Drives badge thresholds.
	CountCompletedByDonorUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountCompleted returns the total number of completed donations.
	CountCompleted(ctx context.Context) (int64, error)
}
