package usecase

import (
	"context"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// MatchingUsecase drives the donation matching workflow: volunteering for a
// request, confirming completion, and listing the actor's open commitments.
type MatchingUsecase interface {
	// Volunteer commits the acting user's donor record to a request. The
	// actor must be a donor, must not be the requester, and must not have
	// volunteered for the request before. On success the requester (when
	// known) is notified, atomically with the event creation.
	Volunteer(ctx context.Context, actorID, requestID uuid.UUID) (*entity.DonationEvent, error)

	// CompleteDonation confirms a donation happened. Only the event's donor
	// user or the request's requester may complete. Completion marks the
	// event, awards any newly reached badges, and notifies both parties in
	// a single transaction. Re-completing a completed event is a no-op.
	CompleteDonation(ctx context.Context, actorID, eventID uuid.UUID) error

	// InvolvedEvents lists events where the actor is the donor or the
	// requester, newest first.
	InvolvedEvents(ctx context.Context, actorID uuid.UUID) ([]*entity.DonationEvent, error)
}
