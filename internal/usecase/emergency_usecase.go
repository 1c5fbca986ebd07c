package usecase

import (
	"context"

	"raktapulse/internal/domain/geo"

	"github.com/google/uuid"
)

// EmergencyUsecase broadcasts an urgent need for blood to nearby donors.
type EmergencyUsecase interface {
	// Ping texts every available donor of the blood group within the
	// configured radius of the origin and returns how many were reached.
	// Per-user rate limited; a rejected ping returns ErrRateLimited.
	Ping(ctx context.Context, actorID uuid.UUID, bloodGroup string, origin geo.Origin) (int, error)
}
