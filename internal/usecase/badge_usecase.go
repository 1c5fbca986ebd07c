package usecase

import (
	"context"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// BadgeUsecase exposes the badge catalog held by a user. Awarding happens
// inside the donation completion transaction, not here.
type BadgeUsecase interface {
	// ListUserBadges returns every badge the user holds, oldest grant first.
	ListUserBadges(ctx context.Context, userID uuid.UUID) ([]*entity.Badge, error)
}
