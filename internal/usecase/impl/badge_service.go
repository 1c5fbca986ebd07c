package impl

import (
	"context"
	"log/slog"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// badgeService implements the BadgeUsecase interface.
type badgeService struct {
	badgeRepo repository.BadgeRepository
	logger    *slog.Logger
}

// BadgeServiceParams holds dependencies for badgeService, injected by Fx.
type BadgeServiceParams struct {
	fx.In

	BadgeRepo repository.BadgeRepository
	Logger    *slog.Logger
}

// NewBadgeService is the constructor for badgeService.
func NewBadgeService(params BadgeServiceParams) usecase.BadgeUsecase {
	return &badgeService{
		badgeRepo: params.BadgeRepo,
		logger:    params.Logger,
	}
}

// ListUserBadges returns every badge the user holds, oldest grant first.
func (srv *badgeService) ListUserBadges(ctx context.Context, userID uuid.UUID) ([]*entity.Badge, error) {
	badges, err := srv.badgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user badges")
	}

	return badges, nil
}
