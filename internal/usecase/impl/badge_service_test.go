package impl

import (
	"context"
	"testing"

	"raktapulse/internal/domain/entity"
	mockRepo "raktapulse/internal/mocks/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBadgeService(t *testing.T) (usecase.BadgeUsecase, *mockRepo.MockBadgeRepository) {
	t.Helper()

	badgeRepo := mockRepo.NewMockBadgeRepository(t)
	service := NewBadgeService(BadgeServiceParams{
		BadgeRepo: badgeRepo,
		Logger:    newDiscardLogger(),
	})

	return service, badgeRepo
}

func TestBadgeService_ListUserBadges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns the user's badges", func(t *testing.T) {
		t.Parallel()

		service, badgeRepo := createTestBadgeService(t)

		userID := uuid.New()
		badges := []*entity.Badge{
			{ID: uuid.New(), Name: entity.BadgeFirstTimeDonor},
			{ID: uuid.New(), Name: entity.BadgeCommunityHero},
		}

		badgeRepo.EXPECT().ListByUser(ctx, userID).Return(badges, nil)

		got, err := service.ListUserBadges(ctx, userID)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, entity.BadgeFirstTimeDonor, got[0].Name)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		t.Parallel()

		service, badgeRepo := createTestBadgeService(t)

		userID := uuid.New()

		badgeRepo.EXPECT().ListByUser(ctx, userID).Return(nil, errors.New("db error"))

		got, err := service.ListUserBadges(ctx, userID)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "db error")
	})
}
