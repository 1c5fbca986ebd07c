package impl

import (
	"context"
	"testing"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/repository"
	mockRepo "raktapulse/internal/mocks/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type seedServiceMocks struct {
	hospitalRepo *mockRepo.MockHospitalRepository
	badgeRepo    *mockRepo.MockBadgeRepository
}

func createTestSeedService(t *testing.T) (usecase.SeedUsecase, *seedServiceMocks) {
	t.Helper()

	mocks := &seedServiceMocks{
		hospitalRepo: mockRepo.NewMockHospitalRepository(t),
		badgeRepo:    mockRepo.NewMockBadgeRepository(t),
	}

	service := NewSeedService(SeedServiceParams{
		HospitalRepo: mocks.hospitalRepo,
		BadgeRepo:    mocks.badgeRepo,
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

func TestSeedService_SeedCatalogs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("upserts hospitals and creates missing badges", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestSeedService(t)

		upserted := 0
		mocks.hospitalRepo.EXPECT().
			Upsert(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, hospital *entity.Hospital) error {
				assert.NotEmpty(t, hospital.Name)
				upserted++

				return nil
			})

		mocks.badgeRepo.EXPECT().FindByName(ctx, mock.Anything).Return(nil, repository.ErrBadgeNotFound)
		created := 0
		mocks.badgeRepo.EXPECT().
			Create(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, badge *entity.Badge) error {
				created++

				return nil
			})

		err := service.SeedCatalogs(ctx)

		require.NoError(t, err)
		assert.Equal(t, len(hospitalCatalog()), upserted)
		assert.Equal(t, len(entity.SeedBadges()), created)
	})

	t.Run("existing badges are left alone", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestSeedService(t)

		mocks.hospitalRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
		mocks.badgeRepo.EXPECT().
			FindByName(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, name string) (*entity.Badge, error) {
				return &entity.Badge{ID: uuid.New(), Name: name}, nil
			})

		err := service.SeedCatalogs(ctx)

		require.NoError(t, err)
	})
}
