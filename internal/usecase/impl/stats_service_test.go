package impl

import (
	"context"
	"testing"

	"raktapulse/internal/domain/entity"
	mockRepo "raktapulse/internal/mocks/repository"
	"raktapulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsServiceMocks struct {
	donorRepo    *mockRepo.MockDonorRepository
	requestRepo  *mockRepo.MockRequestRepository
	donationRepo *mockRepo.MockDonationRepository
	bankRepo     *mockRepo.MockBankRepository
}

func createTestStatsService(t *testing.T) (usecase.StatsUsecase, *statsServiceMocks) {
	t.Helper()

	mocks := &statsServiceMocks{
		donorRepo:    mockRepo.NewMockDonorRepository(t),
		requestRepo:  mockRepo.NewMockRequestRepository(t),
		donationRepo: mockRepo.NewMockDonationRepository(t),
		bankRepo:     mockRepo.NewMockBankRepository(t),
	}

	service := NewStatsService(StatsServiceParams{
		DonorRepo:    mocks.donorRepo,
		RequestRepo:  mocks.requestRepo,
		DonationRepo: mocks.donationRepo,
		BankRepo:     mocks.bankRepo,
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

func TestStatsService_Dashboard(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("aggregates the homepage counters", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestStatsService(t)

		mocks.donorRepo.EXPECT().Count(ctx).Return(int64(50), nil)
		mocks.requestRepo.EXPECT().CountActive(ctx).Return(int64(7), nil)
		mocks.donationRepo.EXPECT().CountCompleted(ctx).Return(int64(20), nil)
		mocks.bankRepo.EXPECT().FindAll(ctx).Return([]*entity.BloodBank{
			{StockAPlus: 10, StockOPlus: 5},
			{StockBMinus: 2},
		}, nil)
		mocks.donorRepo.EXPECT().CountFullyVaccinated(ctx).Return(int64(30), nil)

		stats, err := service.Dashboard(ctx)

		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, int64(98), stats.TotalDonors)
		assert.Equal(t, int64(7), stats.ActiveRequests)
		assert.Equal(t, int64(17), stats.TotalStock)
		assert.Equal(t, int64(177), stats.CompletedDonations)
		assert.Equal(t, int64(531), stats.LivesSaved)
		assert.Equal(t, 60, stats.VaccinatedPercent)
	})

	t.Run("no donors means no vaccination percentage", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestStatsService(t)

		mocks.donorRepo.EXPECT().Count(ctx).Return(int64(0), nil)
		mocks.requestRepo.EXPECT().CountActive(ctx).Return(int64(0), nil)
		mocks.donationRepo.EXPECT().CountCompleted(ctx).Return(int64(0), nil)
		mocks.bankRepo.EXPECT().FindAll(ctx).Return(nil, nil)
		mocks.donorRepo.EXPECT().CountFullyVaccinated(ctx).Return(int64(0), nil)

		stats, err := service.Dashboard(ctx)

		require.NoError(t, err)
		assert.Zero(t, stats.VaccinatedPercent)
		assert.Equal(t, int64(48), stats.TotalDonors)
		assert.Equal(t, int64(157), stats.CompletedDonations)
	})

	t.Run("counter failure aborts", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestStatsService(t)

		mocks.donorRepo.EXPECT().Count(ctx).Return(int64(0), errors.New("db error"))

		stats, err := service.Dashboard(ctx)

		require.Error(t, err)
		assert.Nil(t, stats)
		assert.Contains(t, err.Error(), "db error")
	})
}
