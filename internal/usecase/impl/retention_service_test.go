package impl

import (
	"context"
	"testing"
	"time"

	"raktapulse/internal/domain/entity"
	mockRepo "raktapulse/internal/mocks/repository"
	"raktapulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRetentionService(t *testing.T) (usecase.RetentionUsecase, *mockRepo.MockRequestRepository) {
	t.Helper()

	requestRepo := mockRepo.NewMockRequestRepository(t)
	service := NewRetentionService(RetentionServiceParams{
		RequestRepo: requestRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return service, requestRepo
}

func TestRetentionService_CleanupStale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("applies per-urgency thresholds", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRetentionService(t)

		before := time.Now()

		requestRepo.EXPECT().
			DeleteStaleByUrgency(ctx, entity.UrgencyCritical, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, cutoff time.Time) (int64, error) {
				assert.WithinDuration(t, before.AddDate(0, 0, -3), cutoff, time.Minute)

				return 2, nil
			})
		requestRepo.EXPECT().
			DeleteStaleByUrgency(ctx, entity.UrgencyUrgent, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, cutoff time.Time) (int64, error) {
				assert.WithinDuration(t, before.AddDate(0, 0, -7), cutoff, time.Minute)

				return 1, nil
			})
		requestRepo.EXPECT().
			DeleteStaleByUrgency(ctx, entity.UrgencyNormal, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, cutoff time.Time) (int64, error) {
				assert.WithinDuration(t, before.AddDate(0, 0, -15), cutoff, time.Minute)

				return 4, nil
			})
		requestRepo.EXPECT().
			DeleteInactiveOlderThan(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, cutoff time.Time) (int64, error) {
				assert.WithinDuration(t, before.AddDate(0, 0, -7), cutoff, time.Minute)

				return 3, nil
			})

		report, err := service.CleanupStale(ctx)

		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, int64(2), report.CriticalRemoved)
		assert.Equal(t, int64(1), report.UrgentRemoved)
		assert.Equal(t, int64(4), report.NormalRemoved)
		assert.Equal(t, int64(3), report.InactiveRemoved)
		assert.Equal(t, int64(10), report.Total())
	})

	t.Run("stops on the first failure", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRetentionService(t)

		requestRepo.EXPECT().
			DeleteStaleByUrgency(ctx, entity.UrgencyCritical, mock.Anything).
			Return(int64(0), errors.New("db error"))

		report, err := service.CleanupStale(ctx)

		require.Error(t, err)
		assert.Nil(t, report)
		assert.Contains(t, err.Error(), "db error")
	})
}
