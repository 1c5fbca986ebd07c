package impl

import (
	"context"
	"testing"
	"time"

	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/geo"
	mockRepo "raktapulse/internal/mocks/repository"
	mockService "raktapulse/internal/mocks/service"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type emergencyServiceMocks struct {
	donorRepo   *mockRepo.MockDonorRepository
	smsSender   *mockService.MockSMSSender
	rateLimiter *mockService.MockRateLimiter
}

func createTestEmergencyService(t *testing.T) (usecase.EmergencyUsecase, *emergencyServiceMocks) {
	t.Helper()

	mocks := &emergencyServiceMocks{
		donorRepo:   mockRepo.NewMockDonorRepository(t),
		smsSender:   mockService.NewMockSMSSender(t),
		rateLimiter: mockService.NewMockRateLimiter(t),
	}

	service := NewEmergencyService(EmergencyServiceParams{
		DonorRepo:   mocks.donorRepo,
		SMSSender:   mocks.smsSender,
		RateLimiter: mocks.rateLimiter,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return service, mocks
}

func TestEmergencyService_Ping(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	origin := geo.Origin{Lat: 27.7172, Lon: 85.3240}

	t.Run("texts donors inside the radius only", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestEmergencyService(t)

		actorID := uuid.New()
		// Patan is about 6 km from the origin, Pokhara about 140 km.
		near := &entity.Donor{ID: uuid.New(), Phone: "9841000001", Latitude: floatPtr(27.6644), Longitude: floatPtr(85.3188)}
		far := &entity.Donor{ID: uuid.New(), Phone: "9841000002", Latitude: floatPtr(28.2096), Longitude: floatPtr(83.9856)}
		noPhone := &entity.Donor{ID: uuid.New(), Latitude: floatPtr(27.7100), Longitude: floatPtr(85.3200)}
		unlocated := &entity.Donor{ID: uuid.New(), Phone: "9841000003"}

		mocks.rateLimiter.EXPECT().
			Allow(ctx, "emergency:ping:"+actorID.String(), 10*time.Minute).
			Return(true, nil)
		mocks.donorRepo.EXPECT().
			FindAvailableByGroup(ctx, "O-").
			Return([]*entity.Donor{near, far, noPhone, unlocated}, nil)
		mocks.smsSender.EXPECT().
			Send(ctx, "9841000001", "URGENT: O- blood needed near you. Open the app to respond.").
			Return(nil)

		reached, err := service.Ping(ctx, actorID, "O-", origin)

		require.NoError(t, err)
		assert.Equal(t, 1, reached)
	})

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestEmergencyService(t)

		actorID := uuid.New()
		mocks.rateLimiter.EXPECT().
			Allow(ctx, "emergency:ping:"+actorID.String(), 10*time.Minute).
			Return(false, nil)

		reached, err := service.Ping(ctx, actorID, "O-", origin)

		require.Error(t, err)
		assert.Zero(t, reached)
		assert.ErrorIs(t, err, domainerrors.ErrRateLimited)
	})

	t.Run("invalid blood group", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestEmergencyService(t)

		reached, err := service.Ping(ctx, uuid.New(), "Q+", origin)

		require.Error(t, err)
		assert.Zero(t, reached)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)
	})

	t.Run("a failed text does not stop the fan-out", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestEmergencyService(t)

		actorID := uuid.New()
		first := &entity.Donor{ID: uuid.New(), Phone: "9841000001", Latitude: floatPtr(27.7100), Longitude: floatPtr(85.3200)}
		second := &entity.Donor{ID: uuid.New(), Phone: "9841000002", Latitude: floatPtr(27.7200), Longitude: floatPtr(85.3300)}

		mocks.rateLimiter.EXPECT().Allow(ctx, "emergency:ping:"+actorID.String(), 10*time.Minute).Return(true, nil)
		mocks.donorRepo.EXPECT().FindAvailableByGroup(ctx, "A+").Return([]*entity.Donor{first, second}, nil)
		mocks.smsSender.EXPECT().Send(ctx, "9841000001", mock.Anything).Return(errors.New("gateway timeout"))
		mocks.smsSender.EXPECT().Send(ctx, "9841000002", mock.Anything).Return(nil)

		reached, err := service.Ping(ctx, actorID, "A+", origin)

		require.NoError(t, err)
		assert.Equal(t, 1, reached)
	})

	t.Run("rate limiter failure", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestEmergencyService(t)

		actorID := uuid.New()
		mocks.rateLimiter.EXPECT().
			Allow(ctx, "emergency:ping:"+actorID.String(), 10*time.Minute).
			Return(false, errors.New("redis down"))

		reached, err := service.Ping(ctx, actorID, "O-", origin)

		require.Error(t, err)
		assert.Zero(t, reached)
		assert.Contains(t, err.Error(), "redis down")
	})
}
