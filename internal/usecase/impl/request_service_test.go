package impl

import (
	"context"
	"testing"
	"time"

	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/repository"
	mockRepo "raktapulse/internal/mocks/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestRequestService(t *testing.T) (usecase.RequestUsecase, *mockRepo.MockRequestRepository) {
	t.Helper()

	requestRepo := mockRepo.NewMockRequestRepository(t)
	service := NewRequestService(RequestServiceParams{
		RequestRepo: requestRepo,
		Logger:      newDiscardLogger(),
	})

	return service, requestRepo
}

func TestRequestService_CreateRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		requesterID := uuid.New()
		input := &usecase.CreateRequestInput{
			RequesterID:   &requesterID,
			PatientName:   "  Sita Rai  ",
			BloodGroup:    "B+",
			Urgency:       entity.UrgencyCritical,
			Hospital:      "Bir Hospital",
			ContactNumber: "9841000000",
			RequiredDate:  time.Now().Add(24 * time.Hour),
		}

		requestRepo.EXPECT().
			Create(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, request *entity.BloodRequest) error {
				request.ID = uuid.New()

				return nil
			})

		request, err := service.CreateRequest(ctx, input)

		require.NoError(t, err)
		require.NotNil(t, request)
		assert.Equal(t, "Sita Rai", request.PatientName)
		assert.Equal(t, entity.RequestStatusActive, request.Status)
		assert.Equal(t, entity.UrgencyCritical, request.Urgency)
	})

	t.Run("missing required fields are named", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestRequestService(t)

		input := &usecase.CreateRequestInput{
			PatientName: "Sita Rai",
			BloodGroup:  "B+",
			Urgency:     entity.UrgencyNormal,
		}

		request, err := service.CreateRequest(ctx, input)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, err.Error(), "hospital")
		assert.Contains(t, err.Error(), "contact_number")
	})

	t.Run("invalid urgency", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestRequestService(t)

		input := &usecase.CreateRequestInput{
			PatientName:   "Sita Rai",
			BloodGroup:    "B+",
			Urgency:       "PANIC",
			Hospital:      "Bir Hospital",
			ContactNumber: "9841000000",
		}

		request, err := service.CreateRequest(ctx, input)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidUrgency)
	})

	t.Run("invalid blood group", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestRequestService(t)

		input := &usecase.CreateRequestInput{
			PatientName:   "Sita Rai",
			BloodGroup:    "X-",
			Urgency:       entity.UrgencyNormal,
			Hospital:      "Bir Hospital",
			ContactNumber: "9841000000",
		}

		request, err := service.CreateRequest(ctx, input)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)
	})
}

func TestRequestService_ListRequests(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty status returns every request newest first", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		newer := &entity.BloodRequest{ID: uuid.New(), Status: entity.RequestStatusCompleted}
		older := &entity.BloodRequest{ID: uuid.New(), Status: entity.RequestStatusActive}

		requestRepo.EXPECT().FindByStatus(ctx, "").Return([]*entity.BloodRequest{newer, older}, nil)

		requests, err := service.ListRequests(ctx, "  ")

		require.NoError(t, err)
		require.Len(t, requests, 2)
		assert.Equal(t, newer.ID, requests[0].ID)
	})

	t.Run("status filter passes through", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		accepted := &entity.BloodRequest{ID: uuid.New(), Status: entity.RequestStatusAccepted}
		requestRepo.EXPECT().FindByStatus(ctx, entity.RequestStatusAccepted).Return([]*entity.BloodRequest{accepted}, nil)

		requests, err := service.ListRequests(ctx, entity.RequestStatusAccepted)

		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, accepted.ID, requests[0].ID)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestRequestService(t)

		requests, err := service.ListRequests(ctx, "Archived")

		require.Error(t, err)
		assert.Nil(t, requests)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRequestStatus)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		requestRepo.EXPECT().FindByStatus(ctx, "").Return(nil, errors.New("db error"))

		requests, err := service.ListRequests(ctx, "")

		require.Error(t, err)
		assert.Nil(t, requests)
		assert.Contains(t, err.Error(), "db error")
	})
}

func TestRequestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("requester accepts their request", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		requesterID := uuid.New()
		requestID := uuid.New()
		request := &entity.BloodRequest{
			ID:          requestID,
			RequesterID: &requesterID,
			Status:      entity.RequestStatusActive,
		}

		requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
		requestRepo.EXPECT().
			Update(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, updated *entity.BloodRequest) error {
				assert.Equal(t, entity.RequestStatusAccepted, updated.Status)
				assert.NotNil(t, updated.AcceptedAt)

				return nil
			})

		updated, err := service.UpdateStatus(ctx, requesterID, requestID, entity.RequestStatusAccepted)

		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, entity.RequestStatusAccepted, updated.Status)
		require.NotNil(t, updated.AcceptedAt)
		assert.WithinDuration(t, time.Now(), *updated.AcceptedAt, time.Minute)
	})

	t.Run("reopening clears the accepted stamp", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		requesterID := uuid.New()
		requestID := uuid.New()
		acceptedAt := time.Now().Add(-time.Hour)
		request := &entity.BloodRequest{
			ID:          requestID,
			RequesterID: &requesterID,
			Status:      entity.RequestStatusAccepted,
			AcceptedAt:  &acceptedAt,
		}

		requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)
		requestRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

		updated, err := service.UpdateStatus(ctx, requesterID, requestID, entity.RequestStatusActive)

		require.NoError(t, err)
		assert.Equal(t, entity.RequestStatusActive, updated.Status)
		assert.Nil(t, updated.AcceptedAt)
	})

	t.Run("only the requester may transition", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		requesterID := uuid.New()
		requestID := uuid.New()
		request := &entity.BloodRequest{ID: requestID, RequesterID: &requesterID}

		requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)

		updated, err := service.UpdateStatus(ctx, uuid.New(), requestID, entity.RequestStatusCompleted)

		require.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domainerrors.ErrNotRequestOwner)
	})

	t.Run("anonymous requests have no owner", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		requestID := uuid.New()
		request := &entity.BloodRequest{ID: requestID}

		requestRepo.EXPECT().FindByID(ctx, requestID).Return(request, nil)

		updated, err := service.UpdateStatus(ctx, uuid.New(), requestID, entity.RequestStatusCompleted)

		require.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domainerrors.ErrNotRequestOwner)
	})

	t.Run("unknown status is rejected before loading", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestRequestService(t)

		updated, err := service.UpdateStatus(ctx, uuid.New(), uuid.New(), "Archived")

		require.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRequestStatus)
	})

	t.Run("unknown request", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		requestID := uuid.New()
		requestRepo.EXPECT().FindByID(ctx, requestID).Return(nil, repository.ErrRequestNotFound)

		updated, err := service.UpdateStatus(ctx, uuid.New(), requestID, entity.RequestStatusCompleted)

		require.Error(t, err)
		assert.Nil(t, updated)
		assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
	})
}

func TestRequestService_GetRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unknown request", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		id := uuid.New()
		requestRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRequestNotFound)

		request, err := service.GetRequest(ctx, id)

		require.Error(t, err)
		assert.Nil(t, request)
		assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		requestRepo.EXPECT().FindByID(ctx, mock.Anything).Return(nil, errors.New("db error"))

		request, err := service.GetRequest(ctx, uuid.New())

		require.Error(t, err)
		assert.Nil(t, request)
		assert.Contains(t, err.Error(), "db error")
	})
}

func TestRequestService_LiveMap(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("clips points to the bounding box", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		inside := &entity.BloodRequest{
			ID:          uuid.New(),
			PatientName: "Sita Rai",
			BloodGroup:  "B+",
			Urgency:     entity.UrgencyCritical,
			Hospital:    "Bir Hospital",
			Latitude:    floatPtr(27.7048),
			Longitude:   floatPtr(85.3131),
		}
		outside := &entity.BloodRequest{
			ID:        uuid.New(),
			Latitude:  floatPtr(28.2096),
			Longitude: floatPtr(83.9856),
		}

		requestRepo.EXPECT().FindActiveLocated(ctx).Return([]*entity.BloodRequest{inside, outside}, nil)

		// Kathmandu valley box.
		bound := &orb.Bound{Min: orb.Point{85.2, 27.6}, Max: orb.Point{85.5, 27.8}}

		points, err := service.LiveMap(ctx, bound)

		require.NoError(t, err)
		require.Len(t, points, 1)
		assert.Equal(t, inside.ID, points[0].ID)
		assert.Equal(t, "Bir Hospital", points[0].Hospital)
		assert.Equal(t, 27.7048, points[0].Latitude)
	})

	t.Run("nil bound keeps every located request", func(t *testing.T) {
		t.Parallel()

		service, requestRepo := createTestRequestService(t)

		located := &entity.BloodRequest{ID: uuid.New(), Latitude: floatPtr(27.7), Longitude: floatPtr(85.3)}
		requestRepo.EXPECT().FindActiveLocated(ctx).Return([]*entity.BloodRequest{located}, nil)

		points, err := service.LiveMap(ctx, nil)

		require.NoError(t, err)
		assert.Len(t, points, 1)
	})
}
