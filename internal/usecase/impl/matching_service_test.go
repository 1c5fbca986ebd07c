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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchingServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	donorRepo        *mockRepo.MockDonorRepository
	requestRepo      *mockRepo.MockRequestRepository
	donationRepo     *mockRepo.MockDonationRepository
	badgeRepo        *mockRepo.MockBadgeRepository
	notificationRepo *mockRepo.MockNotificationRepository
	factory          *mockRepo.MockRepositoryFactory
}

func createTestMatchingService(t *testing.T) (usecase.MatchingUsecase, *matchingServiceMocks) {
	t.Helper()

	mocks := &matchingServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		donorRepo:        mockRepo.NewMockDonorRepository(t),
		requestRepo:      mockRepo.NewMockRequestRepository(t),
		donationRepo:     mockRepo.NewMockDonationRepository(t),
		badgeRepo:        mockRepo.NewMockBadgeRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
	}

	service := NewMatchingService(MatchingServiceParams{
		TxManager:    mocks.txManager,
		DonorRepo:    mocks.donorRepo,
		RequestRepo:  mocks.requestRepo,
		DonationRepo: mocks.donationRepo,
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

func TestMatchingService_Volunteer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("volunteer creates the event and notifies the requester", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		actorID := uuid.New()
		requesterID := uuid.New()
		donor := &entity.Donor{ID: uuid.New(), UserID: &actorID, Name: "Ram Thapa"}
		request := &entity.BloodRequest{
			ID:          uuid.New(),
			RequesterID: &requesterID,
			PatientName: "Sita Rai",
			BloodGroup:  "B+",
		}

		mocks.donorRepo.EXPECT().FindByUserID(ctx, actorID).Return(donor, nil)
		mocks.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
		mocks.factory.EXPECT().DonationRepo().Return(mocks.donationRepo)
		mocks.factory.EXPECT().NotificationRepo().Return(mocks.notificationRepo)
		mocks.donationRepo.EXPECT().
			Create(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, event *entity.DonationEvent) error {
				event.ID = uuid.New()

				return nil
			})
		mocks.notificationRepo.EXPECT().
			Create(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, notification *entity.Notification) error {
				assert.Equal(t, requesterID, notification.UserID)
				assert.Equal(t, "Ram Thapa volunteered to donate B+ for Sita Rai.", notification.Message)

				return nil
			})
		passthroughTx(mocks.txManager, mocks.factory)

		event, err := service.Volunteer(ctx, actorID, request.ID)

		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, donor.ID, event.DonorID)
		assert.Equal(t, request.ID, event.RequestID)
		assert.Equal(t, actorID, event.DonorUserID)
	})

	t.Run("actor without a donor record", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		actorID := uuid.New()
		mocks.donorRepo.EXPECT().FindByUserID(ctx, actorID).Return(nil, repository.ErrDonorNotFound)

		event, err := service.Volunteer(ctx, actorID, uuid.New())

		require.Error(t, err)
		assert.Nil(t, event)
		assert.ErrorIs(t, err, domainerrors.ErrNotDonor)
	})

	t.Run("volunteering for own request", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		actorID := uuid.New()
		donor := &entity.Donor{ID: uuid.New(), UserID: &actorID, Name: "Ram Thapa"}
		request := &entity.BloodRequest{ID: uuid.New(), RequesterID: &actorID, PatientName: "Ram Thapa"}

		mocks.donorRepo.EXPECT().FindByUserID(ctx, actorID).Return(donor, nil)
		mocks.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)

		event, err := service.Volunteer(ctx, actorID, request.ID)

		require.Error(t, err)
		assert.Nil(t, event)
		assert.ErrorIs(t, err, domainerrors.ErrSelfVolunteer)
	})

	t.Run("double volunteer maps to duplicate error", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		actorID := uuid.New()
		requesterID := uuid.New()
		donor := &entity.Donor{ID: uuid.New(), UserID: &actorID, Name: "Ram Thapa"}
		request := &entity.BloodRequest{ID: uuid.New(), RequesterID: &requesterID, PatientName: "Sita Rai"}

		mocks.donorRepo.EXPECT().FindByUserID(ctx, actorID).Return(donor, nil)
		mocks.requestRepo.EXPECT().FindByID(ctx, request.ID).Return(request, nil)
		mocks.factory.EXPECT().DonationRepo().Return(mocks.donationRepo)
		mocks.donationRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateDonation)
		passthroughTx(mocks.txManager, mocks.factory)

		event, err := service.Volunteer(ctx, actorID, request.ID)

		require.Error(t, err)
		assert.Nil(t, event)
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateVolunteer)
	})

	t.Run("unknown request", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		actorID := uuid.New()
		requestID := uuid.New()
		donor := &entity.Donor{ID: uuid.New(), UserID: &actorID}

		mocks.donorRepo.EXPECT().FindByUserID(ctx, actorID).Return(donor, nil)
		mocks.requestRepo.EXPECT().FindByID(ctx, requestID).Return(nil, repository.ErrRequestNotFound)

		event, err := service.Volunteer(ctx, actorID, requestID)

		require.Error(t, err)
		assert.Nil(t, event)
		assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
	})
}

func TestMatchingService_CompleteDonation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("donor completes and earns the first badge", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		actorID := uuid.New()
		requesterID := uuid.New()
		eventID := uuid.New()
		donorID := uuid.New()
		event := &entity.DonationEvent{
			ID:          eventID,
			DonorID:     donorID,
			RequestID:   uuid.New(),
			DonorUserID: actorID,
		}
		request := &entity.BloodRequest{ID: event.RequestID, RequesterID: &requesterID, PatientName: "Sita Rai"}
		donor := &entity.Donor{ID: donorID, UserID: &actorID, Name: "Ram Thapa"}
		badge := &entity.Badge{ID: uuid.New(), Name: entity.BadgeFirstTimeDonor}

		mocks.donationRepo.EXPECT().FindByID(ctx, eventID).Return(event, nil)
		mocks.requestRepo.EXPECT().FindByID(ctx, event.RequestID).Return(request, nil)

		mocks.factory.EXPECT().DonationRepo().Return(mocks.donationRepo)
		mocks.factory.EXPECT().DonorRepo().Return(mocks.donorRepo)
		mocks.factory.EXPECT().BadgeRepo().Return(mocks.badgeRepo)
		mocks.factory.EXPECT().NotificationRepo().Return(mocks.notificationRepo)

		mocks.donationRepo.EXPECT().MarkCompleted(ctx, eventID, mock.Anything).Return(nil)
		mocks.donorRepo.EXPECT().FindByID(ctx, donorID).Return(donor, nil)
		mocks.donorRepo.EXPECT().
			Update(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, updated *entity.Donor) error {
				require.NotNil(t, updated.LastDonationDate)

				return nil
			})
		mocks.donationRepo.EXPECT().CountCompletedByDonorUser(ctx, actorID).Return(int64(1), nil)
		mocks.badgeRepo.EXPECT().FindByName(ctx, entity.BadgeFirstTimeDonor).Return(badge, nil)
		mocks.badgeRepo.EXPECT().Grant(ctx, actorID, badge.ID).Return(nil)
		mocks.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Times(2)
		passthroughTx(mocks.txManager, mocks.factory)

		err := service.CompleteDonation(ctx, actorID, eventID)

		require.NoError(t, err)
	})

	t.Run("already completed is a no-op", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		actorID := uuid.New()
		eventID := uuid.New()
		completedAt := time.Now()
		event := &entity.DonationEvent{
			ID:          eventID,
			DonorUserID: actorID,
			IsCompleted: true,
			CompletedAt: &completedAt,
		}

		mocks.donationRepo.EXPECT().FindByID(ctx, eventID).Return(event, nil)

		err := service.CompleteDonation(ctx, actorID, eventID)

		require.NoError(t, err)
	})

	t.Run("completion lost to a concurrent call is a no-op", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		actorID := uuid.New()
		eventID := uuid.New()
		event := &entity.DonationEvent{
			ID:          eventID,
			DonorID:     uuid.New(),
			RequestID:   uuid.New(),
			DonorUserID: actorID,
		}
		request := &entity.BloodRequest{ID: event.RequestID, PatientName: "Sita Rai"}

		mocks.donationRepo.EXPECT().FindByID(ctx, eventID).Return(event, nil)
		mocks.requestRepo.EXPECT().FindByID(ctx, event.RequestID).Return(request, nil)

		mocks.factory.EXPECT().DonationRepo().Return(mocks.donationRepo)
		mocks.donationRepo.EXPECT().
			MarkCompleted(ctx, eventID, mock.Anything).
			Return(repository.ErrDonationAlreadyCompleted)
		passthroughTx(mocks.txManager, mocks.factory)

		err := service.CompleteDonation(ctx, actorID, eventID)

		require.NoError(t, err)
	})

	t.Run("uninvolved actor is rejected", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		donorUserID := uuid.New()
		requesterID := uuid.New()
		strangerID := uuid.New()
		eventID := uuid.New()
		event := &entity.DonationEvent{ID: eventID, RequestID: uuid.New(), DonorUserID: donorUserID}
		request := &entity.BloodRequest{ID: event.RequestID, RequesterID: &requesterID}

		mocks.donationRepo.EXPECT().FindByID(ctx, eventID).Return(event, nil)
		mocks.requestRepo.EXPECT().FindByID(ctx, event.RequestID).Return(request, nil)

		err := service.CompleteDonation(ctx, strangerID, eventID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrCompletionNotAllowed)
	})

	t.Run("requester completes an event whose donor record is gone", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		donorUserID := uuid.New()
		requesterID := uuid.New()
		eventID := uuid.New()
		donorID := uuid.New()
		event := &entity.DonationEvent{ID: eventID, DonorID: donorID, RequestID: uuid.New(), DonorUserID: donorUserID}
		request := &entity.BloodRequest{ID: event.RequestID, RequesterID: &requesterID, PatientName: "Sita Rai"}

		mocks.donationRepo.EXPECT().FindByID(ctx, eventID).Return(event, nil)
		mocks.requestRepo.EXPECT().FindByID(ctx, event.RequestID).Return(request, nil)

		mocks.factory.EXPECT().DonationRepo().Return(mocks.donationRepo)
		mocks.factory.EXPECT().DonorRepo().Return(mocks.donorRepo)
		mocks.factory.EXPECT().BadgeRepo().Return(mocks.badgeRepo)
		mocks.factory.EXPECT().NotificationRepo().Return(mocks.notificationRepo)

		badge := &entity.Badge{ID: uuid.New(), Name: entity.BadgeFirstTimeDonor}

		mocks.donationRepo.EXPECT().MarkCompleted(ctx, eventID, mock.Anything).Return(nil)
		mocks.donorRepo.EXPECT().FindByID(ctx, donorID).Return(nil, repository.ErrDonorNotFound)
		mocks.donationRepo.EXPECT().CountCompletedByDonorUser(ctx, donorUserID).Return(int64(2), nil)
		mocks.badgeRepo.EXPECT().FindByName(ctx, entity.BadgeFirstTimeDonor).Return(badge, nil)
		mocks.badgeRepo.EXPECT().Grant(ctx, donorUserID, badge.ID).Return(nil)
		mocks.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Times(2)
		passthroughTx(mocks.txManager, mocks.factory)

		err := service.CompleteDonation(ctx, requesterID, eventID)

		require.NoError(t, err)
	})

	t.Run("missing badge is skipped", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		actorID := uuid.New()
		eventID := uuid.New()
		donorID := uuid.New()
		event := &entity.DonationEvent{ID: eventID, DonorID: donorID, RequestID: uuid.New(), DonorUserID: actorID}
		donor := &entity.Donor{ID: donorID, UserID: &actorID, Name: "Ram Thapa"}

		mocks.donationRepo.EXPECT().FindByID(ctx, eventID).Return(event, nil)
		mocks.requestRepo.EXPECT().FindByID(ctx, event.RequestID).Return(nil, repository.ErrRequestNotFound)

		mocks.factory.EXPECT().DonationRepo().Return(mocks.donationRepo)
		mocks.factory.EXPECT().DonorRepo().Return(mocks.donorRepo)
		mocks.factory.EXPECT().BadgeRepo().Return(mocks.badgeRepo)
		mocks.factory.EXPECT().NotificationRepo().Return(mocks.notificationRepo)

		mocks.donationRepo.EXPECT().MarkCompleted(ctx, eventID, mock.Anything).Return(nil)
		mocks.donorRepo.EXPECT().FindByID(ctx, donorID).Return(donor, nil)
		mocks.donorRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
		mocks.donationRepo.EXPECT().CountCompletedByDonorUser(ctx, actorID).Return(int64(1), nil)
		mocks.badgeRepo.EXPECT().FindByName(ctx, entity.BadgeFirstTimeDonor).Return(nil, repository.ErrBadgeNotFound)
		mocks.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
		passthroughTx(mocks.txManager, mocks.factory)

		err := service.CompleteDonation(ctx, actorID, eventID)

		require.NoError(t, err)
	})

	t.Run("unknown event", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		eventID := uuid.New()
		mocks.donationRepo.EXPECT().FindByID(ctx, eventID).Return(nil, repository.ErrDonationNotFound)

		err := service.CompleteDonation(ctx, uuid.New(), eventID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrDonationNotFound)
	})
}

func TestMatchingService_InvolvedEvents(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("lists events", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		actorID := uuid.New()
		events := []*entity.DonationEvent{{ID: uuid.New()}, {ID: uuid.New()}}
		mocks.donationRepo.EXPECT().FindInvolvedByUser(ctx, actorID).Return(events, nil)

		got, err := service.InvolvedEvents(ctx, actorID)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestMatchingService(t)

		mocks.donationRepo.EXPECT().FindInvolvedByUser(ctx, mock.Anything).Return(nil, errors.New("db error"))

		got, err := service.InvolvedEvents(ctx, uuid.New())

		require.Error(t, err)
		assert.Nil(t, got)
		assert.Contains(t, err.Error(), "db error")
	})
}
