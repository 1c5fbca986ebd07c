package impl

import (
	"context"
	"testing"

	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/repository"
	mockRepo "raktapulse/internal/mocks/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	donorRepo        *mockRepo.MockDonorRepository
	badgeRepo        *mockRepo.MockBadgeRepository
	notificationRepo *mockRepo.MockNotificationRepository
	messageRepo      *mockRepo.MockMessageRepository
	factory          *mockRepo.MockRepositoryFactory
}

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *profileServiceMocks) {
	t.Helper()

	mocks := &profileServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		donorRepo:        mockRepo.NewMockDonorRepository(t),
		badgeRepo:        mockRepo.NewMockBadgeRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		messageRepo:      mockRepo.NewMockMessageRepository(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
	}

	service := NewProfileService(ProfileServiceParams{
		TxManager:        mocks.txManager,
		UserRepo:         mocks.userRepo,
		DonorRepo:        mocks.donorRepo,
		BadgeRepo:        mocks.badgeRepo,
		NotificationRepo: mocks.notificationRepo,
		MessageRepo:      mocks.messageRepo,
		Logger:           newDiscardLogger(),
	})

	return service, mocks
}

func TestProfileService_GetProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("aggregates the profile view", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestProfileService(t)

		userID := uuid.New()
		donorID := uuid.New()
		user := &entity.User{ID: userID, Username: "alice", DonorID: &donorID}
		donor := &entity.Donor{ID: donorID, Name: "Alice"}
		badges := []*entity.Badge{{ID: uuid.New(), Name: entity.BadgeFirstTimeDonor}}

		mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mocks.donorRepo.EXPECT().FindByID(ctx, donorID).Return(donor, nil)
		mocks.badgeRepo.EXPECT().ListByUser(ctx, userID).Return(badges, nil)
		mocks.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(2), nil)
		mocks.messageRepo.EXPECT().CountUnread(ctx, userID).Return(int64(1), nil)

		view, err := service.GetProfile(ctx, userID)

		require.NoError(t, err)
		require.NotNil(t, view)
		assert.Equal(t, "alice", view.User.Username)
		require.NotNil(t, view.Donor)
		assert.Equal(t, donorID, view.Donor.ID)
		assert.Len(t, view.Badges, 1)
		assert.Equal(t, int64(2), view.UnreadNotifications)
		assert.Equal(t, int64(1), view.UnreadMessages)
	})

	t.Run("non-donor user has a nil donor", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestProfileService(t)

		userID := uuid.New()
		user := &entity.User{ID: userID, Username: "bob"}

		mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mocks.badgeRepo.EXPECT().ListByUser(ctx, userID).Return(nil, nil)
		mocks.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(0), nil)
		mocks.messageRepo.EXPECT().CountUnread(ctx, userID).Return(int64(0), nil)

		view, err := service.GetProfile(ctx, userID)

		require.NoError(t, err)
		assert.Nil(t, view.Donor)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestProfileService(t)

		userID := uuid.New()
		mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		view, err := service.GetProfile(ctx, userID)

		require.Error(t, err)
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("syncs the linked donor record", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestProfileService(t)

		userID := uuid.New()
		donorID := uuid.New()
		user := &entity.User{ID: userID, Username: "alice", DonorID: &donorID}
		donor := &entity.Donor{ID: donorID, UserID: &userID, Name: "Alice", Phone: "old"}

		bloodGroup := "A+"
		phone := "9841000000"

		mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)
		mocks.factory.EXPECT().DonorRepo().Return(mocks.donorRepo)
		mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil).Times(2)
		mocks.userRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
		mocks.userRepo.EXPECT().
			UpdateProfile(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, profile *entity.Profile) error {
				assert.Equal(t, "A+", profile.BloodGroup)
				assert.Equal(t, "9841000000", profile.Phone)

				return nil
			})
		mocks.donorRepo.EXPECT().FindByUserID(ctx, userID).Return(donor, nil)
		mocks.donorRepo.EXPECT().
			Update(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, updated *entity.Donor) error {
				assert.Equal(t, "A+", updated.BloodGroup)
				assert.Equal(t, "9841000000", updated.Phone)

				return nil
			})
		passthroughTx(mocks.txManager, mocks.factory)

		// The reload at the end of the update path.
		mocks.donorRepo.EXPECT().FindByID(ctx, donorID).Return(donor, nil)
		mocks.badgeRepo.EXPECT().ListByUser(ctx, userID).Return(nil, nil)
		mocks.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(0), nil)
		mocks.messageRepo.EXPECT().CountUnread(ctx, userID).Return(int64(0), nil)

		view, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
			BloodGroup: &bloodGroup,
			Phone:      &phone,
		})

		require.NoError(t, err)
		require.NotNil(t, view)
	})

	t.Run("invalid blood group", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestProfileService(t)

		bad := "Z-"
		view, err := service.UpdateProfile(ctx, uuid.New(), &usecase.UpdateProfileInput{BloodGroup: &bad})

		require.Error(t, err)
		assert.Nil(t, view)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)
	})
}

func TestProfileService_ClearPersonalInfo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("blanks the soft fields and keeps the blood group", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestProfileService(t)

		userID := uuid.New()
		user := &entity.User{
			ID:        userID,
			Username:  "alice",
			FirstName: "Alice",
			LastName:  "Shrestha",
			Profile:   &entity.Profile{UserID: userID, Bio: "bio", Phone: "98410", BloodGroup: "O+"},
		}

		mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)
		mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mocks.userRepo.EXPECT().
			Update(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, updated *entity.User) error {
				assert.Empty(t, updated.FirstName)
				assert.Empty(t, updated.LastName)

				return nil
			})
		mocks.userRepo.EXPECT().
			UpdateProfile(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, profile *entity.Profile) error {
				assert.Empty(t, profile.Bio)
				assert.Empty(t, profile.Phone)
				assert.Equal(t, "O+", profile.BloodGroup)

				return nil
			})
		passthroughTx(mocks.txManager, mocks.factory)

		err := service.ClearPersonalInfo(ctx, userID)

		require.NoError(t, err)
	})
}

func TestProfileService_UpdateLiveLocation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stores the coordinates with a timestamp", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestProfileService(t)

		userID := uuid.New()
		user := &entity.User{ID: userID}

		mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mocks.userRepo.EXPECT().
			UpdateProfile(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, profile *entity.Profile) error {
				require.NotNil(t, profile.Latitude)
				require.NotNil(t, profile.Longitude)
				require.NotNil(t, profile.LastLocationUpdate)
				assert.Equal(t, 27.7172, *profile.Latitude)

				return nil
			})

		err := service.UpdateLiveLocation(ctx, userID, 27.7172, 85.3240)

		require.NoError(t, err)
	})
}
