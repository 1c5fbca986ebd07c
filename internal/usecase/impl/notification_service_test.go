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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceMocks struct {
	txManager        *mockRepo.MockTransactionManager
	notificationRepo *mockRepo.MockNotificationRepository
	factory          *mockRepo.MockRepositoryFactory
}

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, *notificationServiceMocks) {
	t.Helper()

	mocks := &notificationServiceMocks{
		txManager:        mockRepo.NewMockTransactionManager(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
	}

	service := NewNotificationService(NotificationServiceParams{
		TxManager:        mocks.txManager,
		NotificationRepo: mocks.notificationRepo,
		Logger:           newDiscardLogger(),
	})

	return service, mocks
}

func TestNotificationService_Notify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates an unread notification", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestNotificationService(t)

		userID := uuid.New()
		mocks.notificationRepo.EXPECT().
			Create(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, notification *entity.Notification) error {
				assert.Equal(t, userID, notification.UserID)
				assert.Equal(t, "A donor volunteered.", notification.Message)

				return nil
			})

		err := service.Notify(ctx, userID, "A donor volunteered.")

		require.NoError(t, err)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestNotificationService(t)

		mocks.notificationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db error"))

		err := service.Notify(ctx, uuid.New(), "hello")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "db error")
	})
}

func TestNotificationService_ListAndMarkRead(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("lists and flips unread in one transaction", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestNotificationService(t)

		userID := uuid.New()
		listed := []*entity.Notification{
			{ID: uuid.New(), UserID: userID, Message: "newest"},
			{ID: uuid.New(), UserID: userID, Message: "older"},
		}

		mocks.factory.EXPECT().NotificationRepo().Return(mocks.notificationRepo)
		mocks.notificationRepo.EXPECT().ListByUser(ctx, userID).Return(listed, nil)
		mocks.notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(int64(2), nil)
		passthroughTx(mocks.txManager, mocks.factory)

		notifications, err := service.ListAndMarkRead(ctx, userID)

		require.NoError(t, err)
		require.Len(t, notifications, 2)
		assert.Equal(t, "newest", notifications[0].Message)
	})

	t.Run("mark-read failure rolls up", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestNotificationService(t)

		userID := uuid.New()
		mocks.factory.EXPECT().NotificationRepo().Return(mocks.notificationRepo)
		mocks.notificationRepo.EXPECT().ListByUser(ctx, userID).Return(nil, nil)
		mocks.notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(int64(0), errors.New("db error"))
		passthroughTx(mocks.txManager, mocks.factory)

		notifications, err := service.ListAndMarkRead(ctx, userID)

		require.Error(t, err)
		assert.Nil(t, notifications)
		assert.Contains(t, err.Error(), "db error")
	})
}

func TestNotificationService_UnreadCount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns the count", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestNotificationService(t)

		userID := uuid.New()
		mocks.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(5), nil)

		count, err := service.UnreadCount(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, int64(5), count)
	})
}
