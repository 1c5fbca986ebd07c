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

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// Notify creates an unread notification for a user.
func (srv *notificationService) Notify(ctx context.Context, userID uuid.UUID, message string) error {
	notification := &entity.Notification{
		UserID:  userID,
		Message: message,
	}

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	return nil
}

// ListAndMarkRead returns the feed newest first and flips every unread entry
// in the same transaction, so a listed notification is never counted as
// unread afterwards.
func (srv *notificationService) ListAndMarkRead(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	var notifications []*entity.Notification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notificationRepo := repoFactory.NotificationRepo()

		listed, err := notificationRepo.ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list notifications")
		}

		marked, err := notificationRepo.MarkAllRead(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to mark notifications read")
		}

		if marked > 0 {
			srv.logger.Debug("Notifications marked read", slog.Any("userID", userID), slog.Int64("count", marked))
		}

		notifications = listed

		return nil
	})
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// UnreadCount returns the number of unread notifications.
func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}
