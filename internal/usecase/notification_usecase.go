package usecase

import (
	"context"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase exposes the in-app notification feed.
type NotificationUsecase interface {
	// Notify creates an unread notification for a user.
	Notify(ctx context.Context, userID uuid.UUID, message string) error

	// ListAndMarkRead returns the user's notifications newest first and
	// atomically marks every unread one as read.
	ListAndMarkRead(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// UnreadCount returns the number of unread notifications.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
