package repository

import (
	"context"
	"errors"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the standard operations for in-app
// notification persistence.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// ListByUser retrieves all notifications for a user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// MarkAllRead marks every unread notification of the user as read and
	// returns how many were updated.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
