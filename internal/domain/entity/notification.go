// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message shown to a single user. Notifications
// are created by workflow transitions, flipped to read when the user lists
// them, and never deleted by the application itself.
type Notification struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID // The user this notification belongs to.
	Message   string    // The notification text.
	IsRead    bool      // Whether the user has seen this notification.
	CreatedAt time.Time // Timestamp of when this notification was created.
}
