package repository

import (
	"context"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository defines the standard operations for direct message
// persistence.
type MessageRepository interface {
	// Create persists a new message.
	Create(ctx context.Context, message *entity.Message) error

	// FindConversation retrieves every message exchanged between the two
	// users in chronological order.
	FindConversation(ctx context.Context, userID, peerID uuid.UUID) ([]*entity.Message, error)

	// MarkConversationRead marks all unread messages sent by the peer to
	// the user as read and returns how many were updated.
	MarkConversationRead(ctx context.Context, userID, peerID uuid.UUID) (int64, error)

	// ListConversations builds the inbox view: one entry per peer the user
	// has exchanged messages with, carrying the latest message, ordered by
	// that message's timestamp descending.
	ListConversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// CountUnread returns the number of unread messages addressed to the
	// user across all conversations.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
