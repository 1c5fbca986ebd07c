package usecase

import (
	"context"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput defines the data required to send a direct message.
// Either Content (text) or StickerID (sticker) is set, never both.
type SendMessageInput struct {
	ReceiverID  uuid.UUID
	Content     string
	MessageType string
	StickerID   string
}

// MessageUsecase defines the interface for direct messaging.
type MessageUsecase interface {
	// Send delivers a message from the actor to the receiver.
	Send(ctx context.Context, actorID uuid.UUID, input *SendMessageInput) (*entity.Message, error)

	// Conversation returns the full exchange with a peer in chronological
	// order and marks the peer's unread messages to the actor as read.
	Conversation(ctx context.Context, actorID, peerID uuid.UUID) ([]*entity.Message, error)

	// Inbox returns one entry per chat partner, latest message first.
	Inbox(ctx context.Context, actorID uuid.UUID) ([]*entity.Conversation, error)

	// UnreadCount returns the number of unread messages across all
	// conversations.
	UnreadCount(ctx context.Context, actorID uuid.UUID) (int64, error)
}
