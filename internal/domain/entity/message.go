// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message kinds. Attachments are handled by an external storage layer; the
// core only distinguishes plain text from stickers.
const (
	MessageTypeText    = "text"
	MessageTypeSticker = "sticker"
)

// Message is one direct message between two users.
type Message struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the message.
	SenderID    uuid.UUID // The user who sent the message.
	ReceiverID  uuid.UUID // The user who received the message.
	Content     string    // Message text, empty for sticker messages.
	MessageType string    // One of the MessageType constants.
	StickerID   string    // Sticker identifier, set for sticker messages.
	IsRead      bool      // Whether the receiver has seen the message.
	Timestamp   time.Time // When the message was sent.
}

// Conversation summarizes one chat partner for the inbox view: the peer and
// the most recent message exchanged with them.
type Conversation struct {
	Peer        *User
	LastMessage *Message
}
