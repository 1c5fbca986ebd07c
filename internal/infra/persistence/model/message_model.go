package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
type MessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Content     string    `gorm:"type:text"`
	MessageType string    `gorm:"type:text;not null;default:'text'"`
	StickerID   string    `gorm:"type:text"`
	IsRead      bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
