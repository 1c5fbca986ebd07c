package model

import (
	"time"

	"github.com/google/uuid"
)

// BadgeModel is the GORM-specific struct for the 'badges' table, the
// seeded badge catalog.
type BadgeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:text;not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	IconClass   string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BadgeModel) TableName() string {
	return "badges"
}

// UserBadgeModel is the GORM-specific struct for the 'user_badges' table.
// The composite unique index keeps badge grants idempotent.
type UserBadgeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge"`
	BadgeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_badge"`
	AwardedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserBadgeModel) TableName() string {
	return "user_badges"
}
