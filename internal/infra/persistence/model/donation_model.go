package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationEventModel is the GORM-specific struct for the 'donation_events'
// table. The composite unique index closes the race between two concurrent
// volunteer calls for the same (donor, request) pair.
type DonationEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DonorID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_donation_donor_request"`
	RequestID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_donation_donor_request"`
	DonorUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Date        time.Time `gorm:"not null"`
	IsCompleted bool      `gorm:"not null;default:false"`
	CompletedAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationEventModel) TableName() string {
	return "donation_events"
}
