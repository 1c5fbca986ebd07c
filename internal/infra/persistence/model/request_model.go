package model

import (
	"time"

	"github.com/google/uuid"
)

// BloodRequestModel is the GORM-specific struct for the 'blood_requests' table.
type BloodRequestModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequesterID   *uuid.UUID `gorm:"type:uuid;index"`
	PatientName   string     `gorm:"type:text;not null"`
	BloodGroup    string     `gorm:"type:text;not null;index"`
	Location      string     `gorm:"type:text"`
	Urgency       string     `gorm:"type:text;not null"`
	Hospital      string     `gorm:"type:text"`
	Latitude      *float64   `gorm:"type:decimal(10,8)"`
	Longitude     *float64   `gorm:"type:decimal(11,8)"`
	ContactNumber string     `gorm:"type:text"`
	RequiredDate  time.Time
	Status        string `gorm:"type:text;not null;default:'Active';index"`
	AcceptedAt    *time.Time
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BloodRequestModel) TableName() string {
	return "blood_requests"
}
