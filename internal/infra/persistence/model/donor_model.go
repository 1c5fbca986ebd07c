package model

import (
	"time"

	"github.com/google/uuid"
)

// DonorModel is the GORM-specific struct for the 'donors' table.
type DonorModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name                string     `gorm:"type:text;not null"`
	BloodGroup          string     `gorm:"type:text;not null;index"`
	District            string     `gorm:"type:text"`
	Location            string     `gorm:"type:text"`
	Latitude            *float64   `gorm:"type:decimal(10,8)"`
	Longitude           *float64   `gorm:"type:decimal(11,8)"`
	Phone               string     `gorm:"type:text"`
	Email               string     `gorm:"type:text"`
	IsAvailable         bool       `gorm:"not null;default:true;index"`
	IsVerified          bool       `gorm:"not null;default:false"`
	CitizenshipNo       string     `gorm:"type:text"`
	LastDonationDate    *time.Time
	VaccinationStatus   string `gorm:"type:text"`
	LastVaccinationDate *time.Time
	AvatarURL           string `gorm:"type:text"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonorModel) TableName() string {
	return "donors"
}
