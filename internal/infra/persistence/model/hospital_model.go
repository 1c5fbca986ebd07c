package model

import (
	"time"

	"github.com/google/uuid"
)

// HospitalModel is the GORM-specific struct for the 'hospitals' table.
// Names are unique so catalog seeding can upsert by name.
type HospitalModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:text;not null;uniqueIndex"`
	Location  string    `gorm:"type:text"`
	Phone     string    `gorm:"type:text"`
	Website   string    `gorm:"type:text"`
	Latitude  *float64  `gorm:"type:decimal(10,8)"`
	Longitude *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HospitalModel) TableName() string {
	return "hospitals"
}
