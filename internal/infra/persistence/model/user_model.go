// Package model contains the GORM-specific structs that map domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
// The password hash lives only here; the domain entity never carries it.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:text;not null;uniqueIndex"`
	Email        string    `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:text;not null"`
	FirstName    string    `gorm:"type:text"`
	LastName     string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel is the GORM-specific struct for the 'profiles' table.
// Exactly one row exists per user, created together with the account.
type ProfileModel struct {
	UserID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Bio                string    `gorm:"type:text"`
	Location           string    `gorm:"type:text"`
	Phone              string    `gorm:"type:text"`
	BloodGroup         string    `gorm:"type:text"`
	BirthDate          *time.Time
	Latitude           *float64 `gorm:"type:decimal(10,8)"`
	Longitude          *float64 `gorm:"type:decimal(11,8)"`
	LastLocationUpdate *time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
