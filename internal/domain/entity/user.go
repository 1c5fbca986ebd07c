// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. It carries only login-level
// information; everything else lives on the Profile.
type User struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the user.
	Username  string     // Unique handle used for login and public profile URLs.
	Email     string     // The user's contact email.
	FirstName string     // Optional given name.
	LastName  string     // Optional family name.
	DonorID   *uuid.UUID // Reference to the user's donor record, nil when the user has not registered as a donor.
	Profile   *Profile   // The user's profile. Loaded together with the user.
	CreatedAt time.Time  // Timestamp of when this account was created.
	UpdatedAt time.Time  // Timestamp of the last modification.
}

// IsDonor reports whether the user has a linked donor record.
func (u *User) IsDonor() bool {
	return u.DonorID != nil
}

// Profile holds the personal and health-facing data attached to a user.
type Profile struct {
	UserID             uuid.UUID  // Foreign key linking this profile to a User.
	Bio                string     // Free-form self description.
	Location           string     // Human-readable home location.
	Phone              string     // Contact phone number.
	BloodGroup         string     // One of the eight ABO/Rh groups, may be empty.
	BirthDate          *time.Time // Optional date of birth.
	Latitude           *float64   // Last reported live latitude, nil when never reported.
	Longitude          *float64   // Last reported live longitude.
	LastLocationUpdate *time.Time // When the live location was last refreshed.
	UpdatedAt          time.Time  // Timestamp of the last modification.
}
