// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodGroups lists the eight ABO/Rh blood groups accepted everywhere a
// blood group is recorded.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

// IsValidBloodGroup reports whether the given group is one of the eight
// recognized ABO/Rh groups.
func IsValidBloodGroup(group string) bool {
	for _, g := range BloodGroups {
		if g == group {
			return true
		}
	}

	return false
}

// Donor represents a person registered as willing to give blood. A donor may
// or may not be linked to a user account; walk-in donors entered by staff
// have no linked user.
type Donor struct {
	ID                  uuid.UUID  // The Global Unique Identifier (GUID) for the donor.
	UserID              *uuid.UUID // Linked user account, nil for staff-entered donors.
	Name                string     // The donor's display name.
	BloodGroup          string     // One of the eight ABO/Rh groups.
	District            string     // Administrative district, used for coarse filtering.
	Location            string     // Human-readable location description.
	Latitude            *float64   // Geographic latitude, nil when unknown.
	Longitude           *float64   // Geographic longitude, nil when unknown.
	Phone               string     // Contact phone number.
	Email               string     // Optional contact email.
	IsAvailable         bool       // Whether the donor is currently willing to donate.
	IsVerified          bool       // Whether staff verified the donor's identity.
	CitizenshipNo       string     // Optional citizenship number used for verification.
	LastDonationDate    *time.Time // Date of the most recent donation, nil when never donated.
	VaccinationStatus   string     // Free-form vaccination status, e.g. "Fully Vaccinated".
	LastVaccinationDate *time.Time // Date of the most recent vaccination.
	AvatarURL           string     // Optional avatar image URL.
	CreatedAt           time.Time  // Timestamp of when this record was created.
	UpdatedAt           time.Time  // Timestamp of the last modification.
}

// Coordinates returns the donor's coordinates. ok is false when either half
// of the pair is missing; partial coordinates are treated as absent.
func (d *Donor) Coordinates() (lat, lon float64, ok bool) {
	if d.Latitude == nil || d.Longitude == nil {
		return 0, 0, false
	}

	return *d.Latitude, *d.Longitude, true
}

// SortName returns the name used for alphabetical fallback ordering.
func (d *Donor) SortName() string {
	return d.Name
}

// Preferred reports whether the donor sorts ahead of others when no origin
// is available: available donors come first.
func (d *Donor) Preferred() bool {
	return d.IsAvailable
}
