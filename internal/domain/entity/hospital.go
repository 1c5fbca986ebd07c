// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Hospital is a medical facility listed for proximity search and as a
// destination on blood requests.
type Hospital struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the hospital.
	Name      string    // Facility name, unique within the catalog.
	Location  string    // Human-readable location description.
	Phone     string    // Contact phone number.
	Website   string    // Optional website URL.
	Latitude  *float64  // Geographic latitude, nil when unknown.
	Longitude *float64  // Geographic longitude, nil when unknown.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Coordinates returns the hospital's coordinates; ok is false when either
// half of the pair is missing.
func (h *Hospital) Coordinates() (lat, lon float64, ok bool) {
	if h.Latitude == nil || h.Longitude == nil {
		return 0, 0, false
	}

	return *h.Latitude, *h.Longitude, true
}

// SortName returns the name used for alphabetical fallback ordering.
func (h *Hospital) SortName() string {
	return h.Name
}

// Preferred always reports false: hospitals have no preference flag, so the
// fallback ordering is purely alphabetical.
func (h *Hospital) Preferred() bool {
	return false
}
