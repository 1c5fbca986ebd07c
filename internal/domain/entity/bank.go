// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodBank is a blood storage facility with per-group stock counts.
type BloodBank struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the bank.
	Name          string    // Facility name.
	Location      string    // Human-readable location description.
	Latitude      *float64  // Geographic latitude, nil when unknown.
	Longitude     *float64  // Geographic longitude, nil when unknown.
	ContactNumber string    // Optional contact phone number.
	Is24x7        bool      // Whether the bank operates around the clock.
	TotalCapacity int       // Storage capacity per blood group, in units.
	StockAPlus    int       // Units in stock per blood group.
	StockAMinus   int
	StockBPlus    int
	StockBMinus   int
	StockOPlus    int
	StockOMinus   int
	StockABPlus   int
	StockABMinus  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TotalStock returns the units in stock summed over all eight blood groups.
func (b *BloodBank) TotalStock() int {
	return b.StockAPlus + b.StockAMinus +
		b.StockBPlus + b.StockBMinus +
		b.StockOPlus + b.StockOMinus +
		b.StockABPlus + b.StockABMinus
}

// StockFor returns the units in stock for the given blood group.
func (b *BloodBank) StockFor(group string) int {
	switch group {
	case "A+":
		return b.StockAPlus
	case "A-":
		return b.StockAMinus
	case "B+":
		return b.StockBPlus
	case "B-":
		return b.StockBMinus
	case "O+":
		return b.StockOPlus
	case "O-":
		return b.StockOMinus
	case "AB+":
		return b.StockABPlus
	case "AB-":
		return b.StockABMinus
	default:
		return 0
	}
}

// Coordinates returns the bank's coordinates; ok is false when either half
// of the pair is missing.
func (b *BloodBank) Coordinates() (lat, lon float64, ok bool) {
	if b.Latitude == nil || b.Longitude == nil {
		return 0, 0, false
	}

	return *b.Latitude, *b.Longitude, true
}

// SortName returns the name used for alphabetical fallback ordering.
func (b *BloodBank) SortName() string {
	return b.Name
}

// Preferred sorts banks that never close ahead of the rest when no origin
// is available.
func (b *BloodBank) Preferred() bool {
	return b.Is24x7
}
