// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for donor persistence.
var (
	// ErrDonorNotFound is returned when a donor record is not found.
	ErrDonorNotFound = errors.New("donor not found")
	// ErrDonorAlreadyRegistered is returned when the user already has a donor record.
	ErrDonorAlreadyRegistered = errors.New("donor already registered for this user")
)

// DonorFilter narrows a donor search. Zero values mean "no constraint".
type DonorFilter struct {
	Query         string // Matches name or location, case-insensitive substring.
	BloodGroup    string // Exact blood group.
	District      string // Case-insensitive substring on district.
	AvailableOnly bool   // Restrict to donors currently marked available.
}

// DonorRepository defines the standard operations for donor persistence.
type DonorRepository interface {
	// Create persists a new donor record.
	Create(ctx context.Context, donor *entity.Donor) error

	// FindByID retrieves a single donor by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error)

	// FindByUserID retrieves the donor record linked to a user account.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Donor, error)

	// Search retrieves all donors matching the filter, unordered. The
	// proximity ranker owns all ordering.
	Search(ctx context.Context, filter DonorFilter) ([]*entity.Donor, error)

	// FindAvailableByGroup retrieves available donors of a blood group,
	// used by the emergency ping fan-out.
	FindAvailableByGroup(ctx context.Context, bloodGroup string) ([]*entity.Donor, error)

	// Update modifies an existing donor record.
	Update(ctx context.Context, donor *entity.Donor) error

	// Count returns the total number of donor records.
	Count(ctx context.Context) (int64, error)

	// CountFullyVaccinated returns the number of donors whose vaccination
	// status indicates full vaccination.
	CountFullyVaccinated(ctx context.Context) (int64, error)
}
