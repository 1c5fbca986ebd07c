package usecase

import (
	"context"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/geo"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterDonorInput defines the data required to register as a donor.
type RegisterDonorInput struct {
	Name          string
	BloodGroup    string
	District      string
	Location      string
	Latitude      *float64
	Longitude     *float64
	Phone         string
	Email         string
	CitizenshipNo string
	IsAvailable   bool
}

// SearchDonorsInput narrows the donor directory search. Origin is optional;
// without it results fall back to availability-first name ordering.
type SearchDonorsInput struct {
	Query         string
	BloodGroup    string
	District      string
	AvailableOnly bool
	Origin        *geo.Origin
}

// DonorUsecase defines the interface for donor directory operations.
type DonorUsecase interface {
	// RegisterDonor creates the donor record for a user. One donor record
	// per account.
	RegisterDonor(ctx context.Context, userID uuid.UUID, input *RegisterDonorInput) (*entity.Donor, error)

	// SearchDonors filters the directory and ranks the result by proximity
	// to the optional origin.
	SearchDonors(ctx context.Context, input *SearchDonorsInput) ([]geo.Ranked[*entity.Donor], error)

	// GetDonor loads a single donor.
	GetDonor(ctx context.Context, donorID uuid.UUID) (*entity.Donor, error)

	// ShareQR renders the donor's public profile URL as a PNG QR code.
	ShareQR(ctx context.Context, donorID uuid.UUID) ([]byte, error)
}
