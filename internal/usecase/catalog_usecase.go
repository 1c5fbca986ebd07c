package usecase

import (
	"context"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/geo"
)

// BankUsecase lists blood banks with their per-group stock.
type BankUsecase interface {
	// ListBanks returns every bank ranked by proximity to the optional
	// origin; 24x7 banks lead the fallback ordering.
	ListBanks(ctx context.Context, origin *geo.Origin) ([]geo.Ranked[*entity.BloodBank], error)
}

// HospitalUsecase lists the hospital catalog.
type HospitalUsecase interface {
	// ListHospitals returns every hospital ranked by proximity to the
	// optional origin, alphabetical without one.
	ListHospitals(ctx context.Context, origin *geo.Origin) ([]geo.Ranked[*entity.Hospital], error)
}
