package impl

import (
	"context"
	"log/slog"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/geo"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bankService implements the BankUsecase interface.
type bankService struct {
	bankRepo repository.BankRepository
	logger   *slog.Logger
}

// BankServiceParams holds dependencies for bankService, injected by Fx.
type BankServiceParams struct {
	fx.In

	BankRepo repository.BankRepository
	Logger   *slog.Logger
}

// NewBankService is the constructor for bankService.
func NewBankService(params BankServiceParams) usecase.BankUsecase {
	return &bankService{
		bankRepo: params.BankRepo,
		logger:   params.Logger,
	}
}

// ListBanks returns every bank ranked by proximity to the optional origin.
func (srv *bankService) ListBanks(ctx context.Context, origin *geo.Origin) ([]geo.Ranked[*entity.BloodBank], error) {
	banks, err := srv.bankRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blood banks")
	}

	return geo.Rank(banks, origin), nil
}

// hospitalService implements the HospitalUsecase interface.
type hospitalService struct {
	hospitalRepo repository.HospitalRepository
	logger       *slog.Logger
}

// HospitalServiceParams holds dependencies for hospitalService, injected by Fx.
type HospitalServiceParams struct {
	fx.In

	HospitalRepo repository.HospitalRepository
	Logger       *slog.Logger
}

// NewHospitalService is the constructor for hospitalService.
func NewHospitalService(params HospitalServiceParams) usecase.HospitalUsecase {
	return &hospitalService{
		hospitalRepo: params.HospitalRepo,
		logger:       params.Logger,
	}
}

// ListHospitals returns every hospital ranked by proximity to the optional
// origin, alphabetical without one.
func (srv *hospitalService) ListHospitals(ctx context.Context, origin *geo.Origin) ([]geo.Ranked[*entity.Hospital], error) {
	hospitals, err := srv.hospitalRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hospitals")
	}

	return geo.Rank(hospitals, origin), nil
}
