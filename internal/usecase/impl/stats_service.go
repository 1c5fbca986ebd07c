package impl

import (
	"context"
	"log/slog"

	"raktapulse/internal/domain/repository"
	"raktapulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Presentation offsets applied to the dashboard counters so the homepage
// reflects the community's history from before the system went online.
const (
	legacyDonationCount = 157
	legacyDonorCount    = 48

	// Each donation can be split into components helping up to three
	// patients.
	livesPerDonation = 3
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	donorRepo    repository.DonorRepository
	requestRepo  repository.RequestRepository
	donationRepo repository.DonationRepository
	bankRepo     repository.BankRepository
	logger       *slog.Logger
}

// StatsServiceParams holds dependencies for statsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	DonorRepo    repository.DonorRepository
	RequestRepo  repository.RequestRepository
	DonationRepo repository.DonationRepository
	BankRepo     repository.BankRepository
	Logger       *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		donorRepo:    params.DonorRepo,
		requestRepo:  params.RequestRepo,
		donationRepo: params.DonationRepo,
		bankRepo:     params.BankRepo,
		logger:       params.Logger,
	}
}

// Dashboard computes the public homepage counters.
func (srv *statsService) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	donors, err := srv.donorRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count donors")
	}

	activeRequests, err := srv.requestRepo.CountActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active requests")
	}

	completed, err := srv.donationRepo.CountCompleted(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed donations")
	}

	banks, err := srv.bankRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blood banks")
	}

	var totalStock int64
	for _, bank := range banks {
		totalStock += int64(bank.TotalStock())
	}

	vaccinated, err := srv.donorRepo.CountFullyVaccinated(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count vaccinated donors")
	}

	stats := &usecase.DashboardStats{
		TotalDonors:        donors + legacyDonorCount,
		ActiveRequests:     activeRequests,
		TotalStock:         totalStock,
		CompletedDonations: completed + legacyDonationCount,
		LivesSaved:         (completed + legacyDonationCount) * livesPerDonation,
	}
	if donors > 0 {
		stats.VaccinatedPercent = int(vaccinated * 100 / donors)
	}

	srv.logger.Debug("Dashboard stats computed",
		slog.Int64("donors", stats.TotalDonors),
		slog.Int64("activeRequests", stats.ActiveRequests),
	)

	return stats, nil
}
