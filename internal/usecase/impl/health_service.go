package impl

import (
	"context"
	"log/slog"
	"strings"

	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// healthService implements the HealthUsecase interface.
type healthService struct {
	healthRepo repository.HealthRepository
	donorRepo  repository.DonorRepository
	logger     *slog.Logger
}

// HealthServiceParams holds dependencies for healthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	HealthRepo repository.HealthRepository
	DonorRepo  repository.DonorRepository
	Logger     *slog.Logger
}

// NewHealthService is the constructor for healthService.
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{
		healthRepo: params.HealthRepo,
		donorRepo:  params.DonorRepo,
		logger:     params.Logger,
	}
}

// AddVaccineRecord stores one vaccination dose for a user.
func (srv *healthService) AddVaccineRecord(ctx context.Context, userID uuid.UUID, input *usecase.AddVaccineRecordInput) (*entity.VaccineRecord, error) {
	if strings.TrimSpace(input.VaccineName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("vaccine name is required")
	}
	if input.DoseNumber < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("dose number must be at least 1")
	}
	if input.DateTaken.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date taken is required")
	}

	record := &entity.VaccineRecord{
		UserID:      userID,
		VaccineName: strings.TrimSpace(input.VaccineName),
		DoseNumber:  input.DoseNumber,
		DateTaken:   input.DateTaken,
		Location:    input.Location,
		CenterName:  input.CenterName,
		Notes:       input.Notes,
	}

	if err := srv.healthRepo.CreateVaccineRecord(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store vaccine record")
	}

	srv.logger.Debug("Vaccine record added", slog.Any("userID", userID), slog.String("vaccine", record.VaccineName))

	return record, nil
}

// ListVaccineRecords returns the user's vaccination history.
func (srv *healthService) ListVaccineRecords(ctx context.Context, userID uuid.UUID) ([]*entity.VaccineRecord, error) {
	records, err := srv.healthRepo.ListVaccineRecordsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vaccine records")
	}

	return records, nil
}

// AddHealthReport stores the metadata of one uploaded report.
func (srv *healthService) AddHealthReport(ctx context.Context, userID uuid.UUID, input *usecase.AddHealthReportInput) (*entity.HealthReport, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("report title is required")
	}
	if input.ReportDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("report date is required")
	}

	report := &entity.HealthReport{
		UserID:             userID,
		Title:              strings.TrimSpace(input.Title),
		HospitalName:       input.HospitalName,
		Description:        input.Description,
		ReportDate:         input.ReportDate,
		NextTestDate:       input.NextTestDate,
		AllowNotifications: input.AllowNotifications,
	}

	if err := srv.healthRepo.CreateHealthReport(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to store health report")
	}

	srv.logger.Debug("Health report added", slog.Any("userID", userID), slog.String("title", report.Title))

	return report, nil
}

// ListHealthReports returns the user's uploaded reports.
func (srv *healthService) ListHealthReports(ctx context.Context, userID uuid.UUID) ([]*entity.HealthReport, error) {
	reports, err := srv.healthRepo.ListHealthReportsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list health reports")
	}

	return reports, nil
}

// VaccinationStats aggregates the donor pool's vaccination coverage.
func (srv *healthService) VaccinationStats(ctx context.Context) (*entity.VaccinationStats, error) {
	total, err := srv.donorRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count donors")
	}

	vaccinated, err := srv.donorRepo.CountFullyVaccinated(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count vaccinated donors")
	}

	stats := &entity.VaccinationStats{
		TotalDonors:     total,
		VaccinatedCount: vaccinated,
	}
	if total > 0 {
		stats.Percentage = int(vaccinated * 100 / total)
	}

	return stats, nil
}
