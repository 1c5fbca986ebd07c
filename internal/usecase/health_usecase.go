package usecase

import (
	"context"
	"time"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// AddVaccineRecordInput defines the data for one vaccination dose.
type AddVaccineRecordInput struct {
	VaccineName string
	DoseNumber  int
	DateTaken   time.Time
	Location    string
	CenterName  string
	Notes       string
}

// AddHealthReportInput defines the metadata of one uploaded health report.
type AddHealthReportInput struct {
	Title              string
	HospitalName       string
	Description        string
	ReportDate         time.Time
	NextTestDate       *time.Time
	AllowNotifications bool
}

// HealthUsecase defines the interface for personal health records.
type HealthUsecase interface {
	AddVaccineRecord(ctx context.Context, userID uuid.UUID, input *AddVaccineRecordInput) (*entity.VaccineRecord, error)
	ListVaccineRecords(ctx context.Context, userID uuid.UUID) ([]*entity.VaccineRecord, error)
	AddHealthReport(ctx context.Context, userID uuid.UUID, input *AddHealthReportInput) (*entity.HealthReport, error)
	ListHealthReports(ctx context.Context, userID uuid.UUID) ([]*entity.HealthReport, error)

	// VaccinationStats aggregates the donor pool's vaccination coverage.
	VaccinationStats(ctx context.Context) (*entity.VaccinationStats, error)
}
