package repository

import (
	"context"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// HealthRepository defines the standard operations for personal health
// records: vaccination doses and uploaded medical reports.
type HealthRepository interface {
	// CreateVaccineRecord persists a new vaccination dose record.
	CreateVaccineRecord(ctx context.Context, record *entity.VaccineRecord) error

	// ListVaccineRecordsByUser retrieves a user's dose records, most
	// recent dose first.
	ListVaccineRecordsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.VaccineRecord, error)

	// CreateHealthReport persists a new health report's metadata.
	CreateHealthReport(ctx context.Context, report *entity.HealthReport) error

	// ListHealthReportsByUser retrieves a user's reports, newest first.
	ListHealthReportsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.HealthReport, error)
}
