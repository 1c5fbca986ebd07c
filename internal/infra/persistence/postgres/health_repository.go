package postgres

import (
	"context"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// healthRepository implements the repository.HealthRepository interface.
type healthRepository struct {
	db *gorm.DB
}

// NewHealthRepository is the constructor for healthRepository.
func NewHealthRepository(db *gorm.DB) repository.HealthRepository {
	return &healthRepository{
		db: db,
	}
}

// CreateVaccineRecord persists a new vaccination dose record.
func (repo *healthRepository) CreateVaccineRecord(ctx context.Context, record *entity.VaccineRecord) error {
	recordM := fromVaccineRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid user reference")
		}

		return errors.Wrap(err, "failed to create vaccine record")
	}

	// Update the entity with generated values
	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// ListVaccineRecordsByUser retrieves a user's dose records, most recent first.
func (repo *healthRepository) ListVaccineRecordsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.VaccineRecord, error) {
	var recordModels []*model.VaccineRecordModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_taken DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vaccine records")
	}

	records := make([]*entity.VaccineRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toVaccineRecordDomain(recordM))
	}

	return records, nil
}

// CreateHealthReport persists a new health report's metadata.
func (repo *healthRepository) CreateHealthReport(ctx context.Context, report *entity.HealthReport) error {
	reportM := fromHealthReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid user reference")
		}

		return errors.Wrap(err, "failed to create health report")
	}

	// Update the entity with generated values
	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt

	return nil
}

// ListHealthReportsByUser retrieves a user's reports, newest first.
func (repo *healthRepository) ListHealthReportsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.HealthReport, error) {
	var reportModels []*model.HealthReportModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("report_date DESC").
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list health reports")
	}

	reports := make([]*entity.HealthReport, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toHealthReportDomain(reportM))
	}

	return reports, nil
}

// --- Mapper Functions ---

// toVaccineRecordDomain converts a GORM VaccineRecordModel to a domain VaccineRecord entity.
func toVaccineRecordDomain(data *model.VaccineRecordModel) *entity.VaccineRecord {
	if data == nil {
		return nil
	}

	return &entity.VaccineRecord{
		ID:          data.ID,
		UserID:      data.UserID,
		VaccineName: data.VaccineName,
		DoseNumber:  data.DoseNumber,
		DateTaken:   data.DateTaken,
		Location:    data.Location,
		CenterName:  data.CenterName,
		Notes:       data.Notes,
		CreatedAt:   data.CreatedAt,
	}
}

// fromVaccineRecordDomain converts a domain VaccineRecord entity to a GORM VaccineRecordModel.
func fromVaccineRecordDomain(data *entity.VaccineRecord) *model.VaccineRecordModel {
	if data == nil {
		return nil
	}

	return &model.VaccineRecordModel{
		ID:          data.ID,
		UserID:      data.UserID,
		VaccineName: data.VaccineName,
		DoseNumber:  data.DoseNumber,
		DateTaken:   data.DateTaken,
		Location:    data.Location,
		CenterName:  data.CenterName,
		Notes:       data.Notes,
		CreatedAt:   data.CreatedAt,
	}
}

// toHealthReportDomain converts a GORM HealthReportModel to a domain HealthReport entity.
func toHealthReportDomain(data *model.HealthReportModel) *entity.HealthReport {
	if data == nil {
		return nil
	}

	return &entity.HealthReport{
		ID:                 data.ID,
		UserID:             data.UserID,
		Title:              data.Title,
		HospitalName:       data.HospitalName,
		Description:        data.Description,
		ReportDate:         data.ReportDate,
		NextTestDate:       data.NextTestDate,
		AllowNotifications: data.AllowNotifications,
		CreatedAt:          data.CreatedAt,
	}
}

// fromHealthReportDomain converts a domain HealthReport entity to a GORM HealthReportModel.
func fromHealthReportDomain(data *entity.HealthReport) *model.HealthReportModel {
	if data == nil {
		return nil
	}

	return &model.HealthReportModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Title:              data.Title,
		HospitalName:       data.HospitalName,
		Description:        data.Description,
		ReportDate:         data.ReportDate,
		NextTestDate:       data.NextTestDate,
		AllowNotifications: data.AllowNotifications,
		CreatedAt:          data.CreatedAt,
	}
}
