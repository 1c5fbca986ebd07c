package postgres

import (
	"context"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// hospitalRepository implements the repository.HospitalRepository interface.
type hospitalRepository struct {
	db *gorm.DB
}

// NewHospitalRepository is the constructor for hospitalRepository.
func NewHospitalRepository(db *gorm.DB) repository.HospitalRepository {
	return &hospitalRepository{
		db: db,
	}
}

// FindAll retrieves every hospital.
func (repo *hospitalRepository) FindAll(ctx context.Context) ([]*entity.Hospital, error) {
	var hospitalModels []*model.HospitalModel

	if err := repo.db.WithContext(ctx).Find(&hospitalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hospitals")
	}

	hospitals := make([]*entity.Hospital, 0, len(hospitalModels))
	for _, hospitalM := range hospitalModels {
		hospitals = append(hospitals, toHospitalDomain(hospitalM))
	}

	return hospitals, nil
}

// Upsert inserts a hospital or updates the existing row with the same name.
func (repo *hospitalRepository) Upsert(ctx context.Context, hospital *entity.Hospital) error {
	hospitalM := fromHospitalDomain(hospital)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"location", "phone", "website", "latitude", "longitude", "updated_at"}),
		}).
		Create(hospitalM).Error; err != nil {
		return errors.Wrap(err, "failed to upsert hospital")
	}

	hospital.ID = hospitalM.ID

	return nil
}

// Count returns the number of hospitals in the catalog.
func (repo *hospitalRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.HospitalModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count hospitals")
	}

	return count, nil
}

// --- Mapper Functions ---

// toHospitalDomain converts a GORM HospitalModel to a domain Hospital entity.
func toHospitalDomain(data *model.HospitalModel) *entity.Hospital {
	if data == nil {
		return nil
	}

	return &entity.Hospital{
		ID:        data.ID,
		Name:      data.Name,
		Location:  data.Location,
		Phone:     data.Phone,
		Website:   data.Website,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromHospitalDomain converts a domain Hospital entity to a GORM HospitalModel.
func fromHospitalDomain(data *entity.Hospital) *model.HospitalModel {
	if data == nil {
		return nil
	}

	return &model.HospitalModel{
		ID:        data.ID,
		Name:      data.Name,
		Location:  data.Location,
		Phone:     data.Phone,
		Website:   data.Website,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
