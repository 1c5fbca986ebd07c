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

// donorRepository implements the repository.DonorRepository interface.
type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository is the constructor for donorRepository.
func NewDonorRepository(db *gorm.DB) repository.DonorRepository {
	return &donorRepository{
		db: db,
	}
}

// Create persists a new donor record.
func (repo *donorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	donorM := fromDonorDomain(donor)

	if err := repo.db.WithContext(ctx).Create(donorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDonorAlreadyRegistered
		}

		return errors.Wrap(err, "failed to create donor")
	}

	// Update the entity with generated values
	donor.ID = donorM.ID
	donor.CreatedAt = donorM.CreatedAt
	donor.UpdatedAt = donorM.UpdatedAt

	return nil
}

// FindByID retrieves a donor by their unique ID.
func (repo *donorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	var donorM model.DonorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "failed to find donor by ID")
	}

	return toDonorDomain(&donorM), nil
}

// FindByUserID retrieves the donor record linked to a user account.
func (repo *donorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Donor, error) {
	var donorM model.DonorModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&donorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "failed to find donor by user ID")
	}

	return toDonorDomain(&donorM), nil
}

// Search retrieves all donors matching the filter.
func (repo *donorRepository) Search(ctx context.Context, filter repository.DonorFilter) ([]*entity.Donor, error) {
	var donorModels []*model.DonorModel

	query := repo.db.WithContext(ctx).Model(&model.DonorModel{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ?", pattern, pattern)
	}
	if filter.BloodGroup != "" {
		query = query.Where("blood_group = ?", filter.BloodGroup)
	}
	if filter.District != "" {
		query = query.Where("district ILIKE ?", "%"+filter.District+"%")
	}
	if filter.AvailableOnly {
		query = query.Where("is_available = ?", true)
	}

	if err := query.Find(&donorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search donors")
	}

	donors := make([]*entity.Donor, 0, len(donorModels))
	for _, donorM := range donorModels {
		donors = append(donors, toDonorDomain(donorM))
	}

	return donors, nil
}

// FindAvailableByGroup retrieves available donors of a blood group.
func (repo *donorRepository) FindAvailableByGroup(ctx context.Context, bloodGroup string) ([]*entity.Donor, error) {
	var donorModels []*model.DonorModel

	if err := repo.db.WithContext(ctx).
		Where("blood_group = ? AND is_available = ?", bloodGroup, true).
		Find(&donorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available donors by group")
	}

	donors := make([]*entity.Donor, 0, len(donorModels))
	for _, donorM := range donorModels {
		donors = append(donors, toDonorDomain(donorM))
	}

	return donors, nil
}

// Update modifies an existing donor record.
func (repo *donorRepository) Update(ctx context.Context, donor *entity.Donor) error {
	donorM := fromDonorDomain(donor)

	result := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("id = ?", donor.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(donorM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update donor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDonorNotFound
	}

	return nil
}

// Count returns the total number of donor records.
func (repo *donorRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count donors")
	}

	return count, nil
}

// CountFullyVaccinated returns the number of donors marked fully vaccinated.
func (repo *donorRepository) CountFullyVaccinated(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("vaccination_status ILIKE ?", "%Fully%").
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count vaccinated donors")
	}

	return count, nil
}

// --- Mapper Functions ---

// toDonorDomain converts a GORM DonorModel to a domain Donor entity.
func toDonorDomain(data *model.DonorModel) *entity.Donor {
	if data == nil {
		return nil
	}

	return &entity.Donor{
		ID:                  data.ID,
		UserID:              data.UserID,
		Name:                data.Name,
		BloodGroup:          data.BloodGroup,
		District:            data.District,
		Location:            data.Location,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Phone:               data.Phone,
		Email:               data.Email,
		IsAvailable:         data.IsAvailable,
		IsVerified:          data.IsVerified,
		CitizenshipNo:       data.CitizenshipNo,
		LastDonationDate:    data.LastDonationDate,
		VaccinationStatus:   data.VaccinationStatus,
		LastVaccinationDate: data.LastVaccinationDate,
		AvatarURL:           data.AvatarURL,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

// fromDonorDomain converts a domain Donor entity to a GORM DonorModel.
func fromDonorDomain(data *entity.Donor) *model.DonorModel {
	if data == nil {
		return nil
	}

	return &model.DonorModel{
		ID:                  data.ID,
		UserID:              data.UserID,
		Name:                data.Name,
		BloodGroup:          data.BloodGroup,
		District:            data.District,
		Location:            data.Location,
		Latitude:            data.Latitude,
		Longitude:           data.Longitude,
		Phone:               data.Phone,
		Email:               data.Email,
		IsAvailable:         data.IsAvailable,
		IsVerified:          data.IsVerified,
		CitizenshipNo:       data.CitizenshipNo,
		LastDonationDate:    data.LastDonationDate,
		VaccinationStatus:   data.VaccinationStatus,
		LastVaccinationDate: data.LastVaccinationDate,
		AvatarURL:           data.AvatarURL,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
