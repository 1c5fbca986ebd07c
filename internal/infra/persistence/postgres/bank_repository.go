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

// bankRepository implements the repository.BankRepository interface.
type bankRepository struct {
	db *gorm.DB
}

// NewBankRepository is the constructor for bankRepository.
func NewBankRepository(db *gorm.DB) repository.BankRepository {
	return &bankRepository{
		db: db,
	}
}

// Create persists a new blood bank.
func (repo *bankRepository) Create(ctx context.Context, bank *entity.BloodBank) error {
	bankM := fromBankDomain(bank)

	if err := repo.db.WithContext(ctx).Create(bankM).Error; err != nil {
		return errors.Wrap(err, "failed to create blood bank")
	}

	// Update the entity with generated values
	bank.ID = bankM.ID
	bank.CreatedAt = bankM.CreatedAt
	bank.UpdatedAt = bankM.UpdatedAt

	return nil
}

// FindByID retrieves a blood bank by its unique ID.
func (repo *bankRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodBank, error) {
	var bankM model.BloodBankModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bankM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBankNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood bank by ID")
	}

	return toBankDomain(&bankM), nil
}

// FindAll retrieves every blood bank.
func (repo *bankRepository) FindAll(ctx context.Context) ([]*entity.BloodBank, error) {
	var bankModels []*model.BloodBankModel

	if err := repo.db.WithContext(ctx).Find(&bankModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blood banks")
	}

	banks := make([]*entity.BloodBank, 0, len(bankModels))
	for _, bankM := range bankModels {
		banks = append(banks, toBankDomain(bankM))
	}

	return banks, nil
}

// Update modifies an existing blood bank.
func (repo *bankRepository) Update(ctx context.Context, bank *entity.BloodBank) error {
	bankM := fromBankDomain(bank)

	result := repo.db.WithContext(ctx).
		Model(&model.BloodBankModel{}).
		Where("id = ?", bank.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(bankM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update blood bank")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBankNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBankDomain converts a GORM BloodBankModel to a domain BloodBank entity.
func toBankDomain(data *model.BloodBankModel) *entity.BloodBank {
	if data == nil {
		return nil
	}

	return &entity.BloodBank{
		ID:            data.ID,
		Name:          data.Name,
		Location:      data.Location,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		ContactNumber: data.ContactNumber,
		Is24x7:        data.Is24x7,
		TotalCapacity: data.TotalCapacity,
		StockAPlus:    data.StockAPlus,
		StockAMinus:   data.StockAMinus,
		StockBPlus:    data.StockBPlus,
		StockBMinus:   data.StockBMinus,
		StockOPlus:    data.StockOPlus,
		StockOMinus:   data.StockOMinus,
		StockABPlus:   data.StockABPlus,
		StockABMinus:  data.StockABMinus,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromBankDomain converts a domain BloodBank entity to a GORM BloodBankModel.
func fromBankDomain(data *entity.BloodBank) *model.BloodBankModel {
	if data == nil {
		return nil
	}

	return &model.BloodBankModel{
		ID:            data.ID,
		Name:          data.Name,
		Location:      data.Location,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		ContactNumber: data.ContactNumber,
		Is24x7:        data.Is24x7,
		TotalCapacity: data.TotalCapacity,
		StockAPlus:    data.StockAPlus,
		StockAMinus:   data.StockAMinus,
		StockBPlus:    data.StockBPlus,
		StockBMinus:   data.StockBMinus,
		StockOPlus:    data.StockOPlus,
		StockOMinus:   data.StockOMinus,
		StockABPlus:   data.StockABPlus,
		StockABMinus:  data.StockABMinus,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
