package postgres

import (
	"context"
	"time"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// urgencyRankSQL orders requests from most to least pressing in SQL so the
// active feed comes back already sorted.
const urgencyRankSQL = "CASE urgency WHEN 'CRITICAL' THEN 0 WHEN 'URGENT' THEN 1 ELSE 2 END, created_at DESC"

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// Create persists a new blood request.
func (repo *requestRepository) Create(ctx context.Context, request *entity.BloodRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid requester reference")
		}

		return errors.Wrap(err, "failed to create blood request")
	}

	// Update the entity with generated values
	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindByID retrieves a request by its unique ID.
func (repo *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	var requestM model.BloodRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindActive retrieves all active requests, most urgent first.
func (repo *requestRepository) FindActive(ctx context.Context) ([]*entity.BloodRequest, error) {
	var requestModels []*model.BloodRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.RequestStatusActive).
		Order(urgencyRankSQL).
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active requests")
	}

	return toRequestDomainSlice(requestModels), nil
}

// FindByStatus retrieves requests in the given status, newest first. An
// empty status returns every request.
func (repo *requestRepository) FindByStatus(ctx context.Context, status string) ([]*entity.BloodRequest, error) {
	var requestModels []*model.BloodRequestModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests by status")
	}

	return toRequestDomainSlice(requestModels), nil
}

// FindActiveLocated retrieves active requests that carry coordinates.
func (repo *requestRepository) FindActiveLocated(ctx context.Context) ([]*entity.BloodRequest, error) {
	var requestModels []*model.BloodRequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", entity.RequestStatusActive).
		Order(urgencyRankSQL).
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find located active requests")
	}

	return toRequestDomainSlice(requestModels), nil
}

// Update modifies an existing request.
func (repo *requestRepository) Update(ctx context.Context, request *entity.BloodRequest) error {
	requestM := fromRequestDomain(request)

	result := repo.db.WithContext(ctx).
		Model(&model.BloodRequestModel{}).
		Where("id = ?", request.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(requestM)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// CountActive returns the number of requests in the active status.
func (repo *requestRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BloodRequestModel{}).
		Where("status = ?", entity.RequestStatusActive).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active requests")
	}

	return count, nil
}

// DeleteStaleByUrgency removes active requests of the given urgency created
// before the cutoff. Donation events referencing the removed requests are
// deleted with them.
func (repo *requestRepository) DeleteStaleByUrgency(ctx context.Context, urgency string, cutoff time.Time) (int64, error) {
	return repo.deleteWhere(ctx,
		"status = ? AND urgency = ? AND created_at < ?",
		entity.RequestStatusActive, urgency, cutoff)
}

// DeleteInactiveOlderThan removes non-active requests created before the
// cutoff, together with their donation events.
func (repo *requestRepository) DeleteInactiveOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return repo.deleteWhere(ctx,
		"status <> ? AND created_at < ?",
		entity.RequestStatusActive, cutoff)
}

func (repo *requestRepository) deleteWhere(ctx context.Context, condition string, args ...interface{}) (int64, error) {
	if err := repo.db.WithContext(ctx).
		Where("request_id IN (?)", repo.db.
			Model(&model.BloodRequestModel{}).
			Select("id").
			Where(condition, args...)).
		Delete(&model.DonationEventModel{}).Error; err != nil {
		return 0, errors.Wrap(err, "failed to delete donation events of expired requests")
	}

	result := repo.db.WithContext(ctx).
		Where(condition, args...).
		Delete(&model.BloodRequestModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired requests")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toRequestDomainSlice(models []*model.BloodRequestModel) []*entity.BloodRequest {
	requests := make([]*entity.BloodRequest, 0, len(models))
	for _, requestM := range models {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

// toRequestDomain converts a GORM BloodRequestModel to a domain BloodRequest entity.
func toRequestDomain(data *model.BloodRequestModel) *entity.BloodRequest {
	if data == nil {
		return nil
	}

	return &entity.BloodRequest{
		ID:            data.ID,
		RequesterID:   data.RequesterID,
		PatientName:   data.PatientName,
		BloodGroup:    data.BloodGroup,
		Location:      data.Location,
		Urgency:       data.Urgency,
		Hospital:      data.Hospital,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		ContactNumber: data.ContactNumber,
		RequiredDate:  data.RequiredDate,
		Status:        data.Status,
		AcceptedAt:    data.AcceptedAt,
		CreatedAt:     data.CreatedAt,
	}
}

// fromRequestDomain converts a domain BloodRequest entity to a GORM BloodRequestModel.
func fromRequestDomain(data *entity.BloodRequest) *model.BloodRequestModel {
	if data == nil {
		return nil
	}

	return &model.BloodRequestModel{
		ID:            data.ID,
		RequesterID:   data.RequesterID,
		PatientName:   data.PatientName,
		BloodGroup:    data.BloodGroup,
		Location:      data.Location,
		Urgency:       data.Urgency,
		Hospital:      data.Hospital,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		ContactNumber: data.ContactNumber,
		RequiredDate:  data.RequiredDate,
		Status:        data.Status,
		AcceptedAt:    data.AcceptedAt,
		CreatedAt:     data.CreatedAt,
	}
}
