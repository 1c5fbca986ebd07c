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

// donationRepository implements the repository.DonationRepository interface.
type donationRepository struct {
	db *gorm.DB
}

// NewDonationRepository is the constructor for donationRepository.
func NewDonationRepository(db *gorm.DB) repository.DonationRepository {
	return &donationRepository{
		db: db,
	}
}

// Create persists a new donation event. The unique index on
// (donor_id, request_id) surfaces concurrent duplicates as
// ErrDuplicateDonation.
func (repo *donationRepository) Create(ctx context.Context, event *entity.DonationEvent) error {
	eventM := fromDonationDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDonation
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "invalid donor or request reference")
		}

		return errors.Wrap(err, "failed to create donation event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID
	event.Date = eventM.Date

	return nil
}

// FindByID retrieves a donation event by its unique ID.
func (repo *donationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationEvent, error) {
	var eventM model.DonationEventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation event by ID")
	}

	return toDonationDomain(&eventM), nil
}

// MarkCompleted flips a donation event to completed at the given time. The
// is_completed guard in the WHERE clause makes the flip first-writer-wins, so
// concurrent completions cannot both trigger the completion side effects.
func (repo *donationRepository) MarkCompleted(ctx context.Context, id uuid.UUID, completedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DonationEventModel{}).
		Where("id = ? AND is_completed = ?", id, false).
		Updates(map[string]interface{}{
			"is_completed": true,
			"completed_at": completedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark donation completed")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.DonationEventModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check donation event state")
		}
		if count == 0 {
			return repository.ErrDonationNotFound
		}

		return repository.ErrDonationAlreadyCompleted
	}

	return nil
}

// FindInvolvedByUser retrieves donation events where the user is either the
// volunteering donor or the requester, newest first.
func (repo *donationRepository) FindInvolvedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DonationEvent, error) {
	var eventModels []*model.DonationEventModel

	if err := repo.db.WithContext(ctx).
		Joins("LEFT JOIN blood_requests ON blood_requests.id = donation_events.request_id").
		Where("donation_events.donor_user_id = ? OR blood_requests.requester_id = ?", userID, userID).
		Order("donation_events.date DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find involved donation events")
	}

	events := make([]*entity.DonationEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toDonationDomain(eventM))
	}

	return events, nil
}

// CountCompletedByDonorUser returns the user's completed donation count.
func (repo *donationRepository) CountCompletedByDonorUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DonationEventModel{}).
		Where("donor_user_id = ? AND is_completed = ?", userID, true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count completed donations by user")
	}

	return count, nil
}

// CountCompleted returns the total number of completed donations.
func (repo *donationRepository) CountCompleted(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DonationEventModel{}).
		Where("is_completed = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count completed donations")
	}

	return count, nil
}

// --- Mapper Functions ---

// toDonationDomain converts a GORM DonationEventModel to a domain DonationEvent entity.
func toDonationDomain(data *model.DonationEventModel) *entity.DonationEvent {
	if data == nil {
		return nil
	}

	return &entity.DonationEvent{
		ID:          data.ID,
		DonorID:     data.DonorID,
		RequestID:   data.RequestID,
		DonorUserID: data.DonorUserID,
		Date:        data.Date,
		IsCompleted: data.IsCompleted,
		CompletedAt: data.CompletedAt,
	}
}

// fromDonationDomain converts a domain DonationEvent entity to a GORM DonationEventModel.
func fromDonationDomain(data *entity.DonationEvent) *model.DonationEventModel {
	if data == nil {
		return nil
	}

	return &model.DonationEventModel{
		ID:          data.ID,
		DonorID:     data.DonorID,
		RequestID:   data.RequestID,
		DonorUserID: data.DonorUserID,
		Date:        data.Date,
		IsCompleted: data.IsCompleted,
		CompletedAt: data.CompletedAt,
	}
}
