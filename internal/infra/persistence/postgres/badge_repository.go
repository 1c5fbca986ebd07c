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
	"gorm.io/gorm/clause"
)

// badgeRepository implements the repository.BadgeRepository interface.
type badgeRepository struct {
	db *gorm.DB
}

// NewBadgeRepository is the constructor for badgeRepository.
func NewBadgeRepository(db *gorm.DB) repository.BadgeRepository {
	return &badgeRepository{
		db: db,
	}
}

// Create adds a badge to the catalog.
func (repo *badgeRepository) Create(ctx context.Context, badge *entity.Badge) error {
	badgeM := fromBadgeDomain(badge)

	if err := repo.db.WithContext(ctx).Create(badgeM).Error; err != nil {
		return errors.Wrap(err, "failed to create badge")
	}

	// Update the entity with generated values
	badge.ID = badgeM.ID
	badge.CreatedAt = badgeM.CreatedAt

	return nil
}

// FindByName retrieves a catalog badge by its unique name.
func (repo *badgeRepository) FindByName(ctx context.Context, name string) (*entity.Badge, error) {
	var badgeM model.BadgeModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&badgeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBadgeNotFound
		}

		return nil, errors.Wrap(err, "failed to find badge by name")
	}

	return toBadgeDomain(&badgeM), nil
}

// Grant awards a badge to a user. The insert ignores conflicts on the
// (user_id, badge_id) unique index, so repeated grants are no-ops.
func (repo *badgeRepository) Grant(ctx context.Context, userID, badgeID uuid.UUID) error {
	grant := &model.UserBadgeModel{
		UserID:    userID,
		BadgeID:   badgeID,
		AwardedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "badge_id"}},
			DoNothing: true,
		}).
		Create(grant).Error; err != nil {
		return errors.Wrap(err, "failed to grant badge")
	}

	return nil
}

// ListByUser retrieves all badges held by a user.
func (repo *badgeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Badge, error) {
	var badgeModels []*model.BadgeModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN user_badges ON user_badges.badge_id = badges.id").
		Where("user_badges.user_id = ?", userID).
		Order("user_badges.awarded_at ASC").
		Find(&badgeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list badges by user")
	}

	badges := make([]*entity.Badge, 0, len(badgeModels))
	for _, badgeM := range badgeModels {
		badges = append(badges, toBadgeDomain(badgeM))
	}

	return badges, nil
}

// --- Mapper Functions ---

// toBadgeDomain converts a GORM BadgeModel to a domain Badge entity.
func toBadgeDomain(data *model.BadgeModel) *entity.Badge {
	if data == nil {
		return nil
	}

	return &entity.Badge{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IconClass:   data.IconClass,
		CreatedAt:   data.CreatedAt,
	}
}

// fromBadgeDomain converts a domain Badge entity to a GORM BadgeModel.
func fromBadgeDomain(data *entity.Badge) *model.BadgeModel {
	if data == nil {
		return nil
	}

	return &model.BadgeModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		IconClass:   data.IconClass,
		CreatedAt:   data.CreatedAt,
	}
}
