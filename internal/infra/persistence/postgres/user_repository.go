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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user account together with its empty profile.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	profileM := &model.ProfileModel{UserID: userM.ID}
	if user.Profile != nil {
		profileM = fromProfileDomain(user.Profile)
		profileM.UserID = userM.ID
	}
	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		return errors.Wrap(err, "failed to create profile")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	user.Profile = toProfileDomain(profileM)

	return nil
}

// FindByID retrieves a user with their profile and donor link.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return repo.hydrate(ctx, &userM)
}

// FindByUsername retrieves a user by their unique username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return repo.hydrate(ctx, &userM)
}

// FindAuthByUsername retrieves a user together with their password hash.
func (repo *userRepository) FindAuthByUsername(ctx context.Context, username string) (*entity.User, string, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", repository.ErrUserNotFound
		}

		return nil, "", errors.Wrap(err, "failed to find user auth by username")
	}

	user, err := repo.hydrate(ctx, &userM)
	if err != nil {
		return nil, "", err
	}

	return user, userM.PasswordHash, nil
}

// Update modifies the account fields of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateProfile modifies the profile row of an existing user.
func (repo *userRepository) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"bio":                  profile.Bio,
			"location":             profile.Location,
			"phone":                profile.Phone,
			"blood_group":          profile.BloodGroup,
			"birth_date":           profile.BirthDate,
			"latitude":             profile.Latitude,
			"longitude":            profile.Longitude,
			"last_location_update": profile.LastLocationUpdate,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// hydrate attaches the profile and donor link to a loaded user row.
func (repo *userRepository) hydrate(ctx context.Context, userM *model.UserModel) (*entity.User, error) {
	user := toUserDomain(userM)

	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userM.ID).
		First(&profileM).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "failed to load profile")
		}
	} else {
		user.Profile = toProfileDomain(&profileM)
	}

	var donorM model.DonorModel
	if err := repo.db.WithContext(ctx).
		Select("id").
		Where("user_id = ?", userM.ID).
		First(&donorM).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "failed to load donor link")
		}
	} else {
		donorID := donorM.ID
		user.DonorID = &donorID
	}

	return user, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:        data.ID,
		Username:  data.Username,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		UserID:             data.UserID,
		Bio:                data.Bio,
		Location:           data.Location,
		Phone:              data.Phone,
		BloodGroup:         data.BloodGroup,
		BirthDate:          data.BirthDate,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		LastLocationUpdate: data.LastLocationUpdate,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		UserID:             data.UserID,
		Bio:                data.Bio,
		Location:           data.Location,
		Phone:              data.Phone,
		BloodGroup:         data.BloodGroup,
		BirthDate:          data.BirthDate,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		LastLocationUpdate: data.LastLocationUpdate,
		UpdatedAt:          data.UpdatedAt,
	}
}
