package impl

import (
	"context"
	"log/slog"
	"time"

	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	donorRepo        repository.DonorRepository
	badgeRepo        repository.BadgeRepository
	notificationRepo repository.NotificationRepository
	messageRepo      repository.MessageRepository
	logger           *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	DonorRepo        repository.DonorRepository
	BadgeRepo        repository.BadgeRepository
	NotificationRepo repository.NotificationRepository
	MessageRepo      repository.MessageRepository
	Logger           *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		donorRepo:        params.DonorRepo,
		badgeRepo:        params.BadgeRepo,
		notificationRepo: params.NotificationRepo,
		messageRepo:      params.MessageRepo,
		logger:           params.Logger,
	}
}

// GetProfile loads the profile view for a user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for profile")
	}

	view := &usecase.ProfileView{User: user}

	if user.DonorID != nil {
		donor, err := srv.donorRepo.FindByID(ctx, *user.DonorID)
		if err != nil && !errors.Is(err, repository.ErrDonorNotFound) {
			return nil, errors.Wrap(err, "failed to load donor for profile")
		}
		view.Donor = donor
	}

	badges, err := srv.badgeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load badges for profile")
	}
	view.Badges = badges

	if view.UnreadNotifications, err = srv.notificationRepo.CountUnread(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}
	if view.UnreadMessages, err = srv.messageRepo.CountUnread(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages")
	}

	return view, nil
}

// UpdateProfile applies the edits and syncs the linked donor record within
// the same transaction, so the donor directory never disagrees with the
// profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.ProfileView, error) {
	if input.BloodGroup != nil && *input.BloodGroup != "" && !entity.IsValidBloodGroup(*input.BloodGroup) {
		return nil, domainerrors.ErrInvalidBloodGroup
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user for update")
		}

		applyAccountEdits(user, input)
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update account fields")
		}

		profile := user.Profile
		if profile == nil {
			profile = &entity.Profile{UserID: userID}
		}
		applyProfileEdits(profile, input)
		if err := userRepo.UpdateProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update profile fields")
		}

		return srv.syncDonorRecord(ctx, repoFactory.DonorRepo(), user, profile)
	})
	if err != nil {
		srv.logger.Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Profile updated", slog.Any("userID", userID))

	return srv.GetProfile(ctx, userID)
}

// syncDonorRecord copies the contact-facing profile fields onto the linked
// donor record. Users without a donor record are left alone.
func (srv *profileService) syncDonorRecord(ctx context.Context, donorRepo repository.DonorRepository, user *entity.User, profile *entity.Profile) error {
	donor, err := donorRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load donor for sync")
	}

	if profile.BloodGroup != "" {
		donor.BloodGroup = profile.BloodGroup
	}
	if profile.Location != "" {
		donor.Location = profile.Location
	}
	if profile.Phone != "" {
		donor.Phone = profile.Phone
	}

	if err := donorRepo.Update(ctx, donor); err != nil {
		return errors.Wrap(err, "failed to sync donor record")
	}

	return nil
}

// UpdateLiveLocation stores the user's reported coordinates.
func (srv *profileService) UpdateLiveLocation(ctx context.Context, userID uuid.UUID, lat, lon float64) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for location update")
	}

	profile := user.Profile
	if profile == nil {
		profile = &entity.Profile{UserID: userID}
	}

	now := time.Now()
	profile.Latitude = &lat
	profile.Longitude = &lon
	profile.LastLocationUpdate = &now

	if err := srv.userRepo.UpdateProfile(ctx, profile); err != nil {
		return errors.Wrap(err, "failed to store live location")
	}

	srv.logger.Debug("Live location updated", slog.Any("userID", userID))

	return nil
}

// ClearPersonalInfo blanks the soft personal fields while keeping the blood
// group, which stays medically relevant.
func (srv *profileService) ClearPersonalInfo(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user for clearing")
		}

		user.FirstName = ""
		user.LastName = ""
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to clear account fields")
		}

		profile := user.Profile
		if profile == nil {
			profile = &entity.Profile{UserID: userID}
		}
		profile.Bio = ""
		profile.Location = ""
		profile.Phone = ""
		profile.BirthDate = nil

		if err := userRepo.UpdateProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to clear profile fields")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Clearing personal info failed", slog.Any("userID", userID), slog.Any("error", err))

		return err
	}

	srv.logger.Info("Personal info cleared", slog.Any("userID", userID))

	return nil
}

func applyAccountEdits(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
}

func applyProfileEdits(profile *entity.Profile, input *usecase.UpdateProfileInput) {
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.Phone != nil {
		profile.Phone = *input.Phone
	}
	if input.BloodGroup != nil {
		profile.BloodGroup = *input.BloodGroup
	}
	if input.BirthDate != nil {
		profile.BirthDate = input.BirthDate
	}
}
