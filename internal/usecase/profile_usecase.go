package usecase

import (
	"context"
	"time"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileView aggregates everything the profile page shows.
type ProfileView struct {
	User                *entity.User
	Donor               *entity.Donor // nil when the user is not a donor
	Badges              []*entity.Badge
	UnreadNotifications int64
	UnreadMessages      int64
}

// UpdateProfileInput carries the editable profile fields. Nil pointers mean
// "leave unchanged".
type UpdateProfileInput struct {
	FirstName  *string
	LastName   *string
	Bio        *string
	Location   *string
	Phone      *string
	BloodGroup *string
	BirthDate  *time.Time
}

// ProfileUsecase defines profile-related business operations.
type ProfileUsecase interface {
	// GetProfile loads the profile view for a user.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)

	// UpdateProfile applies the edits and syncs the linked donor record
	// (blood group, location, phone) within the same transaction.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*ProfileView, error)

	// UpdateLiveLocation stores the user's reported coordinates and stamps
	// the update time.
	UpdateLiveLocation(ctx context.Context, userID uuid.UUID, lat, lon float64) error

	// ClearPersonalInfo blanks the soft personal fields (names, bio,
	// location, phone, birth date) while keeping the blood group.
	ClearPersonalInfo(ctx context.Context, userID uuid.UUID) error
}
