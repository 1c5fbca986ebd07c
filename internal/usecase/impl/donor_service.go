package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"raktapulse/config"
	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/geo"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/domain/service"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// donorService implements the DonorUsecase interface.
type donorService struct {
	donorRepo repository.DonorRepository
	userRepo  repository.UserRepository
	qrcode    service.QRCodeGenerator
	baseURL   string
	logger    *slog.Logger
}

// DonorServiceParams holds dependencies for donorService, injected by Fx.
type DonorServiceParams struct {
	fx.In

	DonorRepo repository.DonorRepository
	UserRepo  repository.UserRepository
	QRCode    service.QRCodeGenerator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDonorService is the constructor for donorService.
func NewDonorService(params DonorServiceParams) usecase.DonorUsecase {
	baseURL := ""
	if params.Config != nil && params.Config.QRCode != nil {
		baseURL = strings.TrimRight(params.Config.QRCode.BaseURL, "/")
	}

	return &donorService{
		donorRepo: params.DonorRepo,
		userRepo:  params.UserRepo,
		qrcode:    params.QRCode,
		baseURL:   baseURL,
		logger:    params.Logger,
	}
}

// RegisterDonor creates the donor record for a user. One record per account.
func (srv *donorService) RegisterDonor(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDonorInput) (*entity.Donor, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Phone) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name and phone are required")
	}
	if !entity.IsValidBloodGroup(input.BloodGroup) {
		return nil, domainerrors.ErrInvalidBloodGroup
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load registering user")
	}

	donor := &entity.Donor{
		UserID:        &userID,
		Name:          strings.TrimSpace(input.Name),
		BloodGroup:    input.BloodGroup,
		District:      input.District,
		Location:      input.Location,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Phone:         strings.TrimSpace(input.Phone),
		Email:         input.Email,
		CitizenshipNo: input.CitizenshipNo,
		IsAvailable:   input.IsAvailable,
	}

	if err := srv.donorRepo.Create(ctx, donor); err != nil {
		if errors.Is(err, repository.ErrDonorAlreadyRegistered) {
			return nil, domainerrors.ErrAlreadyDonor
		}

		return nil, errors.Wrap(err, "failed to create donor")
	}

	srv.logger.Info("Donor registered", slog.Any("donorID", donor.ID), slog.Any("userID", userID))

	return donor, nil
}

// SearchDonors filters the directory and ranks the result by proximity.
func (srv *donorService) SearchDonors(ctx context.Context, input *usecase.SearchDonorsInput) ([]geo.Ranked[*entity.Donor], error) {
	donors, err := srv.donorRepo.Search(ctx, repository.DonorFilter{
		Query:         input.Query,
		BloodGroup:    input.BloodGroup,
		District:      input.District,
		AvailableOnly: input.AvailableOnly,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search donors")
	}

	return geo.Rank(donors, input.Origin), nil
}

// GetDonor loads a single donor.
func (srv *donorService) GetDonor(ctx context.Context, donorID uuid.UUID) (*entity.Donor, error) {
	donor, err := srv.donorRepo.FindByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, domainerrors.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "failed to load donor")
	}

	return donor, nil
}

// ShareQR renders the donor's public profile URL as a PNG QR code.
func (srv *donorService) ShareQR(ctx context.Context, donorID uuid.UUID) ([]byte, error) {
	donor, err := srv.GetDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}

	profileURL := fmt.Sprintf("%s/donors/%s", srv.baseURL, donor.ID)

	png, err := srv.qrcode.GeneratePNG(profileURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render donor QR code")
	}

	return png, nil
}
