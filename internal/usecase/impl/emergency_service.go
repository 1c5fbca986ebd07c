package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

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

const (
	defaultPingRadiusKm  = 10.0
	defaultPingRateLimit = 10 * time.Minute
)

// emergencyService implements the EmergencyUsecase interface.
type emergencyService struct {
	donorRepo       repository.DonorRepository
	smsSender       service.SMSSender
	rateLimiter     service.RateLimiter
	radiusKm        float64
	rateLimitWindow time.Duration
	logger          *slog.Logger
}

// EmergencyServiceParams holds dependencies for emergencyService, injected by Fx.
type EmergencyServiceParams struct {
	fx.In

	DonorRepo   repository.DonorRepository
	SMSSender   service.SMSSender
	RateLimiter service.RateLimiter
	Config      *config.Config
	Logger      *slog.Logger
}

// NewEmergencyService is the constructor for emergencyService.
func NewEmergencyService(params EmergencyServiceParams) usecase.EmergencyUsecase {
	radiusKm := defaultPingRadiusKm
	rateLimitWindow := defaultPingRateLimit
	if params.Config != nil && params.Config.Emergency != nil {
		if params.Config.Emergency.RadiusKm > 0 {
			radiusKm = params.Config.Emergency.RadiusKm
		}
		if params.Config.Emergency.RateLimitWindow > 0 {
			rateLimitWindow = params.Config.Emergency.RateLimitWindow
		}
	}

	return &emergencyService{
		donorRepo:       params.DonorRepo,
		smsSender:       params.SMSSender,
		rateLimiter:     params.RateLimiter,
		radiusKm:        radiusKm,
		rateLimitWindow: rateLimitWindow,
		logger:          params.Logger,
	}
}

// Ping texts every available donor of the blood group within the configured
// radius. A failed text to one donor does not stop the fan-out.
func (srv *emergencyService) Ping(ctx context.Context, actorID uuid.UUID, bloodGroup string, origin geo.Origin) (int, error) {
	if !entity.IsValidBloodGroup(bloodGroup) {
		return 0, domainerrors.ErrInvalidBloodGroup
	}

	allowed, err := srv.rateLimiter.Allow(ctx, pingRateLimitKey(actorID), srv.rateLimitWindow)
	if err != nil {
		return 0, errors.Wrap(err, "failed to check ping rate limit")
	}
	if !allowed {
		return 0, domainerrors.ErrRateLimited
	}

	donors, err := srv.donorRepo.FindAvailableByGroup(ctx, bloodGroup)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load donors for emergency ping")
	}

	message := fmt.Sprintf("URGENT: %s blood needed near you. Open the app to respond.", bloodGroup)

	reached := 0
	for _, donor := range donors {
		lat, lon, ok := donor.Coordinates()
		if !ok || donor.Phone == "" {
			continue
		}
		if geo.Distance(origin.Lat, origin.Lon, lat, lon) > srv.radiusKm {
			continue
		}

		if err := srv.smsSender.Send(ctx, donor.Phone, message); err != nil {
			srv.logger.Warn("Emergency SMS failed", slog.Any("donorID", donor.ID), slog.Any("error", err))

			continue
		}
		reached++
	}

	srv.logger.Info("Emergency ping dispatched",
		slog.Any("userID", actorID),
		slog.String("bloodGroup", bloodGroup),
		slog.Int("reached", reached),
	)

	return reached, nil
}

func pingRateLimitKey(actorID uuid.UUID) string {
	return "emergency:ping:" + actorID.String()
}
