package impl

import (
	"context"
	"log/slog"
	"time"

	"raktapulse/config"
	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Default retention thresholds in days, overridable through configuration.
// Critical requests go stale fastest: if a critical need was not met within
// days, keeping the listing only misleads donors.
const (
	defaultCriticalDays = 3
	defaultUrgentDays   = 7
	defaultNormalDays   = 15
	defaultInactiveDays = 7
)

// retentionService implements the RetentionUsecase interface.
type retentionService struct {
	requestRepo  repository.RequestRepository
	criticalDays int
	urgentDays   int
	normalDays   int
	inactiveDays int
	logger       *slog.Logger
}

// RetentionServiceParams holds dependencies for retentionService, injected by Fx.
type RetentionServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewRetentionService is the constructor for retentionService.
func NewRetentionService(params RetentionServiceParams) usecase.RetentionUsecase {
	srv := &retentionService{
		requestRepo:  params.RequestRepo,
		criticalDays: defaultCriticalDays,
		urgentDays:   defaultUrgentDays,
		normalDays:   defaultNormalDays,
		inactiveDays: defaultInactiveDays,
		logger:       params.Logger,
	}

	if params.Config != nil && params.Config.Retention != nil {
		retention := params.Config.Retention
		if retention.CriticalDays > 0 {
			srv.criticalDays = retention.CriticalDays
		}
		if retention.UrgentDays > 0 {
			srv.urgentDays = retention.UrgentDays
		}
		if retention.NormalDays > 0 {
			srv.normalDays = retention.NormalDays
		}
		if retention.InactiveDays > 0 {
			srv.inactiveDays = retention.InactiveDays
		}
	}

	return srv
}

// CleanupStale deletes active requests older than their per-urgency threshold
// and non-active requests older than the inactive threshold. Donation events
// attached to deleted requests go with them.
func (srv *retentionService) CleanupStale(ctx context.Context) (*usecase.CleanupReport, error) {
	now := time.Now()
	report := &usecase.CleanupReport{}

	var err error
	if report.CriticalRemoved, err = srv.requestRepo.DeleteStaleByUrgency(ctx, entity.UrgencyCritical, daysAgo(now, srv.criticalDays)); err != nil {
		return nil, errors.Wrap(err, "failed to delete stale critical requests")
	}
	if report.UrgentRemoved, err = srv.requestRepo.DeleteStaleByUrgency(ctx, entity.UrgencyUrgent, daysAgo(now, srv.urgentDays)); err != nil {
		return nil, errors.Wrap(err, "failed to delete stale urgent requests")
	}
	if report.NormalRemoved, err = srv.requestRepo.DeleteStaleByUrgency(ctx, entity.UrgencyNormal, daysAgo(now, srv.normalDays)); err != nil {
		return nil, errors.Wrap(err, "failed to delete stale normal requests")
	}
	if report.InactiveRemoved, err = srv.requestRepo.DeleteInactiveOlderThan(ctx, daysAgo(now, srv.inactiveDays)); err != nil {
		return nil, errors.Wrap(err, "failed to delete inactive requests")
	}

	srv.logger.Info("Retention cleanup finished",
		slog.Int64("critical", report.CriticalRemoved),
		slog.Int64("urgent", report.UrgentRemoved),
		slog.Int64("normal", report.NormalRemoved),
		slog.Int64("inactive", report.InactiveRemoved),
		slog.Int64("total", report.Total()),
	)

	return report, nil
}

func daysAgo(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}
