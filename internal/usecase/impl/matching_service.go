package impl

import (
	"context"
	"fmt"
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

// matchingService implements the MatchingUsecase interface.
type matchingService struct {
	txManager    repository.TransactionManager
	donorRepo    repository.DonorRepository
	requestRepo  repository.RequestRepository
	donationRepo repository.DonationRepository
	logger       *slog.Logger
}

// MatchingServiceParams holds dependencies for matchingService, injected by Fx.
type MatchingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DonorRepo    repository.DonorRepository
	RequestRepo  repository.RequestRepository
	DonationRepo repository.DonationRepository
	Logger       *slog.Logger
}

// NewMatchingService is the constructor for matchingService.
func NewMatchingService(params MatchingServiceParams) usecase.MatchingUsecase {
	return &matchingService{
		txManager:    params.TxManager,
		donorRepo:    params.DonorRepo,
		requestRepo:  params.RequestRepo,
		donationRepo: params.DonationRepo,
		logger:       params.Logger,
	}
}

// Volunteer commits the actor's donor record to a request. The event and the
// requester's notification are written in one transaction; the unique index
// on (donor, request) turns a concurrent double volunteer into a duplicate
// error instead of a second event.
func (srv *matchingService) Volunteer(ctx context.Context, actorID, requestID uuid.UUID) (*entity.DonationEvent, error) {
	donor, err := srv.donorRepo.FindByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, domainerrors.ErrNotDonor
		}

		return nil, errors.Wrap(err, "failed to load volunteering donor")
	}

	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to load request for volunteering")
	}

	if request.RequesterID != nil && *request.RequesterID == actorID {
		return nil, domainerrors.ErrSelfVolunteer
	}

	event := &entity.DonationEvent{
		DonorID:     donor.ID,
		RequestID:   request.ID,
		DonorUserID: actorID,
		Date:        time.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DonationRepo().Create(ctx, event); err != nil {
			if errors.Is(err, repository.ErrDuplicateDonation) {
				return domainerrors.ErrDuplicateVolunteer
			}

			return errors.Wrap(err, "failed to create donation event")
		}

		if request.RequesterID == nil {
			return nil
		}

		notification := &entity.Notification{
			UserID:  *request.RequesterID,
			Message: fmt.Sprintf("%s volunteered to donate %s for %s.", donor.Name, request.BloodGroup, request.PatientName),
		}
		if err := repoFactory.NotificationRepo().Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to notify requester")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Volunteering failed",
			slog.Any("userID", actorID),
			slog.Any("requestID", requestID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.logger.Info("Donor volunteered",
		slog.Any("eventID", event.ID),
		slog.Any("donorID", donor.ID),
		slog.Any("requestID", request.ID),
	)

	return event, nil
}

// CompleteDonation confirms a donation happened. Completion, the donor's
// last-donation date, badge grants and both notifications commit together.
func (srv *matchingService) CompleteDonation(ctx context.Context, actorID, eventID uuid.UUID) error {
	event, err := srv.donationRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return domainerrors.ErrDonationNotFound
		}

		return errors.Wrap(err, "failed to load donation event")
	}

	if event.IsCompleted {
		return nil
	}

	request, err := srv.requestRepo.FindByID(ctx, event.RequestID)
	if err != nil && !errors.Is(err, repository.ErrRequestNotFound) {
		return errors.Wrap(err, "failed to load request for completion")
	}

	if !canComplete(actorID, event, request) {
		return domainerrors.ErrCompletionNotAllowed
	}

	completedAt := time.Now()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.DonationRepo().MarkCompleted(ctx, event.ID, completedAt); err != nil {
			if errors.Is(err, repository.ErrDonationAlreadyCompleted) {
				return err
			}

			return errors.Wrap(err, "failed to mark donation completed")
		}

		if err := srv.touchDonor(ctx, repoFactory.DonorRepo(), event.DonorID, completedAt); err != nil {
			return err
		}

		completed, err := repoFactory.DonationRepo().CountCompletedByDonorUser(ctx, event.DonorUserID)
		if err != nil {
			return errors.Wrap(err, "failed to count completed donations")
		}

		if err := srv.awardBadges(ctx, repoFactory.BadgeRepo(), event.DonorUserID, int(completed)); err != nil {
			return err
		}

		return srv.notifyCompletion(ctx, repoFactory.NotificationRepo(), event, request)
	})
	if err != nil {
		// A concurrent completion already ran the side effects; this call
		// becomes a no-op like any repeat completion.
		if errors.Is(err, repository.ErrDonationAlreadyCompleted) {
			return nil
		}

		srv.logger.Warn("Donation completion failed",
			slog.Any("eventID", eventID),
			slog.Any("userID", actorID),
			slog.Any("error", err),
		)

		return err
	}

	srv.logger.Info("Donation completed", slog.Any("eventID", eventID), slog.Any("donorUserID", event.DonorUserID))

	return nil
}

// InvolvedEvents lists events where the actor is the donor or the requester.
func (srv *matchingService) InvolvedEvents(ctx context.Context, actorID uuid.UUID) ([]*entity.DonationEvent, error) {
	events, err := srv.donationRepo.FindInvolvedByUser(ctx, actorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list involved donation events")
	}

	return events, nil
}

// canComplete reports whether the actor is the event's donor user or the
// request's requester. A deleted request leaves only the donor side.
func canComplete(actorID uuid.UUID, event *entity.DonationEvent, request *entity.BloodRequest) bool {
	if event.DonorUserID == actorID {
		return true
	}
	if request != nil && request.RequesterID != nil && *request.RequesterID == actorID {
		return true
	}

	return false
}

// touchDonor stamps the donor's last-donation date. Events whose donor record
// has since been removed complete anyway.
func (srv *matchingService) touchDonor(ctx context.Context, donorRepo repository.DonorRepository, donorID uuid.UUID, completedAt time.Time) error {
	donor, err := donorRepo.FindByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load donor for completion")
	}

	donor.LastDonationDate = &completedAt
	if err := donorRepo.Update(ctx, donor); err != nil {
		return errors.Wrap(err, "failed to stamp last donation date")
	}

	return nil
}

// awardBadges grants every tier the completed-donation count qualifies for.
// Grants are idempotent, so already-held tiers are harmless. A badge missing
// from the catalog is skipped with a warning rather than failing the
// completion.
func (srv *matchingService) awardBadges(ctx context.Context, badgeRepo repository.BadgeRepository, userID uuid.UUID, completed int) error {
	for _, name := range entity.BadgeTiersForCount(completed) {
		badge, err := badgeRepo.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, repository.ErrBadgeNotFound) {
				srv.logger.Warn("Badge missing from catalog, skipping grant", slog.String("badge", name))

				continue
			}

			return errors.Wrap(err, "failed to look up badge")
		}

		if err := badgeRepo.Grant(ctx, userID, badge.ID); err != nil {
			return errors.Wrap(err, "failed to grant badge")
		}
	}

	return nil
}

// notifyCompletion tells both parties. The requester side is skipped for
// anonymous or deleted requests.
func (srv *matchingService) notifyCompletion(ctx context.Context, notificationRepo repository.NotificationRepository, event *entity.DonationEvent, request *entity.BloodRequest) error {
	donorNote := &entity.Notification{
		UserID:  event.DonorUserID,
		Message: "Your donation was confirmed. Thank you for saving lives!",
	}
	if err := notificationRepo.Create(ctx, donorNote); err != nil {
		return errors.Wrap(err, "failed to notify donor")
	}

	if request == nil || request.RequesterID == nil {
		return nil
	}

	requesterNote := &entity.Notification{
		UserID:  *request.RequesterID,
		Message: fmt.Sprintf("A donation for %s was confirmed as completed.", request.PatientName),
	}
	if err := notificationRepo.Create(ctx, requesterNote); err != nil {
		return errors.Wrap(err, "failed to notify requester")
	}

	return nil
}
