package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	requestRepo repository.RequestRepository
	logger      *slog.Logger
}

// RequestServiceParams holds dependencies for requestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	Logger      *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo: params.RequestRepo,
		logger:      params.Logger,
	}
}

// CreateRequest validates and persists a new blood request. Validation runs
// before any write, so a rejected request leaves no partial row.
func (srv *requestService) CreateRequest(ctx context.Context, input *usecase.CreateRequestInput) (*entity.BloodRequest, error) {
	var missing []string
	if strings.TrimSpace(input.PatientName) == "" {
		missing = append(missing, "patient_name")
	}
	if strings.TrimSpace(input.BloodGroup) == "" {
		missing = append(missing, "blood_group")
	}
	if strings.TrimSpace(input.Hospital) == "" {
		missing = append(missing, "hospital")
	}
	if strings.TrimSpace(input.ContactNumber) == "" {
		missing = append(missing, "contact_number")
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing required fields: " + strings.Join(missing, ", "))
	}
	if !entity.IsValidBloodGroup(input.BloodGroup) {
		return nil, domainerrors.ErrInvalidBloodGroup
	}
	if !entity.IsValidUrgency(input.Urgency) {
		return nil, domainerrors.ErrInvalidUrgency
	}

	request := &entity.BloodRequest{
		RequesterID:   input.RequesterID,
		PatientName:   strings.TrimSpace(input.PatientName),
		BloodGroup:    input.BloodGroup,
		Location:      input.Location,
		Urgency:       input.Urgency,
		Hospital:      strings.TrimSpace(input.Hospital),
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		ContactNumber: strings.TrimSpace(input.ContactNumber),
		RequiredDate:  input.RequiredDate,
		Status:        entity.RequestStatusActive,
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create blood request")
	}

	srv.logger.Info("Blood request created",
		slog.Any("requestID", request.ID),
		slog.String("bloodGroup", request.BloodGroup),
		slog.String("urgency", request.Urgency),
	)

	return request, nil
}

// ActiveRequests lists active requests, most urgent first.
func (srv *requestService) ActiveRequests(ctx context.Context) ([]*entity.BloodRequest, error) {
	requests, err := srv.requestRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active requests")
	}

	return requests, nil
}

// ListRequests lists requests newest first, optionally narrowed to one
// status.
func (srv *requestService) ListRequests(ctx context.Context, status string) ([]*entity.BloodRequest, error) {
	status = strings.TrimSpace(status)
	if status != "" && !entity.IsValidRequestStatus(status) {
		return nil, domainerrors.ErrInvalidRequestStatus
	}

	requests, err := srv.requestRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// UpdateStatus transitions a request to the given status. Leaving the active
// status stamps AcceptedAt so retention treats the request as settled;
// returning to it clears the stamp.
func (srv *requestService) UpdateStatus(ctx context.Context, actorID, requestID uuid.UUID, status string) (*entity.BloodRequest, error) {
	if !entity.IsValidRequestStatus(status) {
		return nil, domainerrors.ErrInvalidRequestStatus
	}

	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to load request for status update")
	}

	if request.RequesterID == nil || *request.RequesterID != actorID {
		return nil, domainerrors.ErrNotRequestOwner
	}

	request.Status = status
	if status == entity.RequestStatusActive {
		request.AcceptedAt = nil
	} else if request.AcceptedAt == nil {
		now := time.Now()
		request.AcceptedAt = &now
	}

	if err := srv.requestRepo.Update(ctx, request); err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to update request status")
	}

	srv.logger.Info("Request status updated",
		slog.Any("requestID", request.ID),
		slog.String("status", status),
	)

	return request, nil
}

// GetRequest loads a single request.
func (srv *requestService) GetRequest(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to load request")
	}

	return request, nil
}

// LiveMap projects located active requests onto map points, optionally
// clipped to a bounding box.
func (srv *requestService) LiveMap(ctx context.Context, bound *orb.Bound) ([]usecase.MapPoint, error) {
	requests, err := srv.requestRepo.FindActiveLocated(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load located requests")
	}

	points := make([]usecase.MapPoint, 0, len(requests))
	for _, request := range requests {
		if request.Latitude == nil || request.Longitude == nil {
			continue
		}

		if bound != nil && !bound.Contains(orb.Point{*request.Longitude, *request.Latitude}) {
			continue
		}

		points = append(points, usecase.MapPoint{
			ID:          request.ID,
			PatientName: request.PatientName,
			BloodGroup:  request.BloodGroup,
			Urgency:     request.Urgency,
			Hospital:    request.Hospital,
			Latitude:    *request.Latitude,
			Longitude:   *request.Longitude,
		})
	}

	return points, nil
}
