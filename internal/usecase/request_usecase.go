package usecase

import (
	"context"
	"time"

	"raktapulse/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// --- Input DTOs ---

// CreateRequestInput defines the data required to post a blood request.
// RequesterID is nil for anonymous posts.
type CreateRequestInput struct {
	RequesterID   *uuid.UUID
	PatientName   string
	BloodGroup    string
	Location      string
	Urgency       string
	Hospital      string
	Latitude      *float64
	Longitude     *float64
	ContactNumber string
	RequiredDate  time.Time
}

// --- Output DTOs ---

// MapPoint is one active request projected onto the live map.
type MapPoint struct {
	ID          uuid.UUID
	PatientName string
	BloodGroup  string
	Urgency     string
	Hospital    string
	Latitude    float64
	Longitude   float64
}

// RequestUsecase defines the interface for blood request operations.
type RequestUsecase interface {
	// CreateRequest validates and persists a new request. Missing required
	// fields fail validation with no partial write.
	CreateRequest(ctx context.Context, input *CreateRequestInput) (*entity.BloodRequest, error)

	// ActiveRequests lists active requests, most urgent first and newest
	// first within the same urgency.
	ActiveRequests(ctx context.Context) ([]*entity.BloodRequest, error)

	// ListRequests lists requests newest first, optionally narrowed to one
	// status. An empty status returns every request.
	ListRequests(ctx context.Context, status string) ([]*entity.BloodRequest, error)

	// UpdateStatus transitions a request to the given status. Only the
	// requester may do this; anonymous requests have no owner and cannot
	// be transitioned.
	UpdateStatus(ctx context.Context, actorID, requestID uuid.UUID, status string) (*entity.BloodRequest, error)

	// GetRequest loads a single request.
	GetRequest(ctx context.Context, id uuid.UUID) (*entity.BloodRequest, error)

	// LiveMap projects located active requests onto map points. A non-nil
	// bound keeps only points inside it.
	LiveMap(ctx context.Context, bound *orb.Bound) ([]MapPoint, error)
}
