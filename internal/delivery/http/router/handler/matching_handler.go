package handler

import (
	"log/slog"
	"net/http"

	"raktapulse/internal/delivery/http/response"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MatchingHandler holds dependencies for the volunteer and completion flow.
type MatchingHandler struct {
	uc     usecase.MatchingUsecase
	logger *slog.Logger
}

// NewMatchingHandler is the constructor for MatchingHandler, injected by Fx.
func NewMatchingHandler(uc usecase.MatchingUsecase, logger *slog.Logger) *MatchingHandler {
	return &MatchingHandler{uc: uc, logger: logger}
}

// Volunteer commits the authenticated donor to a request.
func (h *MatchingHandler) Volunteer(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request id")
	}

	event, err := h.uc.Volunteer(c.Request().Context(), userID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Volunteered successfully")
}

// Complete confirms that a donation event actually happened.
func (h *MatchingHandler) Complete(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donation id")
	}

	if err := h.uc.CompleteDonation(c.Request().Context(), userID, eventID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Donation confirmed")
}

// ListInvolved lists the donation events the authenticated user takes part
// in, on either side.
func (h *MatchingHandler) ListInvolved(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	events, err := h.uc.InvolvedEvents(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}
