package handler

import (
	"log/slog"
	"net/http"

	"raktapulse/internal/delivery/http/response"
	"raktapulse/internal/domain/geo"
	"raktapulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EmergencyHandler holds dependencies for the emergency ping handler.
type EmergencyHandler struct {
	uc     usecase.EmergencyUsecase
	logger *slog.Logger
}

// NewEmergencyHandler is the constructor for EmergencyHandler, injected by Fx.
func NewEmergencyHandler(uc usecase.EmergencyUsecase, logger *slog.Logger) *EmergencyHandler {
	return &EmergencyHandler{uc: uc, logger: logger}
}

type emergencyPingRequest struct {
	BloodGroup string  `json:"bloodGroup" validate:"required"`
	Latitude   float64 `json:"latitude" validate:"required,latitude"`
	Longitude  float64 `json:"longitude" validate:"required,longitude"`
}

// Ping texts every available donor of the blood group near the caller.
func (h *EmergencyHandler) Ping(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req emergencyPingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid emergency ping input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	reached, err := h.uc.Ping(c.Request().Context(), userID, req.BloodGroup, geo.Origin{
		Lat: req.Latitude,
		Lon: req.Longitude,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"reached": reached}, "Emergency ping dispatched")
}
