package handler

import (
	"log/slog"
	"net/http"

	"raktapulse/internal/delivery/http/response"
	"raktapulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BadgeHandler holds dependencies for the badge listing handler.
type BadgeHandler struct {
	uc     usecase.BadgeUsecase
	logger *slog.Logger
}

// NewBadgeHandler is the constructor for BadgeHandler, injected by Fx.
func NewBadgeHandler(uc usecase.BadgeUsecase, logger *slog.Logger) *BadgeHandler {
	return &BadgeHandler{uc: uc, logger: logger}
}

// ListMine returns every badge the authenticated user holds.
func (h *BadgeHandler) ListMine(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	badges, err := h.uc.ListUserBadges(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, badges, "")
}
