// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"raktapulse/internal/delivery/http/response"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/geo"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// actorID returns the authenticated user's ID set by the auth middleware.
func actorID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return id, nil
}

// maybeActorID returns the authenticated user's ID, or nil on anonymous
// requests passed through the optional auth middleware.
func maybeActorID(c echo.Context) *uuid.UUID {
	if id, ok := c.Get("userID").(uuid.UUID); ok {
		return &id
	}

	return nil
}

// queryOrigin parses the optional lat/lon query pair shared by every
// proximity-ranked listing.
func queryOrigin(c echo.Context) *geo.Origin {
	if origin, ok := geo.ParseOrigin(c.QueryParam("lat"), c.QueryParam("lon")); ok {
		return &origin
	}

	return nil
}
