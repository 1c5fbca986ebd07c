package handler

import (
	"log/slog"
	"net/http"

	"raktapulse/internal/delivery/http/response"
	"raktapulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the blood bank and hospital
// directory handlers.
type CatalogHandler struct {
	bankUc     usecase.BankUsecase
	hospitalUc usecase.HospitalUsecase
	logger     *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(bankUc usecase.BankUsecase, hospitalUc usecase.HospitalUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		bankUc:     bankUc,
		hospitalUc: hospitalUc,
		logger:     logger,
	}
}

// ListBanks lists every blood bank ranked by proximity to the optional
// lat/lon origin.
func (h *CatalogHandler) ListBanks(c echo.Context) error {
	ranked, err := h.bankUc.ListBanks(c.Request().Context(), queryOrigin(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ranked, "")
}

// ListHospitals lists every hospital ranked by proximity to the optional
// lat/lon origin.
func (h *CatalogHandler) ListHospitals(c echo.Context) error {
	ranked, err := h.hospitalUc.ListHospitals(c.Request().Context(), queryOrigin(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ranked, "")
}
