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

// DonorHandler holds dependencies for donor directory handlers.
type DonorHandler struct {
	uc     usecase.DonorUsecase
	logger *slog.Logger
}

// NewDonorHandler is the constructor for DonorHandler, injected by Fx.
func NewDonorHandler(uc usecase.DonorUsecase, logger *slog.Logger) *DonorHandler {
	return &DonorHandler{uc: uc, logger: logger}
}

type registerDonorRequest struct {
	Name          string   `json:"name" validate:"required"`
	BloodGroup    string   `json:"bloodGroup" validate:"required"`
	District      string   `json:"district"`
	Location      string   `json:"location"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Phone         string   `json:"phone" validate:"required"`
	Email         string   `json:"email" validate:"omitempty,email"`
	CitizenshipNo string   `json:"citizenshipNo"`
	IsAvailable   bool     `json:"isAvailable"`
}

// Register creates the donor record for the authenticated user.
func (h *DonorHandler) Register(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req registerDonorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donor input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	donor, err := h.uc.RegisterDonor(c.Request().Context(), userID, &usecase.RegisterDonorInput{
		Name:          req.Name,
		BloodGroup:    req.BloodGroup,
		District:      req.District,
		Location:      req.Location,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Phone:         req.Phone,
		Email:         req.Email,
		CitizenshipNo: req.CitizenshipNo,
		IsAvailable:   req.IsAvailable,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, donor, "Donor registered successfully")
}

// Search filters the donor directory and ranks the result by proximity to
// the optional lat/lon origin.
func (h *DonorHandler) Search(c echo.Context) error {
	input := &usecase.SearchDonorsInput{
		Query:         c.QueryParam("q"),
		BloodGroup:    c.QueryParam("bloodGroup"),
		District:      c.QueryParam("district"),
		AvailableOnly: c.QueryParam("available") == "true",
		Origin:        queryOrigin(c),
	}

	ranked, err := h.uc.SearchDonors(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ranked, "")
}

// Get loads a single donor.
func (h *DonorHandler) Get(c echo.Context) error {
	donorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donor id")
	}

	donor, err := h.uc.GetDonor(c.Request().Context(), donorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donor, "")
}

// ShareQR renders the donor's public profile URL as a PNG QR code.
func (h *DonorHandler) ShareQR(c echo.Context) error {
	donorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donor id")
	}

	png, err := h.uc.ShareQR(c.Request().Context(), donorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
