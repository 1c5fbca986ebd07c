package handler

import (
	"log/slog"
	"net/http"
	"time"

	"raktapulse/internal/delivery/http/response"
	"raktapulse/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthRecordHandler holds dependencies for vaccination and health report
// handlers.
type HealthRecordHandler struct {
	uc     usecase.HealthUsecase
	logger *slog.Logger
}

// NewHealthRecordHandler is the constructor for HealthRecordHandler, injected by Fx.
func NewHealthRecordHandler(uc usecase.HealthUsecase, logger *slog.Logger) *HealthRecordHandler {
	return &HealthRecordHandler{uc: uc, logger: logger}
}

type addVaccineRecordRequest struct {
	VaccineName string    `json:"vaccineName" validate:"required"`
	DoseNumber  int       `json:"doseNumber" validate:"required,min=1"`
	DateTaken   time.Time `json:"dateTaken" validate:"required"`
	Location    string    `json:"location"`
	CenterName  string    `json:"centerName"`
	Notes       string    `json:"notes"`
}

// AddVaccineRecord stores one vaccination dose for the authenticated user.
func (h *HealthRecordHandler) AddVaccineRecord(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req addVaccineRecordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vaccine record input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.AddVaccineRecord(c.Request().Context(), userID, &usecase.AddVaccineRecordInput{
		VaccineName: req.VaccineName,
		DoseNumber:  req.DoseNumber,
		DateTaken:   req.DateTaken,
		Location:    req.Location,
		CenterName:  req.CenterName,
		Notes:       req.Notes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Vaccine record added")
}

// ListVaccineRecords returns the authenticated user's vaccination history.
func (h *HealthRecordHandler) ListVaccineRecords(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	records, err := h.uc.ListVaccineRecords(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

type addHealthReportRequest struct {
	Title              string     `json:"title" validate:"required"`
	HospitalName       string     `json:"hospitalName"`
	Description        string     `json:"description"`
	ReportDate         time.Time  `json:"reportDate" validate:"required"`
	NextTestDate       *time.Time `json:"nextTestDate"`
	AllowNotifications bool       `json:"allowNotifications"`
}

// AddHealthReport stores the metadata of one uploaded report.
func (h *HealthRecordHandler) AddHealthReport(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req addHealthReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid health report input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	report, err := h.uc.AddHealthReport(c.Request().Context(), userID, &usecase.AddHealthReportInput{
		Title:              req.Title,
		HospitalName:       req.HospitalName,
		Description:        req.Description,
		ReportDate:         req.ReportDate,
		NextTestDate:       req.NextTestDate,
		AllowNotifications: req.AllowNotifications,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, report, "Health report added")
}

// ListHealthReports returns the authenticated user's uploaded reports.
func (h *HealthRecordHandler) ListHealthReports(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	reports, err := h.uc.ListHealthReports(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reports, "")
}

// VaccinationStats returns the donor pool's vaccination coverage.
func (h *HealthRecordHandler) VaccinationStats(c echo.Context) error {
	stats, err := h.uc.VaccinationStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}
