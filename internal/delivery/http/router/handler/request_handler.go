package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"raktapulse/internal/delivery/http/response"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for blood request handlers.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{uc: uc, logger: logger}
}

type createRequestRequest struct {
	PatientName   string    `json:"patientName" validate:"required"`
	BloodGroup    string    `json:"bloodGroup" validate:"required"`
	Location      string    `json:"location"`
	Urgency       string    `json:"urgency" validate:"required"`
	Hospital      string    `json:"hospital" validate:"required"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	ContactNumber string    `json:"contactNumber" validate:"required"`
	RequiredDate  time.Time `json:"requiredDate"`
}

// Create posts a new blood request. Anonymous posts are allowed; a valid
// token links the request to its poster.
func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.CreateRequest(c.Request().Context(), &usecase.CreateRequestInput{
		RequesterID:   maybeActorID(c),
		PatientName:   req.PatientName,
		BloodGroup:    req.BloodGroup,
		Location:      req.Location,
		Urgency:       req.Urgency,
		Hospital:      req.Hospital,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		ContactNumber: req.ContactNumber,
		RequiredDate:  req.RequiredDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Blood request posted successfully")
}

// List lists requests newest first, optionally narrowed by the status query
// parameter.
func (h *RequestHandler) List(c echo.Context) error {
	requests, err := h.uc.ListRequests(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// ListActive lists active requests, most urgent first.
func (h *RequestHandler) ListActive(c echo.Context) error {
	requests, err := h.uc.ActiveRequests(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

type updateRequestStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus lets the requester transition their request's status.
func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request id")
	}

	var req updateRequestStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	request, err := h.uc.UpdateStatus(c.Request().Context(), userID, requestID, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Request status updated")
}

// Get loads a single request.
func (h *RequestHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request id")
	}

	request, err := h.uc.GetRequest(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "")
}

// LiveMap projects located active requests onto map points, clipped to the
// optional bounding box query parameters.
func (h *RequestHandler) LiveMap(c echo.Context) error {
	bound, err := queryBound(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bounding box")
	}

	points, err := h.uc.LiveMap(c.Request().Context(), bound)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, points, "")
}

// queryBound parses the minLat/minLon/maxLat/maxLon query parameters. All
// four absent means no clipping; a partial set is an error.
func queryBound(c echo.Context) (*orb.Bound, error) {
	raw := [4]string{
		c.QueryParam("minLon"),
		c.QueryParam("minLat"),
		c.QueryParam("maxLon"),
		c.QueryParam("maxLat"),
	}

	present := 0
	for _, v := range raw {
		if v != "" {
			present++
		}
	}
	if present == 0 {
		return nil, nil
	}
	if present != len(raw) {
		return nil, errors.New("bounding box needs all four corners")
	}

	var vals [4]float64
	for i, v := range raw {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid bounding box coordinate")
		}
		vals[i] = parsed
	}

	return &orb.Bound{
		Min: orb.Point{vals[0], vals[1]},
		Max: orb.Point{vals[2], vals[3]},
	}, nil
}
