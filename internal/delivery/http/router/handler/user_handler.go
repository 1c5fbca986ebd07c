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

// UserHandler holds dependencies for account and profile handlers.
type UserHandler struct {
	userUc    usecase.UserUsecase
	profileUc usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(userUc usecase.UserUsecase, profileUc usecase.ProfileUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUc:    userUc,
		profileUc: profileUc,
		logger:    logger,
	}
}

type registerRequest struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "User registered successfully")
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.userUc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetProfile returns the authenticated user's profile view.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	view, err := h.profileUc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

type updateProfileRequest struct {
	FirstName  *string    `json:"firstName"`
	LastName   *string    `json:"lastName"`
	Bio        *string    `json:"bio"`
	Location   *string    `json:"location"`
	Phone      *string    `json:"phone"`
	BloodGroup *string    `json:"bloodGroup"`
	BirthDate  *time.Time `json:"birthDate"`
}

// UpdateProfile applies partial edits to the authenticated user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	view, err := h.profileUc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Bio:        req.Bio,
		Location:   req.Location,
		Phone:      req.Phone,
		BloodGroup: req.BloodGroup,
		BirthDate:  req.BirthDate,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Profile updated successfully")
}

type liveLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// UpdateLiveLocation stores the authenticated user's reported coordinates.
func (h *UserHandler) UpdateLiveLocation(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req liveLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.profileUc.UpdateLiveLocation(c.Request().Context(), userID, req.Latitude, req.Longitude); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Location updated")
}

// ClearPersonalInfo blanks the authenticated user's soft personal fields.
func (h *UserHandler) ClearPersonalInfo(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.profileUc.ClearPersonalInfo(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Personal information cleared")
}
