// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"raktapulse/config"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/repository"
	"raktapulse/internal/domain/service"
	"raktapulse/internal/usecase"

	"raktapulse/internal/domain/entity"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAccessTokenTTL = 24 * time.Hour

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	accessTokenTTL time.Duration
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	accessTokenTTL := defaultAccessTokenTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.AccessTokenTTL > 0 {
		accessTokenTTL = params.Config.Auth.AccessTokenTTL
	}

	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		accessTokenTTL: accessTokenTTL,
		logger:         params.Logger,
	}
}

// Register orchestrates the complete account registration process. The
// account and its profile are created in one transaction so no user exists
// without a profile.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.logger.Info("Starting registration", slog.String("username", input.Username))

	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username, email and password are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.TrimSpace(input.Email),
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser, hashedPassword); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login orchestrates the login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.Debug("Starting login", slog.String("username", input.Username))

	user, passwordHash, err := srv.userRepo.FindAuthByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load login user")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if err := srv.hasher.Compare(passwordHash, input.Password); err != nil {
		srv.logger.Warn("Login failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	accessToken, err := srv.tokenService.Generate(user.ID, user.Username, srv.accessTokenTTL)
	if err != nil {
		srv.logger.Error("Failed to generate access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.logger.Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}
