package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/repository"
	mockRepo "raktapulse/internal/mocks/repository"
	mockService "raktapulse/internal/mocks/service"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	factory      *mockRepo.MockRepositoryFactory
}

func createTestUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	mocks := &userServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockService.NewMockPasswordHasher(t),
		tokenService: mockService.NewMockTokenService(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
	}

	service := NewUserService(UserServiceParams{
		TxManager:    mocks.txManager,
		UserRepo:     mocks.userRepo,
		Hasher:       mocks.hasher,
		TokenService: mocks.tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestUserService(t)

		input := &usecase.RegisterInput{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "secret123",
			FirstName: "Alice",
			LastName:  "Shrestha",
		}

		mocks.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)
		mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)
		mocks.userRepo.EXPECT().
			Create(ctx, mock.Anything, "hashed-password").
			RunAndReturn(func(_ context.Context, user *entity.User, _ string) error {
				user.ID = uuid.New()

				return nil
			})
		passthroughTx(mocks.txManager, mocks.factory)

		output, err := service.Register(ctx, input)

		require.NoError(t, err)
		require.NotNil(t, output)
		assert.Equal(t, "alice", output.User.Username)
		assert.Equal(t, "alice@example.com", output.User.Email)
		assert.NotEqual(t, uuid.Nil, output.User.ID)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestUserService(t)

		input := &usecase.RegisterInput{
			Username: "  ",
			Email:    "alice@example.com",
			Password: "secret123",
		}

		output, err := service.Register(ctx, input)

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate username", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestUserService(t)

		input := &usecase.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret123",
		}

		mocks.hasher.EXPECT().Hash("secret123").Return("hashed-password", nil)
		mocks.factory.EXPECT().UserRepo().Return(mocks.userRepo)
		mocks.userRepo.EXPECT().
			Create(ctx, mock.Anything, "hashed-password").
			Return(repository.ErrUserAlreadyExists)
		passthroughTx(mocks.txManager, mocks.factory)

		output, err := service.Register(ctx, input)

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("hashing failure", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestUserService(t)

		input := &usecase.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret123",
		}

		mocks.hasher.EXPECT().Hash("secret123").Return("", errors.New("bcrypt error"))

		output, err := service.Register(ctx, input)

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("successful login", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestUserService(t)

		userID := uuid.New()
		user := &entity.User{ID: userID, Username: "alice"}

		mocks.userRepo.EXPECT().FindAuthByUsername(ctx, "alice").Return(user, "hashed-password", nil)
		mocks.hasher.EXPECT().Compare("hashed-password", "secret123").Return(nil)
		mocks.tokenService.EXPECT().Generate(userID, "alice", time.Hour).Return("access-token", nil)

		output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})

		require.NoError(t, err)
		require.NotNil(t, output)
		assert.Equal(t, "access-token", output.AccessToken)
		assert.Equal(t, userID, output.User.ID)
	})

	t.Run("unknown user maps to invalid credentials", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestUserService(t)

		mocks.userRepo.EXPECT().FindAuthByUsername(ctx, "ghost").Return(nil, "", repository.ErrUserNotFound)

		output, err := service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestUserService(t)

		user := &entity.User{ID: uuid.New(), Username: "alice"}

		mocks.userRepo.EXPECT().FindAuthByUsername(ctx, "alice").Return(user, "hashed-password", nil)
		mocks.hasher.EXPECT().Compare("hashed-password", "wrong").Return(errors.New("mismatch"))

		output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestUserService(t)

		mocks.userRepo.EXPECT().FindAuthByUsername(ctx, "alice").Return(nil, "", errors.New("db error"))

		output, err := service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})

		require.Error(t, err)
		assert.Nil(t, output)
		assert.Contains(t, err.Error(), "db error")
	})
}
