package impl

import (
	"context"
	"testing"

	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	"raktapulse/internal/domain/geo"
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

type donorServiceMocks struct {
	donorRepo *mockRepo.MockDonorRepository
	userRepo  *mockRepo.MockUserRepository
	qrcode    *mockService.MockQRCodeGenerator
}

func createTestDonorService(t *testing.T) (usecase.DonorUsecase, *donorServiceMocks) {
	t.Helper()

	mocks := &donorServiceMocks{
		donorRepo: mockRepo.NewMockDonorRepository(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		qrcode:    mockService.NewMockQRCodeGenerator(t),
	}

	service := NewDonorService(DonorServiceParams{
		DonorRepo: mocks.donorRepo,
		UserRepo:  mocks.userRepo,
		QRCode:    mocks.qrcode,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return service, mocks
}

func floatPtr(v float64) *float64 {
	return &v
}

func TestDonorService_RegisterDonor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("successful registration", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestDonorService(t)

		userID := uuid.New()
		input := &usecase.RegisterDonorInput{
			Name:        "Ram Thapa",
			BloodGroup:  "O+",
			District:    "Kathmandu",
			Phone:       "9841000000",
			IsAvailable: true,
		}

		mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mocks.donorRepo.EXPECT().
			Create(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, donor *entity.Donor) error {
				donor.ID = uuid.New()

				return nil
			})

		donor, err := service.RegisterDonor(ctx, userID, input)

		require.NoError(t, err)
		require.NotNil(t, donor)
		assert.Equal(t, "Ram Thapa", donor.Name)
		assert.Equal(t, "O+", donor.BloodGroup)
		require.NotNil(t, donor.UserID)
		assert.Equal(t, userID, *donor.UserID)
	})

	t.Run("invalid blood group", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestDonorService(t)

		input := &usecase.RegisterDonorInput{
			Name:       "Ram Thapa",
			BloodGroup: "Z+",
			Phone:      "9841000000",
		}

		donor, err := service.RegisterDonor(ctx, uuid.New(), input)

		require.Error(t, err)
		assert.Nil(t, donor)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidBloodGroup)
	})

	t.Run("already registered as donor", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestDonorService(t)

		userID := uuid.New()
		input := &usecase.RegisterDonorInput{
			Name:       "Ram Thapa",
			BloodGroup: "O+",
			Phone:      "9841000000",
		}

		mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mocks.donorRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDonorAlreadyRegistered)

		donor, err := service.RegisterDonor(ctx, userID, input)

		require.Error(t, err)
		assert.Nil(t, donor)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyDonor)
	})

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestDonorService(t)

		userID := uuid.New()
		input := &usecase.RegisterDonorInput{
			Name:       "Ram Thapa",
			BloodGroup: "O+",
			Phone:      "9841000000",
		}

		mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		donor, err := service.RegisterDonor(ctx, userID, input)

		require.Error(t, err)
		assert.Nil(t, donor)
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestDonorService_SearchDonors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("ranks by proximity to origin", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestDonorService(t)

		// Origin is central Kathmandu. Patan is a few km away, Pokhara is
		// about 140 km away and the third donor has no coordinates at all.
		near := &entity.Donor{ID: uuid.New(), Name: "Patan Donor", Latitude: floatPtr(27.6644), Longitude: floatPtr(85.3188)}
		far := &entity.Donor{ID: uuid.New(), Name: "Pokhara Donor", Latitude: floatPtr(28.2096), Longitude: floatPtr(83.9856)}
		unlocated := &entity.Donor{ID: uuid.New(), Name: "Anywhere Donor"}

		mocks.donorRepo.EXPECT().
			Search(ctx, repository.DonorFilter{BloodGroup: "O+", AvailableOnly: true}).
			Return([]*entity.Donor{far, unlocated, near}, nil)

		ranked, err := service.SearchDonors(ctx, &usecase.SearchDonorsInput{
			BloodGroup:    "O+",
			AvailableOnly: true,
			Origin:        &geo.Origin{Lat: 27.7172, Lon: 85.3240},
		})

		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.Equal(t, near.ID, ranked[0].Entity.ID)
		assert.Equal(t, far.ID, ranked[1].Entity.ID)
		assert.Equal(t, unlocated.ID, ranked[2].Entity.ID)
		assert.True(t, ranked[0].HasDistance)
		assert.False(t, ranked[2].HasDistance)
		assert.InDelta(t, 6.2, ranked[0].DistanceKm, 1.0)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestDonorService(t)

		mocks.donorRepo.EXPECT().Search(ctx, repository.DonorFilter{}).Return(nil, errors.New("db error"))

		ranked, err := service.SearchDonors(ctx, &usecase.SearchDonorsInput{})

		require.Error(t, err)
		assert.Nil(t, ranked)
		assert.Contains(t, err.Error(), "db error")
	})
}

func TestDonorService_ShareQR(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("renders the profile URL", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestDonorService(t)

		donorID := uuid.New()
		donor := &entity.Donor{ID: donorID, Name: "Ram Thapa"}
		png := []byte{0x89, 'P', 'N', 'G'}

		mocks.donorRepo.EXPECT().FindByID(ctx, donorID).Return(donor, nil)
		mocks.qrcode.EXPECT().
			GeneratePNG("https://raktapulse.example.com/donors/" + donorID.String()).
			Return(png, nil)

		got, err := service.ShareQR(ctx, donorID)

		require.NoError(t, err)
		assert.Equal(t, png, got)
	})

	t.Run("unknown donor", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestDonorService(t)

		donorID := uuid.New()
		mocks.donorRepo.EXPECT().FindByID(ctx, donorID).Return(nil, repository.ErrDonorNotFound)

		got, err := service.ShareQR(ctx, donorID)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrDonorNotFound)
	})
}
