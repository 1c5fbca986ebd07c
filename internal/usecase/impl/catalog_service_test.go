package impl

import (
	"context"
	"testing"

	"raktapulse/internal/domain/entity"
	"raktapulse/internal/domain/geo"
	mockRepo "raktapulse/internal/mocks/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBankService(t *testing.T) (usecase.BankUsecase, *mockRepo.MockBankRepository) {
	t.Helper()

	bankRepo := mockRepo.NewMockBankRepository(t)
	service := NewBankService(BankServiceParams{
		BankRepo: bankRepo,
		Logger:   newDiscardLogger(),
	})

	return service, bankRepo
}

func createTestHospitalService(t *testing.T) (usecase.HospitalUsecase, *mockRepo.MockHospitalRepository) {
	t.Helper()

	hospitalRepo := mockRepo.NewMockHospitalRepository(t)
	service := NewHospitalService(HospitalServiceParams{
		HospitalRepo: hospitalRepo,
		Logger:       newDiscardLogger(),
	})

	return service, hospitalRepo
}

func TestBankService_ListBanks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("without an origin 24x7 banks lead", func(t *testing.T) {
		t.Parallel()

		service, bankRepo := createTestBankService(t)

		dayOnly := &entity.BloodBank{ID: uuid.New(), Name: "Alpha Bank"}
		allNight := &entity.BloodBank{ID: uuid.New(), Name: "Zeta Bank", Is24x7: true}

		bankRepo.EXPECT().FindAll(ctx).Return([]*entity.BloodBank{dayOnly, allNight}, nil)

		ranked, err := service.ListBanks(ctx, nil)

		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, allNight.ID, ranked[0].Entity.ID)
		assert.Equal(t, dayOnly.ID, ranked[1].Entity.ID)
	})

	t.Run("with an origin the nearest bank leads", func(t *testing.T) {
		t.Parallel()

		service, bankRepo := createTestBankService(t)

		near := &entity.BloodBank{ID: uuid.New(), Name: "Near Bank", Latitude: floatPtr(27.7100), Longitude: floatPtr(85.3200)}
		far := &entity.BloodBank{ID: uuid.New(), Name: "Far Bank", Is24x7: true, Latitude: floatPtr(28.2096), Longitude: floatPtr(83.9856)}

		bankRepo.EXPECT().FindAll(ctx).Return([]*entity.BloodBank{far, near}, nil)

		ranked, err := service.ListBanks(ctx, &geo.Origin{Lat: 27.7172, Lon: 85.3240})

		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, near.ID, ranked[0].Entity.ID)
		assert.True(t, ranked[0].HasDistance)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		service, bankRepo := createTestBankService(t)

		bankRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("db error"))

		ranked, err := service.ListBanks(ctx, nil)

		require.Error(t, err)
		assert.Nil(t, ranked)
		assert.Contains(t, err.Error(), "db error")
	})
}

func TestHospitalService_ListHospitals(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("alphabetical without an origin", func(t *testing.T) {
		t.Parallel()

		service, hospitalRepo := createTestHospitalService(t)

		bir := &entity.Hospital{ID: uuid.New(), Name: "Bir Hospital"}
		patan := &entity.Hospital{ID: uuid.New(), Name: "Patan Hospital"}

		hospitalRepo.EXPECT().FindAll(ctx).Return([]*entity.Hospital{patan, bir}, nil)

		ranked, err := service.ListHospitals(ctx, nil)

		require.NoError(t, err)
		require.Len(t, ranked, 2)
		assert.Equal(t, "Bir Hospital", ranked[0].Entity.Name)
		assert.Equal(t, "Patan Hospital", ranked[1].Entity.Name)
	})
}
