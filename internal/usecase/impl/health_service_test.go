package impl

import (
	"context"
	"testing"
	"time"

	"raktapulse/internal/domain/entity"
	domainerrors "raktapulse/internal/domain/errors"
	mockRepo "raktapulse/internal/mocks/repository"
	"raktapulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type healthServiceMocks struct {
	healthRepo *mockRepo.MockHealthRepository
	donorRepo  *mockRepo.MockDonorRepository
}

func createTestHealthService(t *testing.T) (usecase.HealthUsecase, *healthServiceMocks) {
	t.Helper()

	mocks := &healthServiceMocks{
		healthRepo: mockRepo.NewMockHealthRepository(t),
		donorRepo:  mockRepo.NewMockDonorRepository(t),
	}

	service := NewHealthService(HealthServiceParams{
		HealthRepo: mocks.healthRepo,
		DonorRepo:  mocks.donorRepo,
		Logger:     newDiscardLogger(),
	})

	return service, mocks
}

func TestHealthService_AddVaccineRecord(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stores the dose", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestHealthService(t)

		userID := uuid.New()
		taken := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

		mocks.healthRepo.EXPECT().
			CreateVaccineRecord(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, record *entity.VaccineRecord) error {
				record.ID = uuid.New()

				return nil
			})

		record, err := service.AddVaccineRecord(ctx, userID, &usecase.AddVaccineRecordInput{
			VaccineName: "  Covishield  ",
			DoseNumber:  2,
			DateTaken:   taken,
			CenterName:  "Teku Hospital",
		})

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, "Covishield", record.VaccineName)
		assert.Equal(t, 2, record.DoseNumber)
		assert.Equal(t, userID, record.UserID)
	})

	t.Run("dose number below one", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestHealthService(t)

		record, err := service.AddVaccineRecord(ctx, uuid.New(), &usecase.AddVaccineRecordInput{
			VaccineName: "Covishield",
			DoseNumber:  0,
			DateTaken:   time.Now(),
		})

		require.Error(t, err)
		assert.Nil(t, record)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("missing date", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestHealthService(t)

		record, err := service.AddVaccineRecord(ctx, uuid.New(), &usecase.AddVaccineRecordInput{
			VaccineName: "Covishield",
			DoseNumber:  1,
		})

		require.Error(t, err)
		assert.Nil(t, record)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestHealthService_AddHealthReport(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("stores the report metadata", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestHealthService(t)

		userID := uuid.New()
		reportDate := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

		mocks.healthRepo.EXPECT().
			CreateHealthReport(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, report *entity.HealthReport) error {
				report.ID = uuid.New()

				return nil
			})

		report, err := service.AddHealthReport(ctx, userID, &usecase.AddHealthReportInput{
			Title:        "Annual checkup",
			HospitalName: "Patan Hospital",
			ReportDate:   reportDate,
		})

		require.NoError(t, err)
		require.NotNil(t, report)
		assert.Equal(t, "Annual checkup", report.Title)
		assert.Equal(t, userID, report.UserID)
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		service, _ := createTestHealthService(t)

		report, err := service.AddHealthReport(ctx, uuid.New(), &usecase.AddHealthReportInput{
			ReportDate: time.Now(),
		})

		require.Error(t, err)
		assert.Nil(t, report)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestHealthService_VaccinationStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("computes the coverage percentage", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestHealthService(t)

		mocks.donorRepo.EXPECT().Count(ctx).Return(int64(40), nil)
		mocks.donorRepo.EXPECT().CountFullyVaccinated(ctx).Return(int64(25), nil)

		stats, err := service.VaccinationStats(ctx)

		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, int64(40), stats.TotalDonors)
		assert.Equal(t, int64(25), stats.VaccinatedCount)
		assert.Equal(t, 62, stats.Percentage)
	})

	t.Run("empty donor pool", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestHealthService(t)

		mocks.donorRepo.EXPECT().Count(ctx).Return(int64(0), nil)
		mocks.donorRepo.EXPECT().CountFullyVaccinated(ctx).Return(int64(0), nil)

		stats, err := service.VaccinationStats(ctx)

		require.NoError(t, err)
		assert.Zero(t, stats.Percentage)
	})

	t.Run("repository failure", func(t *testing.T) {
		t.Parallel()

		service, mocks := createTestHealthService(t)

		mocks.donorRepo.EXPECT().Count(ctx).Return(int64(0), errors.New("db error"))

		stats, err := service.VaccinationStats(ctx)

		require.Error(t, err)
		assert.Nil(t, stats)
		assert.Contains(t, err.Error(), "db error")
	})
}
