package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"raktapulse/config"
	"raktapulse/internal/domain/repository"
	mockRepo "raktapulse/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     12,
			AccessTokenTTL: time.Hour,
		},
		Retention: &config.RetentionConfig{
			CriticalDays: 3,
			UrgentDays:   7,
			NormalDays:   15,
			InactiveDays: 7,
		},
		Emergency: &config.EmergencyConfig{
			RadiusKm:        10,
			RateLimitWindow: 10 * time.Minute,
		},
		QRCode: &config.QRCodeConfig{
			Size:    256,
			BaseURL: "https://raktapulse.example.com",
		},
	}
}

// passthroughTx wires a transaction manager mock to invoke the callback with
// the given factory, so transactional code paths run against plain mocks.
func passthroughTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
