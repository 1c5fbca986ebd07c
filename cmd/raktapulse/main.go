package main

import (
	"context"
	"log/slog"
	"os"

	"raktapulse/config"
	"raktapulse/internal/delivery"
	"raktapulse/internal/delivery/http"
	"raktapulse/internal/delivery/http/middleware"
	"raktapulse/internal/delivery/http/router/handler"
	"raktapulse/internal/domain/service"
	"raktapulse/internal/infra/auth"
	"raktapulse/internal/infra/cache"
	logs "raktapulse/internal/infra/log"
	"raktapulse/internal/infra/persistence/postgres"
	"raktapulse/internal/infra/qrcode"
	"raktapulse/internal/infra/sms"
	"raktapulse/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewDonorRepository,
			postgres.NewRequestRepository,
			postgres.NewDonationRepository,
			postgres.NewBadgeRepository,
			postgres.NewNotificationRepository,
			postgres.NewMessageRepository,
			postgres.NewBankRepository,
			postgres.NewHospitalRepository,
			postgres.NewHealthRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
			sms.NewSimulatedSender,
			newRateLimiter,
		),
	)
}

// newRateLimiter exposes the Redis-backed rate limiter through its domain
// interface.
func newRateLimiter(client *redis.Client) service.RateLimiter {
	return cache.NewRateLimiter(client)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewDonorService,
			impl.NewRequestService,
			impl.NewMatchingService,
			impl.NewNotificationService,
			impl.NewMessageService,
			impl.NewBadgeService,
			impl.NewBankService,
			impl.NewHospitalService,
			impl.NewHealthService,
			impl.NewStatsService,
			impl.NewEmergencyService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewDonorHandler,
			handler.NewRequestHandler,
			handler.NewMatchingHandler,
			handler.NewCatalogHandler,
			handler.NewNotificationHandler,
			handler.NewMessageHandler,
			handler.NewHealthRecordHandler,
			handler.NewStatsHandler,
			handler.NewEmergencyHandler,
			handler.NewBadgeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
