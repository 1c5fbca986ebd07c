// Command seed runs the schema migrations and loads the built-in hospital and
// badge catalogs. It is safe to run repeatedly.
package main

import (
	"context"
	"log/slog"
	"os"

	"raktapulse/config"
	logs "raktapulse/internal/infra/log"
	"raktapulse/internal/infra/persistence/postgres"
	"raktapulse/internal/usecase"
	"raktapulse/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type runSeedParams struct {
	fx.In
	fx.Shutdowner

	DB     *gorm.DB
	Seed   usecase.SeedUsecase
	Logger *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(
			runSeed,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewHospitalRepository,
			postgres.NewBadgeRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSeedService,
		),
	)
}

func runSeed(ctx context.Context, params runSeedParams) {
	go func() {
		if err := postgres.Migrate(params.DB); err != nil {
			params.Logger.Error("Migration failed", slog.Any("error", err))
			shutdown(params.Shutdowner)

			return
		}

		if err := params.Seed.SeedCatalogs(ctx); err != nil {
			params.Logger.Error("Seeding failed", slog.Any("error", err))
			shutdown(params.Shutdowner)

			return
		}

		params.Logger.Info("Catalogs seeded")
		shutdown(params.Shutdowner)
	}()
}

func shutdown(shutdowner fx.Shutdowner) {
	if err := shutdowner.Shutdown(); err != nil {
		slog.Error("Failed to shutdown gracefully", slog.Any("error", err))
		os.Exit(1)
	}
}
