// Command cleanup deletes stale blood requests and exits. It is meant to run
// from a scheduler such as cron.
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
)

type runCleanupParams struct {
	fx.In
	fx.Shutdowner

	Retention usecase.RetentionUsecase
	Logger    *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		fx.Invoke(
			runCleanup,
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
			postgres.NewRequestRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRetentionService,
		),
	)
}

func runCleanup(ctx context.Context, params runCleanupParams) {
	go func() {
		report, err := params.Retention.CleanupStale(ctx)
		if err != nil {
			params.Logger.Error("Cleanup failed", slog.Any("error", err))

			if shutdownErr := params.Shutdown(); shutdownErr != nil {
				slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
				os.Exit(1)
			}

			return
		}

		params.Logger.Info("Cleanup finished",
			slog.Int64("critical", report.CriticalRemoved),
			slog.Int64("urgent", report.UrgentRemoved),
			slog.Int64("normal", report.NormalRemoved),
			slog.Int64("inactive", report.InactiveRemoved),
			slog.Int64("total", report.Total()),
		)

		if shutdownErr := params.Shutdown(); shutdownErr != nil {
			slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
			os.Exit(1)
		}
	}()
}
