package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"dogcatify-core/internal/pkg/config"
	"dogcatify-core/internal/usecase/jobs"

	"go.uber.org/fx"
)

// JobsModule optionally runs the batch jobs on internal tickers. With the
// intervals left at zero the process exposes only the trigger endpoints and
// an external scheduler owns the cadence.
var JobsModule = fx.Module("jobs",
	fx.Invoke(StartJobTickers),
)

func StartJobTickers(
	lc fx.Lifecycle,
	cfg config.Config,
	sweeper jobs.ExpirationSweeper,
	dispatcher jobs.NotificationDispatcher,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.Jobs.SweepInterval > 0 {
				go runTicker(ctx, "expiration-sweep", cfg.Jobs.SweepInterval, func(ctx context.Context) error {
					_, err := sweeper.Run(ctx)
					return err
				})
			}
			if cfg.Jobs.DispatchInterval > 0 {
				go runTicker(ctx, "notification-dispatch", cfg.Jobs.DispatchInterval, func(ctx context.Context) error {
					_, err := dispatcher.Run(ctx)
					return err
				})
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}

func runTicker(ctx context.Context, name string, interval time.Duration, run func(context.Context) error) {
	slog.Info("internal job ticker started", "job", name, "interval", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("internal job ticker stopped", "job", name)
			return
		case <-ticker.C:
			if err := run(ctx); err != nil {
				slog.Error("internal job run failed", "job", name, "error", err)
			}
		}
	}
}
