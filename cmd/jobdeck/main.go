package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"jobdeck/internal/actions"
	"jobdeck/internal/config"
	"jobdeck/internal/gateway"
	"jobdeck/internal/notify"
	"jobdeck/internal/state"
	"jobdeck/internal/storage"
	"jobdeck/internal/telemetry"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return zap.NewProduction()
}

// registerTelemetry starts the OTLP trace exporter when a collector is
// configured; without one the tracer stays a no-op.
func registerTelemetry(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	if cfg.OTLPCollectorURL == "" {
		return
	}

	var shutdown func()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			stop, err := telemetry.InitTracer(ctx, "jobdeck", cfg.OTLPCollectorURL)
			if err != nil {
				logger.Warn("Tracing disabled", zap.Error(err))
				return nil
			}
			shutdown = stop
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown != nil {
				shutdown()
			}
			return nil
		},
	})
}

// registerNotifications streams server notifications for the hydrated
// session, if any, for the lifetime of the process.
func registerNotifications(sub notify.Subscriber, app *state.App, logger *zap.Logger, lc fx.Lifecycle) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			sess := app.Session.Current()
			if !sess.IsAuthenticated {
				logger.Info("No stored session, notifications idle")
				return nil
			}

			events, err := sub.Subscribe(ctx, sess.User.ID)
			if err != nil {
				logger.Warn("Notifications unavailable", zap.Error(err))
				return nil
			}

			go func() {
				for evt := range events {
					logger.Info("Notification received",
						zap.String("type", evt.Type),
						zap.String("message", evt.Message),
						zap.String("job_id", evt.JobID),
					)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return sub.Close()
		},
	})
}

func main() {
	_ = godotenv.Load()

	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			storage.New,
			gateway.NewClient,
			state.NewApp,
			actions.New,
			notify.New,
		),
		fx.Invoke(
			registerTelemetry,
			registerNotifications,
			func(*actions.Actions) {},
		),
	)

	startCtx := context.Background()
	if err := app.Start(startCtx); err != nil {
		log.Fatal(err)
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	stopCtx := context.Background()
	if err := app.Stop(stopCtx); err != nil {
		log.Fatal(err)
	}
}
