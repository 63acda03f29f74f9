package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/cmd/bootstrap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/config"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// never expose debug output because of a config mistake
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           travelconnect vendor inventory
// @version         1.0
// @description     Inventory gap detection and AI promotion review for travel vendors.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("🚀 Starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("Server failed to start", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 Stopping server")
			return nil
		},
	})
}

func scheduleDailyScan(lc fx.Lifecycle, cfg config.Config, scheduler *usecase.DailyScanScheduler, scans commands.InventoryCommands, logger *slog.Logger) {
	if !cfg.Scan.ScheduleOnStart {
		logger.Info("Daily scan scheduling skipped", "reason", "SCAN_SCHEDULE_ON_START=false")
		return
	}
	job := func(ctx context.Context) {
		if _, err := scans.RunScan(ctx); err != nil {
			logger.Error("Scheduled inventory scan failed", "error", err)
		}
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			scheduler.Schedule(ctx, job)
			return nil
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
			scheduleDailyScan,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("Application failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("Application failed to stop cleanly", "error", err)
	}

	slog.Info("Application stopped")
}
