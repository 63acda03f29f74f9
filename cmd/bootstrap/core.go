package bootstrap

import (
	"log/slog"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/middleware"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/config"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/jwt"

	"go.uber.org/fx"
)

// ConfigModule reads the environment. Tests replace it with a fixed config.
var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)

// RuntimeModule provides the process-wide logger and token service.
var RuntimeModule = fx.Module("runtime",
	fx.Provide(
		NewLogger,
		NewJWTService,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	ttl, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrapf(err, "parse JWT_DURATION %q", cfg.JWT.Duration)
	}
	if ttl <= 0 {
		return nil, errs.Newf("JWT_DURATION must be positive, got %s", ttl)
	}
	return jwt.NewService(cfg.JWT.Secret, ttl), nil
}
