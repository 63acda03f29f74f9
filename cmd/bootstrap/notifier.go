package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/notifier"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/config"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

// NewNotifier picks the out-of-dashboard delivery channel named by NOTIFIER_KIND.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.Notifier {
	switch cfg.Notifier.Kind {
	case config.NotifierAMQP:
		n := notifier.NewAMQPNotifier(cfg.Notifier.AMQPURL, cfg.Notifier.AMQPQueue, logger)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return n.Close()
			},
		})
		return n

	case config.NotifierKafka:
		n := notifier.NewKafkaNotifier(notifier.NewKafkaWriter(cfg.Notifier.KafkaBrokers, cfg.Notifier.KafkaTopic), logger)
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return n.Close()
			},
		})
		return n

	default:
		return notifier.NewLogNotifier(logger)
	}
}
