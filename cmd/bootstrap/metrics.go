package bootstrap

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/metrics"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		fx.Annotate(
			NewRecorder,
			fx.As(new(shared.Metrics)),
		),
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewRecorder(reg *prometheus.Registry) *metrics.Recorder {
	return metrics.NewRecorder(reg)
}
