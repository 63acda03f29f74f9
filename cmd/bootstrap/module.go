package bootstrap

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the whole application minus the HTTP engine and server hooks,
// which cmd/main.go and the e2e setup each supply.
var Module = fx.Options(
	ConfigModule,
	RuntimeModule,
	// backends
	StoreModule,
	NotifierModule,
	MetricsModule,
	// layers, inside out
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
