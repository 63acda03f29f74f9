package components

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/booking"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/gap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/clock"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/config"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/random"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClock,
	func(cfg config.Config) random.Source {
		return random.New(cfg.Scan.Seed)
	},
	promotion.DefaultCatalog,
	func(cfg config.Config, catalog *promotion.Catalog, rng random.Source, clk clock.Clock) *promotion.Generator {
		return promotion.NewGenerator(catalog, rng, clk, cfg.Scan.GenerationDelay)
	},
	gap.NewDetector,
	func(cfg config.Config, rng random.Source, detector *gap.Detector) commands.ScanEngine {
		return commands.ScanEngine{
			Synthesizer: booking.NewSynthesizer(rng),
			Analyzer:    inventory.NewAnalyzer(cfg.Scan.WindowDays),
			Detector:    detector,
		}
	},
	func(cfg config.Config) commands.ScanOptions {
		return commands.ScanOptions{SeedDemoCatalog: cfg.Scan.SeedDemoCatalog}
	},
)

// NewClock reports wall time in the scan time zone so "today" and the
// daily scan time follow the vendor's calendar.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Scan.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewInLocation(clock.NewRealClock(), loc), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		usecase.NewDailyScanScheduler,
		func(s *usecase.DailyScanScheduler) commands.PreferencesObserver {
			return s
		},
		commands.NewNotificationCommands,
		commands.NewPromotionCommands,
		commands.NewInventoryCommands,
		commands.NewListingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
		queries.NewPromotionQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
