//go:build unit

package commands_test

import (
	"testing"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/booking"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/gap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/docstore"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/notifier"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/repository"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/clock"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/metrics"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/random"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/testutil"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type fixtureOpts struct {
	notifier shared.Notifier
	observer commands.PreferencesObserver
	seed     bool
	// genDelay slows every promotion draft down.
	genDelay time.Duration
	// bookings replaces the empty booking script.
	bookings random.Source
}

// fixture wires the real commands over an in-memory store. Every random draw
// is scripted: unless opts.bookings says otherwise bookings all start today,
// and generators always pick the first trend, name and description.
type fixture struct {
	clock       *clock.MockClock
	listings    *repository.ListingRepository
	inventories *repository.InventoryRepository
	pending     *repository.PendingPromotionRepository
	events      *repository.NotificationRepository
	prefs       *repository.PreferencesRepository

	notifications commands.NotificationCommands
	promotions    commands.PromotionCommands
	inventory     commands.InventoryCommands
}

func newFixture(t *testing.T, opts fixtureOpts) *fixture {
	t.Helper()

	logger := testutil.DiscardLogger()
	store := docstore.NewMemoryStore()
	clk := clock.NewMockClock(fixedNow)
	rec := metrics.NewRecorder(prometheus.NewRegistry())

	if opts.bookings == nil {
		opts.bookings = &random.Scripted{}
	}
	if opts.notifier == nil {
		opts.notifier = notifier.NewLogNotifier(logger)
	}

	catalog, err := promotion.DefaultCatalog()
	require.NoError(t, err)

	f := &fixture{
		clock:       clk,
		listings:    repository.NewListingRepository(store, logger),
		inventories: repository.NewInventoryRepository(store, logger),
		pending:     repository.NewPendingPromotionRepository(store, logger),
		events:      repository.NewNotificationRepository(store, logger),
		prefs:       repository.NewPreferencesRepository(store, logger),
	}

	f.notifications = commands.NewNotificationCommands(f.events, f.prefs, opts.notifier, opts.observer, clk, rec, logger)
	generator := promotion.NewGenerator(catalog, &random.Scripted{}, clk, opts.genDelay)
	f.promotions = commands.NewPromotionCommands(f.pending, f.notifications, generator, clk, rec, logger)
	f.inventory = commands.NewInventoryCommands(
		commands.ScanEngine{
			Synthesizer: booking.NewSynthesizer(opts.bookings),
			Analyzer:    inventory.NewAnalyzer(inventory.DefaultWindowDays),
			Detector:    gap.NewDetector(),
		},
		commands.ScanOptions{SeedDemoCatalog: opts.seed},
		f.listings, f.inventories, f.prefs, f.promotions, f.notifications, clk, rec, logger,
	)
	return f
}
