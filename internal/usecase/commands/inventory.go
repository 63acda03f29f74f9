package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/booking"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/gap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/clock"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"
)

// ScanEngine groups the pure pipeline stages.
type ScanEngine struct {
	Synthesizer *booking.Synthesizer
	Analyzer    *inventory.Analyzer
	Detector    *gap.Detector
}

type ScanOptions struct {
	// SeedDemoCatalog stores listing.DemoCatalog when no listings exist yet.
	SeedDemoCatalog bool
}

type ScanResult struct {
	ScannedAt      time.Time
	Listings       int
	ExpiredCleared int
	Gaps           []gap.InventoryGap
	Pending        []promotion.PendingAIPromotion
	AutoApproved   int
	// Shared is set when the caller joined a scan that was already running.
	Shared         bool
}

type InventoryCommands interface {
	// RunScan executes the full pipeline. Concurrent calls share one run.
	RunScan(ctx context.Context) (*ScanResult, error)
}

type inventoryCommandsImpl struct {
	engine        ScanEngine
	opts          ScanOptions
	listings      shared.ListingRepository
	inventories   shared.InventoryRepository
	prefs         shared.PreferencesRepository
	promotions    PromotionCommands
	notifications NotificationCommands
	clock         clock.Clock
	metrics       shared.Metrics
	logger        *slog.Logger
	group         singleflight.Group
	newID         func() string
}

func NewInventoryCommands(
	engine ScanEngine,
	opts ScanOptions,
	listings shared.ListingRepository,
	inventories shared.InventoryRepository,
	prefs shared.PreferencesRepository,
	promotions PromotionCommands,
	notifications NotificationCommands,
	clk clock.Clock,
	metrics shared.Metrics,
	logger *slog.Logger,
) InventoryCommands {
	return &inventoryCommandsImpl{
		engine:        engine,
		opts:          opts,
		listings:      listings,
		inventories:   inventories,
		prefs:         prefs,
		promotions:    promotions,
		notifications: notifications,
		clock:         clk,
		metrics:       metrics,
		logger:        logger,
		newID:         uuid.NewString,
	}
}

func (uc *inventoryCommandsImpl) RunScan(ctx context.Context) (*ScanResult, error) {
	// the shared run outlives any one caller; each caller stops waiting on its own ctx
	ch := uc.group.DoChan("scan", func() (any, error) {
		return uc.scan(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		res := *r.Val.(*ScanResult)
		res.Shared = r.Shared
		return &res, nil
	}
}

func (uc *inventoryCommandsImpl) scan(ctx context.Context) (res *ScanResult, err error) {
	started := time.Now()
	ctx, span := tracer.Start(ctx, "inventory.scan")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		listings := 0
		if res != nil {
			listings = res.Listings
		}
		uc.metrics.ObserveScan(time.Since(started), listings, err)
	}()

	now := uc.clock.Now()
	res = &ScanResult{ScannedAt: now}

	if res.ExpiredCleared, err = uc.promotions.ClearExpired(ctx); err != nil {
		return nil, err
	}

	catalog, err := uc.catalog(ctx)
	if err != nil {
		return nil, err
	}
	res.Listings = len(catalog)

	today := inventory.Today(now)
	window := uc.engine.Analyzer.WindowDays()
	invs := make([]inventory.ListingInventory, 0, len(catalog))
	for _, l := range catalog {
		bookings := uc.engine.Synthesizer.Synthesize(l.ID, l.Type, l.Capacity, today, window)
		invs = append(invs, uc.engine.Analyzer.Inventory(l, bookings, now))
	}
	if err = uc.inventories.ReplaceAll(ctx, invs); err != nil {
		return nil, errs.Wrap(err, "store inventory snapshot")
	}

	res.Gaps = uc.engine.Detector.Detect(invs)
	span.SetAttributes(
		attribute.Int("listings", res.Listings),
		attribute.Int("gaps", len(res.Gaps)),
	)

	prefs := uc.prefs.Get(ctx)
	for _, g := range res.Gaps {
		uc.metrics.GapDetected(g.Urgency.String())

		pending, perr := uc.draftFor(ctx, g, now)
		if perr != nil {
			return nil, perr
		}
		if err = uc.promotions.AddPending(ctx, pending); err != nil {
			return nil, err
		}
		if err = uc.alert(ctx, g); err != nil {
			return nil, err
		}

		if prefs.AutoApproves(pending.Promotion.DiscountValue) {
			decided, derr := uc.promotions.Decide(ctx, pending.Promotion.ID, true)
			if derr != nil {
				return nil, derr
			}
			if decided != nil {
				pending = *decided
				res.AutoApproved++
			}
		}
		res.Pending = append(res.Pending, pending)
	}

	uc.logger.InfoContext(ctx, "inventory scan finished",
		"listings", res.Listings,
		"gaps", len(res.Gaps),
		"auto_approved", res.AutoApproved,
		"expired_cleared", res.ExpiredCleared,
	)
	return res, nil
}

func (uc *inventoryCommandsImpl) catalog(ctx context.Context) ([]listing.Listing, error) {
	ls := uc.listings.List(ctx)
	if len(ls) > 0 || !uc.opts.SeedDemoCatalog {
		return ls, nil
	}
	ls = listing.DemoCatalog()
	if err := uc.listings.ReplaceAll(ctx, ls); err != nil {
		return nil, errs.Wrap(err, "seed demo catalog")
	}
	uc.logger.InfoContext(ctx, "seeded demo listing catalog", "listings", len(ls))
	return ls, nil
}

// UnsoldUnits turns vacant days into week-sized units for the generator.
func UnsoldUnits(vacancyDays int) int {
	return int(math.Ceil(float64(vacancyDays) / 7))
}

func (uc *inventoryCommandsImpl) draftFor(ctx context.Context, g gap.InventoryGap, now time.Time) (promotion.PendingAIPromotion, error) {
	drafts, err := uc.promotions.Generate(ctx, GeneratePromotionsRequest{
		ServiceType: g.ListingType,
		UnsoldCount: UnsoldUnits(g.VacancyDays),
		Seasonality: promotion.SeasonalityCurrent,
		Count:       1,
	})
	if err != nil {
		return promotion.PendingAIPromotion{}, err
	}
	return promotion.NewPendingAIPromotion(uc.newID(), drafts[0], g, now), nil
}

func (uc *inventoryCommandsImpl) alert(ctx context.Context, g gap.InventoryGap) error {
	if g.Urgency == gap.UrgencyCritical {
		_, err := uc.notifications.Create(ctx, notification.Draft{
			Type:      notification.TypeOccupancyAlert,
			Title:     "Critical occupancy gap",
			Message:   fmt.Sprintf("%s: %s", g.ListingTitle, g.Reason),
			ListingID: g.ListingID,
			ActionURL: notification.PendingPromotionsURL,
		})
		if err != nil {
			return err
		}
	}
	if g.RecentCancellations > 0 {
		_, err := uc.notifications.Create(ctx, notification.Draft{
			Type:      notification.TypeCancellationDetected,
			Title:     "Recent cancellations",
			Message:   fmt.Sprintf("%s had %d cancellations in the last 30 days.", g.ListingTitle, g.RecentCancellations),
			ListingID: g.ListingID,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
