package promotion

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/clock"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/random"

	"github.com/google/uuid"
)

const (
	BaselineDiscount    = 15
	HighUnsoldCount     = 10
	HighUnsoldBonus     = 5
	ModerateUnsoldCount = 5
	ModerateUnsoldBonus = 3

	LeadTime       = 5 * 24 * time.Hour
	CampaignLength = 30 * 24 * time.Hour

	SeasonalityCurrent = "current"
)

type Request struct {
	ServiceType listing.ServiceType
	UnsoldCount int
	// Seasonality overrides the reported peak season unless empty or "current".
	Seasonality string
}

// Generator drafts promotions from the trend catalog. The artificial delay
// stands in for a model call and is skipped when zero.
type Generator struct {
	catalog *Catalog
	rng     random.Source
	clock   clock.Clock
	delay   time.Duration
	newID   func() string
}

func NewGenerator(catalog *Catalog, rng random.Source, clk clock.Clock, delay time.Duration) *Generator {
	return &Generator{
		catalog: catalog,
		rng:     rng,
		clock:   clk,
		delay:   delay,
		newID:   uuid.NewString,
	}
}

// WithIDs swaps the id source, mostly for tests.
func (g *Generator) WithIDs(newID func() string) *Generator {
	g.newID = newID
	return g
}

// Generate draws, in order: trend index (only when the type has trends),
// name index, description index.
func (g *Generator) Generate(ctx context.Context, req Request) (*Promotion, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}

	var trend *Trend
	if trends := g.catalog.TrendsFor(req.ServiceType); len(trends) > 0 {
		t := trends[g.rng.IntN(len(trends))]
		trend = &t
	}

	discount := BaselineDiscount
	if trend != nil {
		discount = trend.RecommendedDiscount
	}
	discount += unsoldBonus(req.UnsoldCount)

	bank := g.catalog.PhrasesFor(req.ServiceType)
	name := bank.Names[g.rng.IntN(len(bank.Names))]
	desc := bank.Descriptions[g.rng.IntN(len(bank.Descriptions))]
	desc = strings.ReplaceAll(desc, discountPlaceholder, strconv.Itoa(discount))

	peak := bank.PeakSeason
	if trend != nil && trend.PeakSeason != "" {
		peak = trend.PeakSeason
	}
	if req.Seasonality != "" && req.Seasonality != SeasonalityCurrent {
		peak = req.Seasonality
	}

	analysis := &AIAnalysis{
		PeakSeason: peak,
		Reasoning:  reasoning(req.UnsoldCount, discount, trend),
	}
	if trend != nil {
		analysis.TrendName = trend.Name
		analysis.TrendPopularity = trend.Popularity
	}

	now := g.clock.Now()
	start := now.Add(LeadTime)
	return &Promotion{
		ID:                 g.newID(),
		Name:               name,
		Description:        desc,
		ServiceType:        req.ServiceType,
		DiscountType:       DiscountPercentage,
		DiscountValue:      discount,
		StartDate:          start,
		EndDate:            start.Add(CampaignLength),
		Status:             StatusDraft,
		ApplicableListings: []string{},
		UsageCount:         0,
		AIGenerated:        true,
		AIAnalysis:         analysis,
	}, nil
}

// GenerateMultiple runs Generate count times, one after another.
func (g *Generator) GenerateMultiple(ctx context.Context, req Request, count int) ([]Promotion, error) {
	out := make([]Promotion, 0, max(count, 0))
	for range count {
		p, err := g.Generate(ctx, req)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (g *Generator) wait(ctx context.Context) error {
	if g.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func unsoldBonus(unsold int) int {
	switch {
	case unsold > HighUnsoldCount:
		return HighUnsoldBonus
	case unsold > ModerateUnsoldCount:
		return ModerateUnsoldBonus
	default:
		return 0
	}
}

func reasoning(unsold, discount int, trend *Trend) string {
	var parts []string

	switch {
	case unsold > HighUnsoldCount:
		parts = append(parts, fmt.Sprintf("HIGH urgency: %d units remain unsold in the coming weeks.", unsold))
	case unsold > ModerateUnsoldCount:
		parts = append(parts, fmt.Sprintf("MODERATE urgency: %d units remain unsold.", unsold))
	default:
		parts = append(parts, fmt.Sprintf("Competitive market positioning with %d unsold units.", unsold))
	}

	if trend != nil {
		parts = append(parts, fmt.Sprintf("%q is trending at %d%% popularity, peaking in %s.", trend.Name, trend.Popularity, trend.PeakSeason))
	} else {
		parts = append(parts, "No trend data for this category, so the baseline discount applies.")
	}

	switch {
	case unsold > HighUnsoldCount:
		parts = append(parts, fmt.Sprintf("Launch a %d%% offer immediately to recover occupancy.", discount))
	case unsold > ModerateUnsoldCount:
		parts = append(parts, fmt.Sprintf("A %d%% offer ahead of the next booking wave should close the gap.", discount))
	default:
		parts = append(parts, fmt.Sprintf("A %d%% offer keeps pricing attractive without eroding margin.", discount))
	}

	return strings.Join(parts, " ")
}
