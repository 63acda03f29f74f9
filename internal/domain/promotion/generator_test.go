//go:build unit

package promotion_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/clock"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newGenerator(t *testing.T, rng random.Source) *promotion.Generator {
	t.Helper()
	catalog, err := promotion.DefaultCatalog()
	require.NoError(t, err)

	n := 0
	return promotion.NewGenerator(catalog, rng, clock.NewMockClock(generatedAt), 0).WithIDs(func() string {
		n++
		return fmt.Sprintf("promo-%d", n)
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("events with twelve unsold units", func(t *testing.T) {
		g := newGenerator(t, &random.Scripted{Ints: []int{0, 2, 1}})

		p, err := g.Generate(ctx, promotion.Request{ServiceType: listing.TypeEvents, UnsoldCount: 12, Seasonality: "current"})
		require.NoError(t, err)

		// Intimate Live Music recommends 10, plus the high unsold bonus
		assert.Equal(t, 15, p.DiscountValue)
		assert.Equal(t, "Night Out Special", p.Name)
		assert.Equal(t, "Enjoy the show for 15% less on remaining seats.", p.Description)
		assert.Equal(t, promotion.DiscountPercentage, p.DiscountType)
		assert.Equal(t, promotion.StatusDraft, p.Status)
		assert.True(t, p.AIGenerated)
		assert.Equal(t, 0, p.UsageCount)
		assert.Empty(t, p.ApplicableListings)
		assert.Equal(t, "promo-1", p.ID)

		require.NotNil(t, p.AIAnalysis)
		assert.Equal(t, "Intimate Live Music", p.AIAnalysis.TrendName)
		assert.Equal(t, 85, p.AIAnalysis.TrendPopularity)
		assert.Equal(t, "Festival season", p.AIAnalysis.PeakSeason)
		assert.True(t, strings.HasPrefix(p.AIAnalysis.Reasoning, "HIGH urgency"))
	})

	t.Run("campaign starts after the lead time and runs thirty days", func(t *testing.T) {
		g := newGenerator(t, &random.Scripted{})

		p, err := g.Generate(ctx, promotion.Request{ServiceType: listing.TypeStays, UnsoldCount: 0})
		require.NoError(t, err)

		assert.Equal(t, generatedAt.Add(5*24*time.Hour), p.StartDate)
		assert.Equal(t, generatedAt.Add(35*24*time.Hour), p.EndDate)
		require.NoError(t, p.Validate())
	})

	t.Run("unsold bonus tiers", func(t *testing.T) {
		tests := []struct {
			unsold int
			want   int
		}{
			{unsold: 0, want: 20},
			{unsold: 5, want: 20},
			{unsold: 6, want: 23},
			{unsold: 10, want: 23},
			{unsold: 11, want: 25},
		}
		for _, tt := range tests {
			g := newGenerator(t, &random.Scripted{Ints: []int{0}})
			p, err := g.Generate(ctx, promotion.Request{ServiceType: listing.TypeStays, UnsoldCount: tt.unsold})
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.DiscountValue, "unsold %d", tt.unsold)
		}
	})

	t.Run("unknown type falls back to stays copy and the baseline", func(t *testing.T) {
		g := newGenerator(t, &random.Scripted{Ints: []int{0, 0}})

		p, err := g.Generate(ctx, promotion.Request{ServiceType: listing.ServiceType("cruises"), UnsoldCount: 3})
		require.NoError(t, err)

		assert.Equal(t, promotion.BaselineDiscount, p.DiscountValue)
		assert.Equal(t, "Extended Stay Escape", p.Name)
		assert.Equal(t, "Book your stay now and enjoy 15% off every night.", p.Description)
		assert.Empty(t, p.AIAnalysis.TrendName)
		assert.Contains(t, p.AIAnalysis.Reasoning, "baseline discount")
	})

	t.Run("seasonality overrides the peak season", func(t *testing.T) {
		g := newGenerator(t, &random.Scripted{})

		p, err := g.Generate(ctx, promotion.Request{ServiceType: listing.TypeFlights, Seasonality: "winter"})
		require.NoError(t, err)
		assert.Equal(t, "winter", p.AIAnalysis.PeakSeason)
	})

	t.Run("reasoning has three clauses", func(t *testing.T) {
		g := newGenerator(t, &random.Scripted{})

		p, err := g.Generate(ctx, promotion.Request{ServiceType: listing.TypeExperiences, UnsoldCount: 7})
		require.NoError(t, err)

		r := p.AIAnalysis.Reasoning
		assert.True(t, strings.HasPrefix(r, "MODERATE urgency: 7 units remain unsold."))
		assert.Contains(t, r, `"Local Food Trails" is trending at 92% popularity`)
		assert.Contains(t, r, "18%")
	})

	t.Run("cancelled context stops generation", func(t *testing.T) {
		catalog, err := promotion.DefaultCatalog()
		require.NoError(t, err)
		g := promotion.NewGenerator(catalog, &random.Scripted{}, clock.NewMockClock(generatedAt), time.Hour)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = g.Generate(cctx, promotion.Request{ServiceType: listing.TypeStays})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGenerateMultiple(t *testing.T) {
	g := newGenerator(t, random.New(7))

	ps, err := g.GenerateMultiple(context.Background(), promotion.Request{ServiceType: listing.TypeFlights, UnsoldCount: 2}, 3)
	require.NoError(t, err)
	require.Len(t, ps, 3)

	ids := map[string]bool{}
	for _, p := range ps {
		ids[p.ID] = true
		assert.Equal(t, listing.TypeFlights, p.ServiceType)
		assert.Contains(t, []int{12, 18}, p.DiscountValue)
	}
	assert.Len(t, ids, 3)
}

func TestParseCatalog(t *testing.T) {
	t.Run("stays phrases are required", func(t *testing.T) {
		_, err := promotion.ParseCatalog([]byte("trends: []\nphrases: {}\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := promotion.ParseCatalog([]byte("trends: ["))
		assert.Error(t, err)
	})

	t.Run("default catalog covers every type", func(t *testing.T) {
		c, err := promotion.DefaultCatalog()
		require.NoError(t, err)
		for _, st := range listing.AllServiceTypes() {
			assert.NotEmpty(t, c.TrendsFor(st), st.String())
			bank := c.PhrasesFor(st)
			assert.Len(t, bank.Names, 5, st.String())
			assert.Len(t, bank.Descriptions, 4, st.String())
		}
	})
}
