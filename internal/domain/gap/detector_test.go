//go:build unit

package gap_test

import (
	"testing"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/booking"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/gap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/random"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		t       listing.ServiceType
		rate    int
		cancels int
		want    gap.Urgency
	}{
		{name: "stays at critical bound", t: listing.TypeStays, rate: 40, want: gap.UrgencyCritical},
		{name: "stays just above critical", t: listing.TypeStays, rate: 41, want: gap.UrgencyHigh},
		{name: "stays at high bound", t: listing.TypeStays, rate: 50, want: gap.UrgencyHigh},
		{name: "stays at medium bound", t: listing.TypeStays, rate: 60, want: gap.UrgencyMedium},
		{name: "stays healthy", t: listing.TypeStays, rate: 61, want: gap.UrgencyLow},
		{name: "flights at critical bound", t: listing.TypeFlights, rate: 50, want: gap.UrgencyCritical},
		{name: "flights medium", t: listing.TypeFlights, rate: 70, want: gap.UrgencyMedium},
		{name: "experiences high", t: listing.TypeExperiences, rate: 45, want: gap.UrgencyHigh},
		{name: "events critical", t: listing.TypeEvents, rate: 60, want: gap.UrgencyCritical},
		{name: "events healthy", t: listing.TypeEvents, rate: 81, want: gap.UrgencyLow},
		{name: "essentials high", t: listing.TypeEssentials, rate: 40, want: gap.UrgencyHigh},
		{name: "essentials medium", t: listing.TypeEssentials, rate: 41, want: gap.UrgencyMedium},
		{name: "unknown type uses defaults", t: listing.ServiceType("cruises"), rate: 55, want: gap.UrgencyMedium},
		{name: "cancellation spike escalates", t: listing.TypeStays, rate: 95, cancels: 3, want: gap.UrgencyCritical},
		{name: "two cancellations do not escalate", t: listing.TypeStays, rate: 95, cancels: 2, want: gap.UrgencyLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := gap.Classify(tt.t, tt.rate, tt.cancels)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestClassifyReason(t *testing.T) {
	_, reason := gap.Classify(listing.TypeStays, 20, 0)
	assert.Equal(t, "Critical: occupancy at 20%", reason)

	_, reason = gap.Classify(listing.TypeStays, 20, 3)
	assert.Equal(t, "Critical: occupancy at 20% with 3 recent cancellations", reason)

	_, reason = gap.Classify(listing.TypeStays, 45, 0)
	assert.Contains(t, reason, "High")
}

// lower occupancy is never less urgent
func TestClassifyMonotonic(t *testing.T) {
	for _, st := range listing.AllServiceTypes() {
		t.Run(st.String(), func(t *testing.T) {
			prev := -1
			for rate := 100; rate >= 0; rate-- {
				u, _ := gap.Classify(st, rate, 0)
				sev := 3 - u.Severity()
				assert.GreaterOrEqual(t, sev, prev, "rate %d", rate)
				prev = sev
			}
		})
	}
}

func TestDetect(t *testing.T) {
	d := gap.NewDetector()

	t.Run("stays at 20% is critical", func(t *testing.T) {
		inv := builder.NewInventoryBuilder().WithOccupancy(20).BuildDomain()

		gaps := d.Detect([]inventory.ListingInventory{inv})
		require.Len(t, gaps, 1)
		g := gaps[0]
		assert.Equal(t, gap.UrgencyCritical, g.Urgency)
		assert.Equal(t, gap.DiscountRange{Min: 20, Max: 35}, g.RecommendedDiscount)
		assert.Equal(t, 14, g.VacancyDays)
		assert.Equal(t, "Oceanview Loft in Lisbon", g.ListingTitle)
	})

	t.Run("synthesized stays at 20% is critical", func(t *testing.T) {
		now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		stay := listing.Listing{ID: "stay-001", Title: "Harbour Room", Type: listing.TypeStays, Capacity: 2}

		// six-night stays from day 0, 6 and 12, then three repeats of day 0: 18 of 90 days
		rng := &random.Scripted{Ints: []int{0, 4, 6, 4, 12, 4, 0, 4, 0, 4, 0, 4}}
		bookings := booking.NewSynthesizer(rng).Synthesize(stay.ID, stay.Type, stay.Capacity, inventory.Today(now), 90)
		require.Len(t, bookings, 6)

		inv := inventory.NewAnalyzer(90).Inventory(stay, bookings, now)
		require.Equal(t, 20, inv.OccupancyRate)

		gaps := d.Detect([]inventory.ListingInventory{inv})
		require.Len(t, gaps, 1)
		assert.Equal(t, gap.UrgencyCritical, gaps[0].Urgency)
		assert.Equal(t, gap.DiscountRange{Min: 20, Max: 35}, gaps[0].RecommendedDiscount)
		assert.Equal(t, 72, gaps[0].VacancyDays)
		assert.Zero(t, gaps[0].RecentCancellations)
	})

	t.Run("low urgency listings are left out", func(t *testing.T) {
		inv := builder.NewInventoryBuilder().WithOccupancy(90).BuildDomain()
		assert.Empty(t, d.Detect([]inventory.ListingInventory{inv}))
	})

	t.Run("most urgent and emptiest first", func(t *testing.T) {
		invs := []inventory.ListingInventory{
			builder.NewInventoryBuilder().WithListing("medium", listing.TypeStays).WithOccupancy(55).BuildDomain(),
			builder.NewInventoryBuilder().WithListing("critical-30", listing.TypeStays).WithOccupancy(30).BuildDomain(),
			builder.NewInventoryBuilder().WithListing("high", listing.TypeStays).WithOccupancy(45).BuildDomain(),
			builder.NewInventoryBuilder().WithListing("critical-10", listing.TypeStays).WithOccupancy(10).BuildDomain(),
			builder.NewInventoryBuilder().WithListing("healthy", listing.TypeStays).WithOccupancy(80).BuildDomain(),
			builder.NewInventoryBuilder().WithListing("critical-30b", listing.TypeStays).WithOccupancy(30).BuildDomain(),
		}

		gaps := d.Detect(invs)
		ids := make([]string, len(gaps))
		for i, g := range gaps {
			ids[i] = g.ListingID
		}
		assert.Equal(t, []string{"critical-10", "critical-30", "critical-30b", "high", "medium"}, ids)
	})
}

func TestDiscountRange(t *testing.T) {
	for _, u := range []gap.Urgency{gap.UrgencyCritical, gap.UrgencyHigh, gap.UrgencyMedium, gap.UrgencyLow} {
		r := u.DiscountRange()
		assert.Less(t, r.Min, r.Max, u.String())
	}
	assert.Greater(t, gap.UrgencyCritical.DiscountRange().Max, gap.UrgencyHigh.DiscountRange().Max)
}
