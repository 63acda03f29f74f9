//go:build unit

package inventory_test

import (
	"math"
	"testing"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/booking"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/random"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now   = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)
	today = inventory.Today(now)
)

func confirmed(id string, fromDay, toDay int) booking.Booking {
	return booking.Booking{
		ID:        id,
		ListingID: "stay-001",
		StartDate: today.AddDate(0, 0, fromDay),
		EndDate:   today.AddDate(0, 0, toDay),
		Status:    booking.StatusConfirmed,
	}
}

func cancelled(id string, at time.Time) booking.Booking {
	b := confirmed(id, 5, 8)
	b.Status = booking.StatusCancelled
	b.CancelledAt = &at
	return b
}

func TestToday(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	late := time.Date(2025, 3, 10, 23, 45, 0, 0, tokyo)

	got := inventory.Today(late)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got)
}

func TestAnalyze(t *testing.T) {
	a := inventory.NewAnalyzer(90)

	tests := []struct {
		name     string
		bookings []booking.Booking
		wantRate int
	}{
		{name: "no bookings", bookings: nil, wantRate: 0},
		{name: "ten covered days", bookings: []booking.Booking{confirmed("b1", 0, 10)}, wantRate: 11},
		{
			name:     "overlapping bookings count each day once",
			bookings: []booking.Booking{confirmed("b1", 0, 10), confirmed("b2", 5, 15)},
			wantRate: 17,
		},
		{name: "cancelled bookings never occupy", bookings: []booking.Booking{cancelled("b1", now)}, wantRate: 0},
		{
			name:     "days before today are ignored",
			bookings: []booking.Booking{confirmed("b1", -5, 3)},
			wantRate: 3,
		},
		{
			name:     "days past the window are ignored",
			bookings: []booking.Booking{confirmed("b1", 80, 120)},
			wantRate: 11,
		},
		{name: "fully booked", bookings: []booking.Booking{confirmed("b1", -1, 100)}, wantRate: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(tt.bookings, now)
			assert.Equal(t, tt.wantRate, got.OccupancyRate)
			assert.GreaterOrEqual(t, got.OccupancyRate, 0)
			assert.LessOrEqual(t, got.OccupancyRate, 100)
		})
	}
}

func TestVacancyPeriods(t *testing.T) {
	a := inventory.NewAnalyzer(90)

	t.Run("gaps around a booking", func(t *testing.T) {
		got := a.Analyze([]booking.Booking{confirmed("b1", 10, 20)}, now).VacancyPeriods

		want := []inventory.VacancyPeriod{
			{StartDate: today, EndDate: today.AddDate(0, 0, 10)},
			{StartDate: today.AddDate(0, 0, 20), EndDate: today.AddDate(0, 0, 90)},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("vacancy periods mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 10, got[0].Days())
		assert.Equal(t, 70, got[1].Days())
	})

	t.Run("empty calendar is one period", func(t *testing.T) {
		got := a.Analyze(nil, now).VacancyPeriods
		require.Len(t, got, 1)
		assert.Equal(t, 90, got[0].Days())
	})

	t.Run("fully booked has no periods", func(t *testing.T) {
		got := a.Analyze([]booking.Booking{confirmed("b1", 0, 90)}, now).VacancyPeriods
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("partial days round up", func(t *testing.T) {
		p := inventory.VacancyPeriod{StartDate: today, EndDate: today.Add(36 * time.Hour)}
		assert.Equal(t, 2, p.Days())
	})
}

func TestRecentCancellations(t *testing.T) {
	a := inventory.NewAnalyzer(90)
	bookings := []booking.Booking{
		cancelled("inside", now.Add(-10*booking.Day)),
		cancelled("edge", now.Add(-30*booking.Day)),
		cancelled("too-old", now.Add(-31*booking.Day)),
		cancelled("future", now.Add(time.Hour)),
		confirmed("active", 0, 3),
	}

	assert.Equal(t, 2, a.Analyze(bookings, now).RecentCancellations)
}

func TestInventory(t *testing.T) {
	a := inventory.NewAnalyzer(0)
	require.Equal(t, inventory.DefaultWindowDays, a.WindowDays())

	l := listing.Listing{ID: "stay-001", Title: "Oceanview Loft in Lisbon", Type: listing.TypeStays, Capacity: 4}
	bookings := []booking.Booking{confirmed("b1", 0, 45)}

	got := a.Inventory(l, bookings, now)
	assert.Equal(t, "stay-001", got.ListingID)
	assert.Equal(t, listing.TypeStays, got.Type)
	assert.Equal(t, 50, got.OccupancyRate)
	assert.Equal(t, 45, got.VacancyDays())
	assert.Equal(t, now, got.LastScanned)
	assert.Len(t, got.Bookings, 1)
}

func TestAnalyzeSynthesizedHistory(t *testing.T) {
	const window = inventory.DefaultWindowDays
	a := inventory.NewAnalyzer(window)
	end := today.AddDate(0, 0, window)

	for seed := uint64(1); seed <= 20; seed++ {
		synth := booking.NewSynthesizer(random.New(seed))
		for _, st := range listing.AllServiceTypes() {
			bookings := synth.Synthesize("l-1", st, 4, today, window)

			days := map[time.Time]bool{}
			for _, b := range bookings {
				if b.Status != booking.StatusConfirmed {
					continue
				}
				for d := b.StartDate; d.Before(b.EndDate); d = d.AddDate(0, 0, 1) {
					if !d.Before(today) && d.Before(end) {
						days[d] = true
					}
				}
			}
			want := int(math.Round(100 * float64(len(days)) / window))

			got := a.Analyze(bookings, now).OccupancyRate
			assert.Equal(t, want, got, "seed %d, %s", seed, st)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}
