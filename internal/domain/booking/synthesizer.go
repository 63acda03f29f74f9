package booking

import (
	"fmt"
	"math"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/random"
)

const (
	DefaultTargetOccupancy = 0.65
	CancellationRate       = 0.08
	// bookings never start inside the last two weeks of the window
	tailGuardDays = 14
	averageSpan   = 10
)

var targetOccupancy = map[listing.ServiceType]float64{
	listing.TypeStays:       0.65,
	listing.TypeFlights:     0.72,
	listing.TypeExperiences: 0.55,
	listing.TypeEvents:      0.78,
	listing.TypeEssentials:  0.80,
}

func TargetOccupancy(t listing.ServiceType) float64 {
	if v, ok := targetOccupancy[t]; ok {
		return v
	}
	return DefaultTargetOccupancy
}

// BookingCount is the number of bookings synthesized for a listing over windowDays.
func BookingCount(t listing.ServiceType, windowDays int) int {
	if windowDays <= 0 {
		return 0
	}
	return int(math.Ceil(float64(windowDays) * TargetOccupancy(t) / averageSpan))
}

// Synthesizer fabricates a plausible booking history. Overlaps are allowed and
// capacity is not enforced.
type Synthesizer struct {
	rng random.Source
}

func NewSynthesizer(rng random.Source) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Synthesize draws, per booking and in order: start offset (IntN), duration
// (IntN, skipped for flights), cancellation roll (Float64) and, when cancelled,
// the backdate fraction (Float64). today must be a calendar date at midnight.
// capacity is carried for callers but never limits the draw.
func (s *Synthesizer) Synthesize(listingID string, t listing.ServiceType, capacity int, today time.Time, windowDays int) []Booking {
	n := BookingCount(t, windowDays)
	span := max(windowDays-tailGuardDays, 1)

	out := make([]Booking, 0, n)
	for i := range n {
		offset := s.rng.IntN(span)
		nights := 1
		if t != listing.TypeFlights {
			nights = 2 + s.rng.IntN(7)
		}
		start := today.AddDate(0, 0, offset)
		b := Booking{
			ID:         fmt.Sprintf("%s-bk-%03d", listingID, i+1),
			ListingID:  listingID,
			StartDate:  start,
			EndDate:    start.AddDate(0, 0, nights),
			Status:     StatusConfirmed,
			CustomerID: fmt.Sprintf("guest-%s-%03d", listingID, i+1),
		}
		if s.rng.Float64() < CancellationRate {
			backdate := time.Duration(s.rng.Float64() * float64(7*Day))
			_ = b.Cancel(start.Add(-backdate))
		}
		out = append(out, b)
	}
	return out
}
