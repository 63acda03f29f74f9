package inventory

import (
	"math"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/booking"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
)

const (
	DefaultWindowDays        = 90
	RecentCancellationWindow = 30 * booking.Day
)

// Today maps now to its calendar date, expressed as UTC midnight so that day
// arithmetic never crosses a DST boundary.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// VacancyPeriod is a maximal run of uncovered days. EndDate is exclusive.
type VacancyPeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Days rounds partial days up.
func (p VacancyPeriod) Days() int {
	return int(math.Ceil(p.EndDate.Sub(p.StartDate).Hours() / 24))
}

type Analysis struct {
	OccupancyRate       int
	VacancyPeriods      []VacancyPeriod
	RecentCancellations int
}

type Analyzer struct {
	windowDays int
}

func NewAnalyzer(windowDays int) *Analyzer {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Analyzer{windowDays: windowDays}
}

func (a *Analyzer) WindowDays() int {
	return a.windowDays
}

// Analyze looks at [today, today+window). Only confirmed bookings occupy days,
// each covered day counts once however many bookings overlap it, and days
// outside the window are ignored so the rate stays within [0, 100].
func (a *Analyzer) Analyze(bookings []booking.Booking, now time.Time) Analysis {
	today := Today(now)
	covered := make([]bool, a.windowDays)

	for _, b := range bookings {
		if !b.IsConfirmed() {
			continue
		}
		from := max(dayIndex(today, b.StartDate), 0)
		to := min(dayIndex(today, b.EndDate), a.windowDays)
		for d := from; d < to; d++ {
			covered[d] = true
		}
	}

	occupied := 0
	for _, c := range covered {
		if c {
			occupied++
		}
	}

	return Analysis{
		OccupancyRate:       int(math.Round(100 * float64(occupied) / float64(a.windowDays))),
		VacancyPeriods:      vacancyPeriods(today, covered),
		RecentCancellations: recentCancellations(bookings, now),
	}
}

// Inventory derives a listing snapshot; the derived fields always come from bookings.
func (a *Analyzer) Inventory(l listing.Listing, bookings []booking.Booking, now time.Time) ListingInventory {
	res := a.Analyze(bookings, now)
	return ListingInventory{
		ListingID:           l.ID,
		Title:               l.Title,
		Type:                l.Type,
		Capacity:            l.Capacity,
		Bookings:            bookings,
		OccupancyRate:       res.OccupancyRate,
		VacancyPeriods:      res.VacancyPeriods,
		RecentCancellations: res.RecentCancellations,
		LastScanned:         now,
	}
}

func dayIndex(today, t time.Time) int {
	return int(Today(t).Sub(today) / booking.Day)
}

func vacancyPeriods(today time.Time, covered []bool) []VacancyPeriod {
	periods := []VacancyPeriod{}
	start := -1
	for i, c := range covered {
		switch {
		case !c && start < 0:
			start = i
		case c && start >= 0:
			periods = append(periods, VacancyPeriod{
				StartDate: today.AddDate(0, 0, start),
				EndDate:   today.AddDate(0, 0, i),
			})
			start = -1
		}
	}
	if start >= 0 {
		periods = append(periods, VacancyPeriod{
			StartDate: today.AddDate(0, 0, start),
			EndDate:   today.AddDate(0, 0, len(covered)),
		})
	}
	return periods
}

func recentCancellations(bookings []booking.Booking, now time.Time) int {
	from := now.Add(-RecentCancellationWindow)
	n := 0
	for _, b := range bookings {
		if b.Status != booking.StatusCancelled || b.CancelledAt == nil {
			continue
		}
		at := *b.CancelledAt
		if !at.Before(from) && !at.After(now) {
			n++
		}
	}
	return n
}
