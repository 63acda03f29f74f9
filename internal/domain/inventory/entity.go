package inventory

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/booking"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
)

type ListingInventory struct {
	ListingID           string              `json:"listingId"`
	Title               string              `json:"title"`
	Type                listing.ServiceType `json:"type"`
	Capacity            int                 `json:"capacity"`
	Bookings            []booking.Booking   `json:"bookings"`
	OccupancyRate       int                 `json:"occupancyRate"`
	VacancyPeriods      []VacancyPeriod     `json:"vacancyPeriods"`
	RecentCancellations int                 `json:"recentCancellations"`
	LastScanned         time.Time           `json:"lastScanned"`
}

// VacancyDays sums every vacancy period, rounding each up to whole days.
func (inv ListingInventory) VacancyDays() int {
	total := 0
	for _, p := range inv.VacancyPeriods {
		total += p.Days()
	}
	return total
}
