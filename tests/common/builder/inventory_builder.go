//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/booking"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/gap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
)

type InventoryBuilder struct {
	ListingID           string
	Title               string
	Type                listing.ServiceType
	Capacity            int
	Bookings            []booking.Booking
	OccupancyRate       int
	VacancyPeriods      []inventory.VacancyPeriod
	RecentCancellations int
	LastScanned         time.Time
}

func NewInventoryBuilder() *InventoryBuilder {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &InventoryBuilder{
		ListingID:     "stay-001",
		Title:         "Oceanview Loft in Lisbon",
		Type:          listing.TypeStays,
		Capacity:      4,
		Bookings:      []booking.Booking{},
		OccupancyRate: 45,
		VacancyPeriods: []inventory.VacancyPeriod{
			{StartDate: today, EndDate: today.AddDate(0, 0, 14)},
		},
		LastScanned: today.Add(9 * time.Hour),
	}
}

func (b *InventoryBuilder) With(mutate func(*InventoryBuilder)) *InventoryBuilder {
	mutate(b)
	return b
}

func (b *InventoryBuilder) WithListing(id string, t listing.ServiceType) *InventoryBuilder {
	b.ListingID = id
	b.Type = t
	return b
}

func (b *InventoryBuilder) WithOccupancy(rate int) *InventoryBuilder {
	b.OccupancyRate = rate
	return b
}

func (b *InventoryBuilder) WithCancellations(n int) *InventoryBuilder {
	b.RecentCancellations = n
	return b
}

func (b *InventoryBuilder) BuildDomain() inventory.ListingInventory {
	return inventory.ListingInventory{
		ListingID:           b.ListingID,
		Title:               b.Title,
		Type:                b.Type,
		Capacity:            b.Capacity,
		Bookings:            b.Bookings,
		OccupancyRate:       b.OccupancyRate,
		VacancyPeriods:      b.VacancyPeriods,
		RecentCancellations: b.RecentCancellations,
		LastScanned:         b.LastScanned,
	}
}

func (b *InventoryBuilder) BuildListing() listing.Listing {
	return listing.Listing{ID: b.ListingID, Title: b.Title, Type: b.Type, Capacity: b.Capacity}
}

func (b *InventoryBuilder) BuildGap() gap.InventoryGap {
	return gap.NewDetector().Evaluate(b.BuildDomain())
}
