package response

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/gap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type VacancyPeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int    `json:"days"`
}

type ListingInventoryResponse struct {
	ListingID           string                  `json:"listingId"`
	Title               string                  `json:"title"`
	Type                string                  `json:"type"`
	Capacity            int                     `json:"capacity"`
	BookingCount        int                     `json:"bookingCount"`
	OccupancyRate       int                     `json:"occupancyRate"`
	VacancyPeriods      []VacancyPeriodResponse `json:"vacancyPeriods"`
	RecentCancellations int                     `json:"recentCancellations"`
	LastScanned         time.Time               `json:"lastScanned"`
}

type DiscountRangeResponse struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type GapResponse struct {
	ListingID           string                `json:"listingId"`
	ListingTitle        string                `json:"listingTitle"`
	ListingType         string                `json:"listingType"`
	OccupancyRate       int                   `json:"occupancyRate"`
	VacancyDays         int                   `json:"vacancyDays"`
	RecentCancellations int                   `json:"recentCancellations"`
	Urgency             string                `json:"urgency"`
	Reason              string                `json:"reason"`
	RecommendedDiscount DiscountRangeResponse `json:"recommendedDiscount"`
}

type ScanResponse struct {
	ScannedAt      time.Time                  `json:"scannedAt"`
	Listings       int                        `json:"listings"`
	ExpiredCleared int                        `json:"expiredCleared"`
	AutoApproved   int                        `json:"autoApproved"`
	Gaps           []GapResponse              `json:"gaps"`
	Pending        []PendingPromotionResponse `json:"pending"`
}

const dateLayout = "2006-01-02"

func FromInventories(invs []inventory.ListingInventory) []ListingInventoryResponse {
	out := make([]ListingInventoryResponse, len(invs))
	for i, inv := range invs {
		periods := make([]VacancyPeriodResponse, len(inv.VacancyPeriods))
		for j, p := range inv.VacancyPeriods {
			periods[j] = VacancyPeriodResponse{
				StartDate: p.StartDate.Format(dateLayout),
				EndDate:   p.EndDate.Format(dateLayout),
				Days:      p.Days(),
			}
		}
		out[i] = ListingInventoryResponse{
			ListingID:           inv.ListingID,
			Title:               inv.Title,
			Type:                inv.Type.String(),
			Capacity:            inv.Capacity,
			BookingCount:        len(inv.Bookings),
			OccupancyRate:       inv.OccupancyRate,
			VacancyPeriods:      periods,
			RecentCancellations: inv.RecentCancellations,
			LastScanned:         inv.LastScanned,
		}
	}
	return out
}

func FromGaps(gs []gap.InventoryGap) []GapResponse {
	out := make([]GapResponse, 0, len(gs))
	_ = copier.Copy(&out, &gs)
	return out
}

func FromScanResult(r *commands.ScanResult) ScanResponse {
	return ScanResponse{
		ScannedAt:      r.ScannedAt,
		Listings:       r.Listings,
		ExpiredCleared: r.ExpiredCleared,
		AutoApproved:   r.AutoApproved,
		Gaps:           FromGaps(r.Gaps),
		Pending:        FromPendingPromotions(r.Pending),
	}
}
