package gap

import (
	"fmt"
	"slices"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
)

// CancellationSpike escalates any listing with more recent cancellations than this.
const CancellationSpike = 2

// Thresholds are inclusive upper bounds on the occupancy percentage.
type Thresholds struct {
	Critical int
	High     int
	Medium   int
}

var DefaultThresholds = Thresholds{Critical: 40, High: 50, Medium: 60}

var thresholds = map[listing.ServiceType]Thresholds{
	listing.TypeStays:       {Critical: 40, High: 50, Medium: 60},
	listing.TypeFlights:     {Critical: 50, High: 60, Medium: 70},
	listing.TypeExperiences: {Critical: 35, High: 45, Medium: 55},
	listing.TypeEvents:      {Critical: 60, High: 70, Medium: 80},
	listing.TypeEssentials:  {Critical: 30, High: 40, Medium: 60},
}

func ThresholdsFor(t listing.ServiceType) Thresholds {
	if th, ok := thresholds[t]; ok {
		return th
	}
	return DefaultThresholds
}

type InventoryGap struct {
	ListingID           string              `json:"listingId"`
	ListingTitle        string              `json:"listingTitle"`
	ListingType         listing.ServiceType `json:"listingType"`
	OccupancyRate       int                 `json:"occupancyRate"`
	VacancyDays         int                 `json:"vacancyDays"`
	RecentCancellations int                 `json:"recentCancellations"`
	Urgency             Urgency             `json:"urgency"`
	Reason              string              `json:"reason"`
	RecommendedDiscount DiscountRange       `json:"recommendedDiscount"`
}

// Classify applies the first matching rule, checked from critical down.
func Classify(t listing.ServiceType, occupancyRate, recentCancellations int) (Urgency, string) {
	th := ThresholdsFor(t)
	switch {
	case occupancyRate <= th.Critical || recentCancellations > CancellationSpike:
		reason := fmt.Sprintf("Critical: occupancy at %d%%", occupancyRate)
		if recentCancellations > 0 {
			reason += fmt.Sprintf(" with %d recent cancellations", recentCancellations)
		}
		return UrgencyCritical, reason
	case occupancyRate <= th.High:
		return UrgencyHigh, fmt.Sprintf("High: occupancy at %d%% is well below target", occupancyRate)
	case occupancyRate <= th.Medium:
		return UrgencyMedium, fmt.Sprintf("Medium: occupancy at %d%% has room to grow", occupancyRate)
	default:
		return UrgencyLow, fmt.Sprintf("Low: occupancy at %d%% is healthy", occupancyRate)
	}
}

type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns every non-low gap, most severe first and, within a tier, the
// emptiest listing first. Ties keep input order.
func (d *Detector) Detect(invs []inventory.ListingInventory) []InventoryGap {
	gaps := make([]InventoryGap, 0, len(invs))
	for _, inv := range invs {
		g := d.Evaluate(inv)
		if g.Urgency == UrgencyLow {
			continue
		}
		gaps = append(gaps, g)
	}
	slices.SortStableFunc(gaps, func(a, b InventoryGap) int {
		if s := a.Urgency.Severity() - b.Urgency.Severity(); s != 0 {
			return s
		}
		return a.OccupancyRate - b.OccupancyRate
	})
	return gaps
}

// Evaluate classifies a single listing, low urgency included.
func (d *Detector) Evaluate(inv inventory.ListingInventory) InventoryGap {
	urgency, reason := Classify(inv.Type, inv.OccupancyRate, inv.RecentCancellations)
	return InventoryGap{
		ListingID:           inv.ListingID,
		ListingTitle:        inv.Title,
		ListingType:         inv.Type,
		OccupancyRate:       inv.OccupancyRate,
		VacancyDays:         inv.VacancyDays(),
		RecentCancellations: inv.RecentCancellations,
		Urgency:             urgency,
		Reason:              reason,
		RecommendedDiscount: urgency.DiscountRange(),
	}
}
