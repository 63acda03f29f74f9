package promotion

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/gap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
)

var (
	ErrAlreadyDecided          = errs.New("promotion has already been decided")
	ErrInvalidDiscountPercent  = errs.New("percentage discount must be between 0 and 100")
	ErrInvalidDiscountAmount   = errs.New("discount amount cannot be negative")
	ErrInvalidPromotionWindow  = errs.New("promotion end date must be after start date")
	ErrUnsupportedDiscountType = errs.New("unsupported discount type")
)

// ApprovalWindow is how long a generated promotion waits for a vendor decision.
const ApprovalWindow = 7 * 24 * time.Hour

type AIAnalysis struct {
	TrendName       string `json:"trendName"`
	TrendPopularity int    `json:"trendPopularity"`
	PeakSeason      string `json:"peakSeason"`
	Reasoning       string `json:"reasoning"`
}

type Promotion struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	ServiceType        listing.ServiceType `json:"serviceType"`
	DiscountType       DiscountType        `json:"discountType"`
	DiscountValue      int                 `json:"discountValue"`
	StartDate          time.Time           `json:"startDate"`
	EndDate            time.Time           `json:"endDate"`
	Status             Status              `json:"status"`
	ApplicableListings []string            `json:"applicableListings"`
	UsageCount         int                 `json:"usageCount"`
	AIGenerated        bool                `json:"aiGenerated"`
	AIAnalysis         *AIAnalysis         `json:"aiAnalysis,omitempty"`
}

func (p Promotion) Validate() error {
	switch p.DiscountType {
	case DiscountPercentage:
		if p.DiscountValue < 0 || p.DiscountValue > 100 {
			return ErrInvalidDiscountPercent
		}
	case DiscountFixed:
		if p.DiscountValue < 0 {
			return ErrInvalidDiscountAmount
		}
	default:
		return ErrUnsupportedDiscountType
	}
	if !p.EndDate.After(p.StartDate) {
		return ErrInvalidPromotionWindow
	}
	return nil
}

// PendingAIPromotion is a generated draft waiting for the vendor.
type PendingAIPromotion struct {
	ID           string              `json:"id"`
	Promotion    Promotion           `json:"promotion"`
	ListingID    string              `json:"listingId"`
	ListingTitle string              `json:"listingTitle"`
	ListingType  listing.ServiceType `json:"listingType"`
	GeneratedAt  time.Time           `json:"generatedAt"`
	ExpiresAt    time.Time           `json:"expiresAt"`
	Status       ApprovalStatus      `json:"status"`
	OccupancyGap int                 `json:"occupancyGap"`
	Urgency      gap.Urgency         `json:"urgency"`
}

func NewPendingAIPromotion(id string, p Promotion, g gap.InventoryGap, generatedAt time.Time) PendingAIPromotion {
	if len(p.ApplicableListings) == 0 {
		p.ApplicableListings = []string{g.ListingID}
	}
	return PendingAIPromotion{
		ID:           id,
		Promotion:    p,
		ListingID:    g.ListingID,
		ListingTitle: g.ListingTitle,
		ListingType:  g.ListingType,
		GeneratedAt:  generatedAt,
		ExpiresAt:    generatedAt.Add(ApprovalWindow),
		Status:       ApprovalPending,
		OccupancyGap: 100 - g.OccupancyRate,
		Urgency:      g.Urgency,
	}
}

// Decide moves a pending promotion to approved or rejected. Decisions are final.
// An approved draft becomes scheduled for its start date.
func (p *PendingAIPromotion) Decide(approved bool) error {
	if p.Status != ApprovalPending {
		return ErrAlreadyDecided
	}
	if approved {
		p.Status = ApprovalApproved
		p.Promotion.Status = StatusScheduled
		return nil
	}
	p.Status = ApprovalRejected
	return nil
}

// IsExpired is strict: a promotion expiring exactly at now is kept.
func (p PendingAIPromotion) IsExpired(now time.Time) bool {
	return p.ExpiresAt.Before(now)
}
