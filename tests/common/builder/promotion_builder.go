//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/gap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	reqdto "github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/dto/request"
)

type PromotionBuilder struct {
	ID            string
	PendingID     string
	Name          string
	ServiceType   listing.ServiceType
	DiscountValue int
	GeneratedAt   time.Time
	UnsoldCount   int
	Count         int
	Gap           gap.InventoryGap
}

func NewPromotionBuilder() *PromotionBuilder {
	return &PromotionBuilder{
		ID:            "promo-001",
		PendingID:     "pending-001",
		Name:          "Extended Stay Escape",
		ServiceType:   listing.TypeStays,
		DiscountValue: 20,
		GeneratedAt:   time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		UnsoldCount:   6,
		Count:         1,
		Gap:           NewInventoryBuilder().WithOccupancy(30).BuildGap(),
	}
}

func (p *PromotionBuilder) With(mutate func(*PromotionBuilder)) *PromotionBuilder {
	mutate(p)
	return p
}

func (p *PromotionBuilder) BuildDomain() promotion.Promotion {
	start := p.GeneratedAt.Add(promotion.LeadTime)
	return promotion.Promotion{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        "Book your stay now and enjoy 20% off every night.",
		ServiceType:        p.ServiceType,
		DiscountType:       promotion.DiscountPercentage,
		DiscountValue:      p.DiscountValue,
		StartDate:          start,
		EndDate:            start.Add(promotion.CampaignLength),
		Status:             promotion.StatusDraft,
		ApplicableListings: []string{},
		AIGenerated:        true,
		AIAnalysis: &promotion.AIAnalysis{
			TrendName:       "Workation Retreats",
			TrendPopularity: 87,
			PeakSeason:      "Spring and early autumn",
			Reasoning:       "MODERATE urgency: 6 units remain unsold.",
		},
	}
}

func (p *PromotionBuilder) BuildPending() promotion.PendingAIPromotion {
	return promotion.NewPendingAIPromotion(p.PendingID, p.BuildDomain(), p.Gap, p.GeneratedAt)
}

func (p *PromotionBuilder) BuildGenerateRequestDTO() reqdto.GeneratePromotionsRequest {
	unsold := p.UnsoldCount
	count := p.Count
	return reqdto.GeneratePromotionsRequest{
		ServiceType: p.ServiceType.String(),
		UnsoldCount: &unsold,
		Seasonality: "current",
		Count:       &count,
	}
}
