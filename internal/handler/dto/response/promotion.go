package response

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
)

type AIAnalysisResponse struct {
	TrendName       string `json:"trendName"`
	TrendPopularity int    `json:"trendPopularity"`
	PeakSeason      string `json:"peakSeason"`
	Reasoning       string `json:"reasoning"`
}

type PromotionResponse struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	ServiceType        string              `json:"serviceType"`
	DiscountType       string              `json:"discountType"`
	DiscountValue      int                 `json:"discountValue"`
	StartDate          time.Time           `json:"startDate"`
	EndDate            time.Time           `json:"endDate"`
	Status             string              `json:"status"`
	ApplicableListings []string            `json:"applicableListings"`
	UsageCount         int                 `json:"usageCount"`
	AIGenerated        bool                `json:"aiGenerated"`
	AIAnalysis         *AIAnalysisResponse `json:"aiAnalysis,omitempty"`
}

type PendingPromotionResponse struct {
	ID           string            `json:"id"`
	Promotion    PromotionResponse `json:"promotion"`
	ListingID    string            `json:"listingId"`
	ListingTitle string            `json:"listingTitle"`
	ListingType  string            `json:"listingType"`
	GeneratedAt  time.Time         `json:"generatedAt"`
	ExpiresAt    time.Time         `json:"expiresAt"`
	Status       string            `json:"status"`
	OccupancyGap int               `json:"occupancyGap"`
	Urgency      string            `json:"urgency"`
}

type ClearExpiredResponse struct {
	Removed int `json:"removed"`
}

func FromPromotion(p promotion.Promotion) PromotionResponse {
	res := PromotionResponse{
		ID:                 p.ID,
		Name:               p.Name,
		Description:        p.Description,
		ServiceType:        p.ServiceType.String(),
		DiscountType:       string(p.DiscountType),
		DiscountValue:      p.DiscountValue,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		Status:             string(p.Status),
		ApplicableListings: p.ApplicableListings,
		UsageCount:         p.UsageCount,
		AIGenerated:        p.AIGenerated,
	}
	if res.ApplicableListings == nil {
		res.ApplicableListings = []string{}
	}
	if p.AIAnalysis != nil {
		a := AIAnalysisResponse(*p.AIAnalysis)
		res.AIAnalysis = &a
	}
	return res
}

func FromPromotions(ps []promotion.Promotion) []PromotionResponse {
	out := make([]PromotionResponse, len(ps))
	for i, p := range ps {
		out[i] = FromPromotion(p)
	}
	return out
}

func FromPendingPromotion(p promotion.PendingAIPromotion) PendingPromotionResponse {
	return PendingPromotionResponse{
		ID:           p.ID,
		Promotion:    FromPromotion(p.Promotion),
		ListingID:    p.ListingID,
		ListingTitle: p.ListingTitle,
		ListingType:  p.ListingType.String(),
		GeneratedAt:  p.GeneratedAt,
		ExpiresAt:    p.ExpiresAt,
		Status:       string(p.Status),
		OccupancyGap: p.OccupancyGap,
		Urgency:      p.Urgency.String(),
	}
}

func FromPendingPromotions(ps []promotion.PendingAIPromotion) []PendingPromotionResponse {
	out := make([]PendingPromotionResponse, len(ps))
	for i, p := range ps {
		out[i] = FromPendingPromotion(p)
	}
	return out
}
