package queries

import (
	"context"
	"slices"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"
)

type PromotionQueries interface {
	ListPending(ctx context.Context, f PendingFilters) []promotion.PendingAIPromotion
}

type promotionQueriesImpl struct {
	pending shared.PendingPromotionRepository
}

func NewPromotionQueries(pending shared.PendingPromotionRepository) PromotionQueries {
	return &promotionQueriesImpl{pending: pending}
}

// ListPending returns the newest drafts first.
func (q *promotionQueriesImpl) ListPending(ctx context.Context, f PendingFilters) []promotion.PendingAIPromotion {
	all := q.pending.List(ctx)
	out := make([]promotion.PendingAIPromotion, 0, len(all))
	for _, p := range all {
		if f.Status != nil && p.Status != *f.Status {
			continue
		}
		out = append(out, p)
	}
	slices.SortStableFunc(out, func(a, b promotion.PendingAIPromotion) int {
		return b.GeneratedAt.Compare(a.GeneratedAt)
	})
	return out
}
