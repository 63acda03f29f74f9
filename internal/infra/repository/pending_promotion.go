package repository

import (
	"context"
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/docstore"
)

type PendingPromotionRepository struct {
	doc *docstore.Document[[]promotion.PendingAIPromotion]
}

func NewPendingPromotionRepository(store docstore.Store, logger *slog.Logger) *PendingPromotionRepository {
	return &PendingPromotionRepository{
		doc: docstore.NewDocument(store, docstore.KeyPendingPromotions, logger, func() []promotion.PendingAIPromotion {
			return []promotion.PendingAIPromotion{}
		}),
	}
}

func (r *PendingPromotionRepository) List(ctx context.Context) []promotion.PendingAIPromotion {
	return r.doc.Load(ctx)
}

func (r *PendingPromotionRepository) Append(ctx context.Context, ps ...promotion.PendingAIPromotion) error {
	_, err := r.doc.Update(ctx, func(cur []promotion.PendingAIPromotion) ([]promotion.PendingAIPromotion, error) {
		return append(cur, ps...), nil
	})
	return err
}

func (r *PendingPromotionRepository) Update(ctx context.Context, fn func([]promotion.PendingAIPromotion) ([]promotion.PendingAIPromotion, error)) error {
	_, err := r.doc.Update(ctx, fn)
	return err
}
