package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/clock"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const MaxPromotionsPerRequest = 10

var (
	ErrInvalidPromotionCount = errs.New("promotion count must be between 1 and 10")
	ErrNegativeUnsoldCount   = errs.New("unsold count cannot be negative")
)

var tracer = otel.Tracer("github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands")

type GeneratePromotionsRequest struct {
	ServiceType listing.ServiceType
	UnsoldCount int
	Seasonality string
	Count       int
}

type PromotionCommands interface {
	Generate(ctx context.Context, req GeneratePromotionsRequest) ([]promotion.Promotion, error)
	AddPending(ctx context.Context, p promotion.PendingAIPromotion) error
	// Decide returns (nil, nil) when no pending promotion wraps promotionID.
	Decide(ctx context.Context, promotionID string, approved bool) (*promotion.PendingAIPromotion, error)
	ClearExpired(ctx context.Context) (int, error)
}

type promotionCommandsImpl struct {
	pending       shared.PendingPromotionRepository
	notifications NotificationCommands
	generator     *promotion.Generator
	clock         clock.Clock
	metrics       shared.Metrics
	logger        *slog.Logger
}

func NewPromotionCommands(
	pending shared.PendingPromotionRepository,
	notifications NotificationCommands,
	generator *promotion.Generator,
	clk clock.Clock,
	metrics shared.Metrics,
	logger *slog.Logger,
) PromotionCommands {
	return &promotionCommandsImpl{
		pending:       pending,
		notifications: notifications,
		generator:     generator,
		clock:         clk,
		metrics:       metrics,
		logger:        logger,
	}
}

func (uc *promotionCommandsImpl) Generate(ctx context.Context, req GeneratePromotionsRequest) ([]promotion.Promotion, error) {
	if req.Count < 1 || req.Count > MaxPromotionsPerRequest {
		return nil, errs.Mark(ErrInvalidPromotionCount, errs.ErrDomainValidation)
	}
	if req.UnsoldCount < 0 {
		return nil, errs.Mark(ErrNegativeUnsoldCount, errs.ErrDomainValidation)
	}

	ctx, span := tracer.Start(ctx, "promotion.generate", trace.WithAttributes(
		attribute.String("service_type", req.ServiceType.String()),
		attribute.Int("unsold_count", req.UnsoldCount),
		attribute.Int("count", req.Count),
	))
	defer span.End()

	out, err := uc.generator.GenerateMultiple(ctx, promotion.Request{
		ServiceType: req.ServiceType,
		UnsoldCount: req.UnsoldCount,
		Seasonality: req.Seasonality,
	}, req.Count)
	if err != nil {
		span.RecordError(err)
		return nil, errs.Wrap(err, "generate promotions")
	}
	for range out {
		uc.metrics.PromotionGenerated(req.ServiceType.String())
	}
	return out, nil
}

func (uc *promotionCommandsImpl) AddPending(ctx context.Context, p promotion.PendingAIPromotion) error {
	if err := uc.pending.Append(ctx, p); err != nil {
		return errs.Wrap(err, "store pending promotion")
	}
	_, err := uc.notifications.Create(ctx, notification.Draft{
		Type:  notification.TypeNewAIPromotion,
		Title: "New AI promotion ready for review",
		Message: fmt.Sprintf("%q offers %d%% off %s. Review it before %s.",
			p.Promotion.Name, p.Promotion.DiscountValue, p.ListingTitle, p.ExpiresAt.Format("Jan 2")),
		RelatedPromotionID: p.Promotion.ID,
		ListingID:          p.ListingID,
		ActionURL:          notification.PendingPromotionsURL,
	})
	if err != nil {
		return errs.Wrap(err, "notify pending promotion")
	}
	return nil
}

func (uc *promotionCommandsImpl) Decide(ctx context.Context, promotionID string, approved bool) (*promotion.PendingAIPromotion, error) {
	var decided *promotion.PendingAIPromotion
	err := uc.pending.Update(ctx, func(cur []promotion.PendingAIPromotion) ([]promotion.PendingAIPromotion, error) {
		for i := range cur {
			if cur[i].Promotion.ID != promotionID {
				continue
			}
			if err := cur[i].Decide(approved); err != nil {
				return nil, err
			}
			d := cur[i]
			decided = &d
			return cur, nil
		}
		return nil, errs.ErrPromotionNotFound
	})
	if errs.Is(err, errs.ErrPromotionNotFound) {
		uc.logger.DebugContext(ctx, "decision for unknown promotion ignored", "promotion_id", promotionID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	uc.metrics.PromotionDecided(string(decided.Status))
	return decided, nil
}

// ClearExpired drops every pending promotion past its expiry, whatever its status.
func (uc *promotionCommandsImpl) ClearExpired(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	removed := 0
	err := uc.pending.Update(ctx, func(cur []promotion.PendingAIPromotion) ([]promotion.PendingAIPromotion, error) {
		kept := make([]promotion.PendingAIPromotion, 0, len(cur))
		for _, p := range cur {
			if p.IsExpired(now) {
				removed++
				continue
			}
			kept = append(kept, p)
		}
		return kept, nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "clear expired promotions")
	}
	return removed, nil
}
