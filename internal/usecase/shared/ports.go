package shared

import (
	"context"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
)

// Reads never fail: a missing or unreadable document reads as its default.

type ListingRepository interface {
	List(ctx context.Context) []listing.Listing
	ReplaceAll(ctx context.Context, ls []listing.Listing) error
}

type InventoryRepository interface {
	List(ctx context.Context) []inventory.ListingInventory
	ReplaceAll(ctx context.Context, invs []inventory.ListingInventory) error
}

type PendingPromotionRepository interface {
	List(ctx context.Context) []promotion.PendingAIPromotion
	Append(ctx context.Context, ps ...promotion.PendingAIPromotion) error
	Update(ctx context.Context, fn func([]promotion.PendingAIPromotion) ([]promotion.PendingAIPromotion, error)) error
}

type NotificationRepository interface {
	List(ctx context.Context) []notification.Event
	Append(ctx context.Context, e notification.Event) error
	Update(ctx context.Context, fn func([]notification.Event) ([]notification.Event, error)) error
}

type PreferencesRepository interface {
	Get(ctx context.Context) notification.Preferences
	Save(ctx context.Context, p notification.Preferences) error
}

// Notifier delivers a notification outside the dashboard (email relay, broker).
type Notifier interface {
	Send(ctx context.Context, e notification.Event) error
}

type Metrics interface {
	ObserveScan(d time.Duration, listings int, err error)
	GapDetected(urgency string)
	PromotionGenerated(serviceType string)
	NotificationCreated(eventType string)
	PromotionDecided(decision string)
}
