package notification

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
)

var ErrInvalidType = errs.New("invalid notification type")

type Type string

const (
	TypeNewAIPromotion       Type = "new_ai_promotion"
	TypeOccupancyAlert       Type = "occupancy_alert"
	TypeCancellationDetected Type = "cancellation_detected"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeNewAIPromotion, TypeOccupancyAlert, TypeCancellationDetected:
		return true
	default:
		return false
	}
}

// PendingPromotionsURL is where the dashboard lists drafts awaiting approval.
const PendingPromotionsURL = "/vendor/promotions?tab=ai-pending"

type Event struct {
	ID                 string    `json:"id"`
	Type               Type      `json:"type"`
	Title              string    `json:"title"`
	Message            string    `json:"message"`
	RelatedPromotionID string    `json:"relatedPromotionId,omitempty"`
	ListingID          string    `json:"listingId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	Read               bool      `json:"read"`
	ActionURL          string    `json:"actionUrl,omitempty"`
}

// Draft is an event before the store assigns identity and time.
type Draft struct {
	Type               Type
	Title              string
	Message            string
	RelatedPromotionID string
	ListingID          string
	ActionURL          string
}

func NewEvent(id string, d Draft, createdAt time.Time) (Event, error) {
	if !d.Type.IsValid() {
		return Event{}, ErrInvalidType
	}
	return Event{
		ID:                 id,
		Type:               d.Type,
		Title:              d.Title,
		Message:            d.Message,
		RelatedPromotionID: d.RelatedPromotionID,
		ListingID:          d.ListingID,
		CreatedAt:          createdAt,
		Read:               false,
		ActionURL:          d.ActionURL,
	}, nil
}

func (e *Event) MarkRead() {
	e.Read = true
}

func UnreadCount(events []Event) int {
	n := 0
	for _, e := range events {
		if !e.Read {
			n++
		}
	}
	return n
}
