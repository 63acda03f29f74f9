//go:build unit || e2e

package builder

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
)

type NotificationBuilder struct {
	ID        string
	Type      notification.Type
	Title     string
	Message   string
	ListingID string
	CreatedAt time.Time
	Read      bool
}

func NewNotificationBuilder() *NotificationBuilder {
	return &NotificationBuilder{
		ID:        "note-001",
		Type:      notification.TypeOccupancyAlert,
		Title:     "Critical occupancy gap",
		Message:   "Oceanview Loft in Lisbon: Critical: occupancy at 30%",
		ListingID: "stay-001",
		CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func (n *NotificationBuilder) With(mutate func(*NotificationBuilder)) *NotificationBuilder {
	mutate(n)
	return n
}

func (n *NotificationBuilder) BuildDraft() notification.Draft {
	return notification.Draft{
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		ListingID: n.ListingID,
	}
}

func (n *NotificationBuilder) BuildDomain() notification.Event {
	return notification.Event{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		ListingID: n.ListingID,
		CreatedAt: n.CreatedAt,
		Read:      n.Read,
	}
}
