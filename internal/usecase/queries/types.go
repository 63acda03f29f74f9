package queries

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
)

type PendingFilters struct {
	// Status narrows the list to one approval state when set.
	Status *promotion.ApprovalStatus
}

type NotificationFilters struct {
	UnreadOnly bool
	Limit      int
}
