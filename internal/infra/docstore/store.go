// Package docstore persists whole JSON documents under string keys.
// Callers read-modify-write complete documents; there are no partial updates.
package docstore

import (
	"context"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
)

var ErrNotFound = errs.New("document not found")

// Store returns ErrNotFound for keys that were never written.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
}

// Well-known document keys.
const (
	KeyPendingPromotions = "pendingAIPromotions"
	KeyNotifications     = "notifications"
	KeyPreferences       = "notificationPreferences"
	KeyListings          = "listings"
	KeyInventory         = "listingInventory"
)
