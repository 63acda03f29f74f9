// Package notifier hands notification events to an outbound channel. The
// dashboard reads events from the store; these adapters cover email relays.
package notifier

import (
	"encoding/json"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
)

const ChannelEmail = "email"

type Envelope struct {
	Channel string             `json:"channel"`
	SentAt  time.Time          `json:"sentAt"`
	Event   notification.Event `json:"event"`
}

func encode(e notification.Event, now time.Time) ([]byte, error) {
	return json.Marshal(Envelope{Channel: ChannelEmail, SentAt: now.UTC(), Event: e})
}
