package response

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"

	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID                 string    `json:"id"`
	Type               string    `json:"type"`
	Title              string    `json:"title"`
	Message            string    `json:"message"`
	RelatedPromotionID string    `json:"relatedPromotionId,omitempty"`
	ListingID          string    `json:"listingId,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	Read               bool      `json:"read"`
	ActionURL          string    `json:"actionUrl,omitempty"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type PreferencesResponse struct {
	EmailNotifications   bool   `json:"emailNotifications"`
	InAppNotifications   bool   `json:"inAppNotifications"`
	PushNotifications    bool   `json:"pushNotifications"`
	DailyScanEnabled     bool   `json:"dailyScanEnabled"`
	DailyScanTime        string `json:"dailyScanTime"`
	AutoApproveThreshold *int   `json:"autoApproveThreshold"`
}

func FromNotifications(es []notification.Event) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(es))
	_ = copier.Copy(&out, &es)
	return out
}

func FromPreferences(p notification.Preferences) PreferencesResponse {
	var res PreferencesResponse
	_ = copier.CopyWithOption(&res, &p, copier.Option{DeepCopy: true})
	return res
}
