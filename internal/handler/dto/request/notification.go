package request

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
)

type UpdatePreferencesRequest struct {
	EmailNotifications   *bool   `json:"emailNotifications"`
	InAppNotifications   *bool   `json:"inAppNotifications"`
	PushNotifications    *bool   `json:"pushNotifications"`
	DailyScanEnabled     *bool   `json:"dailyScanEnabled"`
	DailyScanTime        *string `json:"dailyScanTime" binding:"omitempty,len=5"`
	AutoApproveThreshold *int    `json:"autoApproveThreshold" binding:"omitempty,min=0,max=100"`
	ClearAutoApprove     bool    `json:"clearAutoApprove"`
}

func (r *UpdatePreferencesRequest) ToUsecase() commands.UpdatePreferencesRequest {
	return commands.UpdatePreferencesRequest{
		EmailNotifications:   r.EmailNotifications,
		InAppNotifications:   r.InAppNotifications,
		PushNotifications:    r.PushNotifications,
		DailyScanEnabled:     r.DailyScanEnabled,
		DailyScanTime:        r.DailyScanTime,
		AutoApproveThreshold: r.AutoApproveThreshold,
		ClearAutoApprove:     r.ClearAutoApprove,
	}
}
