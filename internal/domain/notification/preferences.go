package notification

import (
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
)

var (
	ErrInvalidScanTime      = errs.New("daily scan time must be HH:MM")
	ErrInvalidAutoThreshold = errs.New("auto-approve threshold must be between 0 and 100")
)

const DefaultDailyScanTime = "09:00"

type Preferences struct {
	EmailNotifications   bool   `json:"emailNotifications"`
	InAppNotifications   bool   `json:"inAppNotifications"`
	PushNotifications    bool   `json:"pushNotifications"`
	DailyScanEnabled     bool   `json:"dailyScanEnabled"`
	DailyScanTime        string `json:"dailyScanTime"`
	AutoApproveThreshold *int   `json:"autoApproveThreshold,omitempty"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		EmailNotifications: true,
		InAppNotifications: true,
		PushNotifications:  false,
		DailyScanEnabled:   true,
		DailyScanTime:      DefaultDailyScanTime,
	}
}

func (p Preferences) Validate() error {
	if _, _, err := ParseScanTime(p.DailyScanTime); err != nil {
		return err
	}
	if p.AutoApproveThreshold != nil && (*p.AutoApproveThreshold < 0 || *p.AutoApproveThreshold > 100) {
		return ErrInvalidAutoThreshold
	}
	return nil
}

// AutoApproves reports whether a discount is low enough to skip vendor review.
func (p Preferences) AutoApproves(discount int) bool {
	return p.AutoApproveThreshold != nil && discount <= *p.AutoApproveThreshold
}

// ParseScanTime accepts a 24-hour "HH:MM".
func ParseScanTime(s string) (hour, minute int, err error) {
	t, perr := time.Parse("15:04", s)
	if perr != nil {
		return 0, 0, errs.Wrapf(ErrInvalidScanTime, "%q", s)
	}
	return t.Hour(), t.Minute(), nil
}
