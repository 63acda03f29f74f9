package commands

import (
	"context"
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/clock"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/ptr"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	Create(ctx context.Context, draft notification.Draft) (*notification.Event, error)
	MarkRead(ctx context.Context, id string) error
	UpdatePreferences(ctx context.Context, req UpdatePreferencesRequest) (*notification.Preferences, error)
}

// PreferencesObserver is told about every saved preference change.
type PreferencesObserver interface {
	PreferencesChanged(ctx context.Context, p notification.Preferences)
}

// UpdatePreferencesRequest is a partial update; nil fields keep their value.
type UpdatePreferencesRequest struct {
	EmailNotifications   *bool
	InAppNotifications   *bool
	PushNotifications    *bool
	DailyScanEnabled     *bool
	DailyScanTime        *string
	AutoApproveThreshold *int
	// ClearAutoApprove turns auto-approval off and wins over AutoApproveThreshold.
	ClearAutoApprove bool
}

type notificationCommandsImpl struct {
	events   shared.NotificationRepository
	prefs    shared.PreferencesRepository
	notifier shared.Notifier
	observer PreferencesObserver
	clock    clock.Clock
	metrics  shared.Metrics
	logger   *slog.Logger
	newID    func() string
}

func NewNotificationCommands(
	events shared.NotificationRepository,
	prefs shared.PreferencesRepository,
	notifier shared.Notifier,
	observer PreferencesObserver,
	clk clock.Clock,
	metrics shared.Metrics,
	logger *slog.Logger,
) NotificationCommands {
	return &notificationCommandsImpl{
		events:   events,
		prefs:    prefs,
		notifier: notifier,
		observer: observer,
		clock:    clk,
		metrics:  metrics,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

func (uc *notificationCommandsImpl) Create(ctx context.Context, draft notification.Draft) (*notification.Event, error) {
	ev, err := notification.NewEvent(uc.newID(), draft, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.events.Append(ctx, ev); err != nil {
		return nil, errs.Wrap(err, "store notification")
	}
	uc.metrics.NotificationCreated(string(ev.Type))

	if uc.prefs.Get(ctx).EmailNotifications {
		// delivery problems never fail the write that triggered them
		if err := uc.notifier.Send(ctx, ev); err != nil {
			uc.logger.WarnContext(ctx, "email notification failed", "notification_id", ev.ID, "error", err)
		}
	}
	return &ev, nil
}

func (uc *notificationCommandsImpl) MarkRead(ctx context.Context, id string) error {
	return uc.events.Update(ctx, func(cur []notification.Event) ([]notification.Event, error) {
		for i := range cur {
			if cur[i].ID == id {
				cur[i].MarkRead()
				return cur, nil
			}
		}
		return nil, errs.ErrNotificationNotFound
	})
}

func (uc *notificationCommandsImpl) UpdatePreferences(ctx context.Context, req UpdatePreferencesRequest) (*notification.Preferences, error) {
	cur := uc.prefs.Get(ctx)

	next := notification.Preferences{
		EmailNotifications:   ptr.Deref(req.EmailNotifications, cur.EmailNotifications),
		InAppNotifications:   ptr.Deref(req.InAppNotifications, cur.InAppNotifications),
		PushNotifications:    ptr.Deref(req.PushNotifications, cur.PushNotifications),
		DailyScanEnabled:     ptr.Deref(req.DailyScanEnabled, cur.DailyScanEnabled),
		DailyScanTime:        ptr.Deref(req.DailyScanTime, cur.DailyScanTime),
		AutoApproveThreshold: ptr.Clone(cur.AutoApproveThreshold),
	}
	if req.AutoApproveThreshold != nil {
		next.AutoApproveThreshold = ptr.Clone(req.AutoApproveThreshold)
	}
	if req.ClearAutoApprove {
		next.AutoApproveThreshold = nil
	}

	if err := next.Validate(); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := uc.prefs.Save(ctx, next); err != nil {
		return nil, errs.Wrap(err, "save preferences")
	}
	if uc.observer != nil {
		uc.observer.PreferencesChanged(ctx, next)
	}
	return &next, nil
}
