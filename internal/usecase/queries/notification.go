package queries

import (
	"context"
	"slices"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"
)

type NotificationQueries interface {
	List(ctx context.Context, f NotificationFilters) []notification.Event
	UnreadCount(ctx context.Context) int
	Preferences(ctx context.Context) notification.Preferences
}

type notificationQueriesImpl struct {
	events shared.NotificationRepository
	prefs  shared.PreferencesRepository
}

func NewNotificationQueries(events shared.NotificationRepository, prefs shared.PreferencesRepository) NotificationQueries {
	return &notificationQueriesImpl{events: events, prefs: prefs}
}

// List returns the newest events first.
func (q *notificationQueriesImpl) List(ctx context.Context, f NotificationFilters) []notification.Event {
	all := q.events.List(ctx)
	out := make([]notification.Event, 0, len(all))
	for _, e := range all {
		if f.UnreadOnly && e.Read {
			continue
		}
		out = append(out, e)
	}
	slices.SortStableFunc(out, func(a, b notification.Event) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context) int {
	return notification.UnreadCount(q.events.List(ctx))
}

func (q *notificationQueriesImpl) Preferences(ctx context.Context) notification.Preferences {
	return q.prefs.Get(ctx)
}
