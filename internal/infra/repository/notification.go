package repository

import (
	"context"
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/docstore"
)

type NotificationRepository struct {
	doc *docstore.Document[[]notification.Event]
}

func NewNotificationRepository(store docstore.Store, logger *slog.Logger) *NotificationRepository {
	return &NotificationRepository{
		doc: docstore.NewDocument(store, docstore.KeyNotifications, logger, func() []notification.Event {
			return []notification.Event{}
		}),
	}
}

func (r *NotificationRepository) List(ctx context.Context) []notification.Event {
	return r.doc.Load(ctx)
}

func (r *NotificationRepository) Append(ctx context.Context, e notification.Event) error {
	_, err := r.doc.Update(ctx, func(cur []notification.Event) ([]notification.Event, error) {
		return append(cur, e), nil
	})
	return err
}

func (r *NotificationRepository) Update(ctx context.Context, fn func([]notification.Event) ([]notification.Event, error)) error {
	_, err := r.doc.Update(ctx, fn)
	return err
}
