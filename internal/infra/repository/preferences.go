package repository

import (
	"context"
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/notification"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/docstore"
)

type PreferencesRepository struct {
	doc *docstore.Document[notification.Preferences]
}

func NewPreferencesRepository(store docstore.Store, logger *slog.Logger) *PreferencesRepository {
	return &PreferencesRepository{
		doc: docstore.NewDocument(store, docstore.KeyPreferences, logger, notification.DefaultPreferences),
	}
}

func (r *PreferencesRepository) Get(ctx context.Context) notification.Preferences {
	return r.doc.Load(ctx)
}

func (r *PreferencesRepository) Save(ctx context.Context, p notification.Preferences) error {
	return r.doc.Save(ctx, p)
}
