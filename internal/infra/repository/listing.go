package repository

import (
	"context"
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/docstore"
)

type ListingRepository struct {
	doc *docstore.Document[[]listing.Listing]
}

func NewListingRepository(store docstore.Store, logger *slog.Logger) *ListingRepository {
	return &ListingRepository{
		doc: docstore.NewDocument(store, docstore.KeyListings, logger, func() []listing.Listing { return []listing.Listing{} }),
	}
}

func (r *ListingRepository) List(ctx context.Context) []listing.Listing {
	return r.doc.Load(ctx)
}

func (r *ListingRepository) ReplaceAll(ctx context.Context, ls []listing.Listing) error {
	if ls == nil {
		ls = []listing.Listing{}
	}
	return r.doc.Save(ctx, ls)
}
