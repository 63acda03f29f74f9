package repository

import (
	"context"
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/docstore"
)

type InventoryRepository struct {
	doc *docstore.Document[[]inventory.ListingInventory]
}

func NewInventoryRepository(store docstore.Store, logger *slog.Logger) *InventoryRepository {
	return &InventoryRepository{
		doc: docstore.NewDocument(store, docstore.KeyInventory, logger, func() []inventory.ListingInventory {
			return []inventory.ListingInventory{}
		}),
	}
}

func (r *InventoryRepository) List(ctx context.Context) []inventory.ListingInventory {
	return r.doc.Load(ctx)
}

func (r *InventoryRepository) ReplaceAll(ctx context.Context, invs []inventory.ListingInventory) error {
	if invs == nil {
		invs = []inventory.ListingInventory{}
	}
	return r.doc.Save(ctx, invs)
}
