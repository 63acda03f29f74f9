package queries

import (
	"context"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/gap"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/inventory"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"
)

type InventoryQueries interface {
	Listings(ctx context.Context) []listing.Listing
	Inventory(ctx context.Context) []inventory.ListingInventory
	// Gaps re-runs detection on the last stored snapshot.
	Gaps(ctx context.Context) []gap.InventoryGap
}

type inventoryQueriesImpl struct {
	listings    shared.ListingRepository
	inventories shared.InventoryRepository
	detector    *gap.Detector
}

func NewInventoryQueries(listings shared.ListingRepository, inventories shared.InventoryRepository, detector *gap.Detector) InventoryQueries {
	return &inventoryQueriesImpl{listings: listings, inventories: inventories, detector: detector}
}

func (q *inventoryQueriesImpl) Listings(ctx context.Context) []listing.Listing {
	return q.listings.List(ctx)
}

func (q *inventoryQueriesImpl) Inventory(ctx context.Context) []inventory.ListingInventory {
	return q.inventories.List(ctx)
}

func (q *inventoryQueriesImpl) Gaps(ctx context.Context) []gap.InventoryGap {
	return q.detector.Detect(q.inventories.List(ctx))
}
