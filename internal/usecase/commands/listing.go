package commands

import (
	"context"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/shared"
)

type ListingInput struct {
	ID       string
	Title    string
	Type     string
	Capacity int
}

type ListingCommands interface {
	ReplaceCatalog(ctx context.Context, in []ListingInput) ([]listing.Listing, error)
}

type listingCommandsImpl struct {
	listings shared.ListingRepository
}

func NewListingCommands(listings shared.ListingRepository) ListingCommands {
	return &listingCommandsImpl{listings: listings}
}

func (uc *listingCommandsImpl) ReplaceCatalog(ctx context.Context, in []ListingInput) ([]listing.Listing, error) {
	out := make([]listing.Listing, 0, len(in))
	for _, li := range in {
		t, err := listing.NewServiceType(li.Type)
		if err != nil {
			return nil, errs.Mark(errs.Wrap(err, li.ID), errs.ErrDomainValidation)
		}
		l, err := listing.NewListing(li.ID, li.Title, t, li.Capacity)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		out = append(out, *l)
	}
	if err := listing.ValidateCatalog(out); err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if err := uc.listings.ReplaceAll(ctx, out); err != nil {
		return nil, errs.Wrap(err, "replace listing catalog")
	}
	return out, nil
}
