package response

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"

	"github.com/jinzhu/copier"
)

type ListingResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
}

func FromListings(ls []listing.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(ls))
	_ = copier.Copy(&out, &ls)
	return out
}
