package request

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
)

type ListingItem struct {
	ID       string `json:"id" binding:"required,max=64"`
	Title    string `json:"title" binding:"required,max=200"`
	Type     string `json:"type" binding:"required,oneof=stays flights experiences events essentials"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
}

type ReplaceListingsRequest struct {
	Listings []ListingItem `json:"listings" binding:"required,dive"`
}

func (r *ReplaceListingsRequest) ToUsecase() []commands.ListingInput {
	out := make([]commands.ListingInput, len(r.Listings))
	for i, l := range r.Listings {
		out[i] = commands.ListingInput{ID: l.ID, Title: l.Title, Type: l.Type, Capacity: l.Capacity}
	}
	return out
}
