package request

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/listing"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/ptr"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
)

type GeneratePromotionsRequest struct {
	ServiceType string `json:"serviceType" binding:"required,oneof=stays flights experiences events essentials"`
	// pointer so an explicit 0 passes "required"
	UnsoldCount *int   `json:"unsoldCount" binding:"required,min=0"`
	Seasonality string `json:"seasonality" binding:"omitempty,max=64"`
	Count       *int   `json:"count" binding:"omitempty,min=1,max=10"`
}

func (r *GeneratePromotionsRequest) ToUsecase() commands.GeneratePromotionsRequest {
	return commands.GeneratePromotionsRequest{
		ServiceType: listing.ServiceType(r.ServiceType),
		UnsoldCount: ptr.Deref(r.UnsoldCount, 0),
		Seasonality: r.Seasonality,
		Count:       ptr.Deref(r.Count, 1),
	}
}
