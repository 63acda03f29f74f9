package api

import (
	"errors"
	"net/http"

	reqdto "github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/dto/request"
	resdto "github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/dto/response"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/httperr"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.InventoryQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.InventoryQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary List listings
// @Description List the vendor listing catalog used by inventory scans
// @Tags listings
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Router /api/listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromListings(h.q.Listings(c.Request.Context())))
}

// @Summary Replace listings
// @Description Replace the whole listing catalog
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ReplaceListingsRequest true "Listing catalog"
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/listings [put]
func (h *ListingHandler) Replace(c *gin.Context) {
	var req reqdto.ReplaceListingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	ls, err := h.cmds.ReplaceCatalog(c.Request.Context(), req.ToUsecase())
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save listings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListings(ls))
}
