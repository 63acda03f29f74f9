package api

import (
	"net/http"

	resdto "github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/dto/response"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/httperr"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary Run inventory scan
// @Description Synthesize bookings, analyze occupancy, detect gaps and queue AI promotions
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ScanResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/inventory/scans [post]
func (h *InventoryHandler) Scan(c *gin.Context) {
	res, err := h.cmds.RunScan(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Inventory scan failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScanResult(res))
}

// @Summary Inventory snapshot
// @Description Occupancy per listing from the most recent scan
// @Tags inventory
// @Produce json
// @Success 200 {array} resdto.ListingInventoryResponse
// @Router /api/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromInventories(h.q.Inventory(c.Request.Context())))
}

// @Summary Inventory gaps
// @Description Gaps detected on the most recent snapshot, most urgent first
// @Tags inventory
// @Produce json
// @Success 200 {array} resdto.GapResponse
// @Router /api/inventory/gaps [get]
func (h *InventoryHandler) Gaps(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromGaps(h.q.Gaps(c.Request.Context())))
}
