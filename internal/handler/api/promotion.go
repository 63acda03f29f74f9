package api

import (
	"errors"
	"net/http"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	reqdto "github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/dto/request"
	resdto "github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/dto/response"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/httperr"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	cmds commands.PromotionCommands
	q    queries.PromotionQueries
}

func NewPromotionHandler(cmds commands.PromotionCommands, q queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{cmds: cmds, q: q}
}

// @Summary Generate promotions
// @Description Draft promotions for a service type without queueing them
// @Tags promotions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GeneratePromotionsRequest true "Generation request"
// @Success 200 {array} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/promotions/generate [post]
func (h *PromotionHandler) Generate(c *gin.Context) {
	var req reqdto.GeneratePromotionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	ps, err := h.cmds.Generate(c.Request.Context(), req.ToUsecase())
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Promotion generation failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPromotions(ps))
}

// @Summary List pending AI promotions
// @Description Newest first; filter with status=pending|approved|rejected
// @Tags promotions
// @Produce json
// @Param status query string false "Approval status"
// @Success 200 {array} resdto.PendingPromotionResponse
// @Failure 400 {object} map[string]string
// @Router /api/promotions/pending [get]
func (h *PromotionHandler) ListPending(c *gin.Context) {
	var f queries.PendingFilters
	if s := c.Query("status"); s != "" {
		status := promotion.ApprovalStatus(s)
		if !status.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, "Invalid status", nil)
			return
		}
		f.Status = &status
	}
	c.JSON(http.StatusOK, resdto.FromPendingPromotions(h.q.ListPending(c.Request.Context(), f)))
}

// @Summary Approve pending promotion
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param promotionId path string true "Promotion ID"
// @Success 200 {object} resdto.PendingPromotionResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/promotions/pending/{promotionId}/approve [post]
func (h *PromotionHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// @Summary Reject pending promotion
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Param promotionId path string true "Promotion ID"
// @Success 200 {object} resdto.PendingPromotionResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/promotions/pending/{promotionId}/reject [post]
func (h *PromotionHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *PromotionHandler) decide(c *gin.Context, approved bool) {
	id := c.Param("promotionId")
	p, err := h.cmds.Decide(c.Request.Context(), id, approved)
	switch {
	case errors.Is(err, promotion.ErrAlreadyDecided):
		httperr.AbortWithError(c, http.StatusConflict, err, "Promotion already decided", nil)
		return
	case err != nil:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record decision", nil)
		return
	case p == nil:
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrPromotionNotFound, "Promotion not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPendingPromotion(*p))
}

// @Summary Clear expired promotions
// @Description Remove every pending promotion whose approval window has passed
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ClearExpiredResponse
// @Failure 401 {object} map[string]string
// @Router /api/promotions/pending/expired [delete]
func (h *PromotionHandler) ClearExpired(c *gin.Context) {
	n, err := h.cmds.ClearExpired(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to clear expired promotions", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.ClearExpiredResponse{Removed: n})
}
