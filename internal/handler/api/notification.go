package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/dto/request"
	resdto "github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/dto/response"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/httperr"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/commands"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	cmds commands.NotificationCommands
	q    queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, q: q}
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread"
// @Param limit query int false "Max items"
// @Success 200 {array} resdto.NotificationResponse
// @Failure 400 {object} map[string]string
// @Router /api/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	var f queries.NotificationFilters
	if s := c.Query("unread"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid unread flag", nil)
			return
		}
		f.UnreadOnly = v
	}
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, "Invalid limit", nil)
			return
		}
		f.Limit = v
	}
	c.JSON(http.StatusOK, resdto.FromNotifications(h.q.List(c.Request.Context(), f)))
}

// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.UnreadCountResponse
// @Router /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.UnreadCountResponse{Count: h.q.UnreadCount(c.Request.Context())})
}

// @Summary Mark notification read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	err := h.cmds.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrNotificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update notification", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Notification preferences
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.PreferencesResponse
// @Router /api/notifications/preferences [get]
func (h *NotificationHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPreferences(h.q.Preferences(c.Request.Context())))
}

// @Summary Update notification preferences
// @Description Partial update; the daily scan is rescheduled on save
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePreferencesRequest true "Preference changes"
// @Success 200 {object} resdto.PreferencesResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/notifications/preferences [put]
func (h *NotificationHandler) UpdatePreferences(c *gin.Context) {
	var req reqdto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	p, err := h.cmds.UpdatePreferences(c.Request.Context(), req.ToUsecase())
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save preferences", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPreferences(*p))
}
