package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/auth"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/api"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/middleware"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Listing      *api.ListingHandler
	Inventory    *api.InventoryHandler
	Promotion    *api.PromotionHandler
	Notification *api.NotificationHandler
}

func NewHandlers(
	listing *api.ListingHandler,
	inventory *api.InventoryHandler,
	promotion *api.PromotionHandler,
	notification *api.NotificationHandler,
) Handlers {
	return Handlers{
		Listing:      listing,
		Inventory:    inventory,
		Promotion:    promotion,
		Notification: notification,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, registry)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, registry *prometheus.Registry) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// writes need a vendor token; reads are open to the dashboard
	vendorOnly := []gin.HandlerFunc{
		authMiddleware.RequireAuth(),
		authMiddleware.RequireRoleAtLeast(auth.RoleVendor),
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/listings"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Listing.List},
			{Method: http.MethodPut, Path: "", Handler: h.Listing.Replace, Mw: vendorOnly},
		})

		addRoutes(apiGroup.Group("/inventory"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Inventory.List},
			{Method: http.MethodGet, Path: "/gaps", Handler: h.Inventory.Gaps},
			{Method: http.MethodPost, Path: "/scans", Handler: h.Inventory.Scan, Mw: vendorOnly},
		})

		addRoutes(apiGroup.Group("/promotions"), []route{
			{Method: http.MethodPost, Path: "/generate", Handler: h.Promotion.Generate, Mw: vendorOnly},
			{Method: http.MethodGet, Path: "/pending", Handler: h.Promotion.ListPending},
			{Method: http.MethodPost, Path: "/pending/:promotionId/approve", Handler: h.Promotion.Approve, Mw: vendorOnly},
			{Method: http.MethodPost, Path: "/pending/:promotionId/reject", Handler: h.Promotion.Reject, Mw: vendorOnly},
			{Method: http.MethodDelete, Path: "/pending/expired", Handler: h.Promotion.ClearExpired, Mw: vendorOnly},
		})

		addRoutes(apiGroup.Group("/notifications"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Notification.List},
			{Method: http.MethodGet, Path: "/unread-count", Handler: h.Notification.UnreadCount},
			{Method: http.MethodPost, Path: "/:id/read", Handler: h.Notification.MarkRead, Mw: vendorOnly},
			{Method: http.MethodGet, Path: "/preferences", Handler: h.Notification.GetPreferences},
			{Method: http.MethodPut, Path: "/preferences", Handler: h.Notification.UpdatePreferences, Mw: vendorOnly},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
