package middleware

import (
	"log/slog"
	"slices"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// vendorHeaders identify the caller when no token is sent; the dashboard must
// always be allowed to send them.
var vendorHeaders = []string{"X-Vendor-ID", "X-Vendor-Role"}

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	allowHeaders := slices.Clone(cfg.AllowHeaders)
	for _, h := range vendorHeaders {
		if !slices.Contains(allowHeaders, h) {
			allowHeaders = append(allowHeaders, h)
		}
	}

	logger.Info("CORS configured", "allow_origins", cfg.AllowOrigins, "allow_headers", allowHeaders)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
