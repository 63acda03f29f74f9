//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/middleware"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/config"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/httptest"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/tests/common/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newStack wires the middleware in the same order as the router.
func newStack() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := testutil.DiscardLogger()
	cfg := config.NewTestConfig()

	r := gin.New()
	r.Use(middleware.CustomRecovery(logger))
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins: []string{"http://dashboard.test"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:       time.Hour,
	}, logger))
	r.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	r.Use(middleware.ErrorHandler(logger))

	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/validation", func(c *gin.Context) {
		_ = c.Error(errs.Mark(errs.New("bad threshold"), errs.ErrDomainValidation))
	})
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(errs.ErrPromotionNotFound) })
	r.GET("/decided", func(c *gin.Context) { _ = c.Error(promotion.ErrAlreadyDecided) })
	r.GET("/unknown", func(c *gin.Context) { _ = c.Error(errs.New("disk on fire")) })
	return r
}

func TestErrorHandlerMapsSentinels(t *testing.T) {
	r := newStack()

	tests := []struct {
		path string
		code int
		msg  string
	}{
		{path: "/validation", code: http.StatusBadRequest, msg: "Bad Request"},
		{path: "/missing", code: http.StatusNotFound, msg: "Not Found"},
		{path: "/decided", code: http.StatusConflict, msg: "Conflict"},
		{path: "/unknown", code: http.StatusInternalServerError, msg: "Internal server error"},
		{path: "/panic", code: http.StatusInternalServerError, msg: "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, tt.path, nil, "")
			resp := httptest.AssertErrorResponse(t, rec, tt.code, tt.msg)
			assert.Nil(t, resp.Detail)
		})
	}
}

func TestRequestID(t *testing.T) {
	r := newStack()

	t.Run("minted when absent", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("inbound id is echoed", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, "",
			httptest.WithHeader(middleware.RequestIDHeader, "gw-123"))
		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: "gw-123"})
	})
}

func TestCORSAllowsVendorHeaders(t *testing.T) {
	r := newStack()

	rec := httptest.PerformRequest(t, r, http.MethodOptions, "/ok", nil, "",
		httptest.WithHeader("Origin", "http://dashboard.test"),
		httptest.WithHeader("Access-Control-Request-Method", http.MethodPost),
		httptest.WithHeader("Access-Control-Request-Headers", "X-Vendor-ID"),
	)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	httptest.AssertHeaders(t, rec, map[string]string{
		"Access-Control-Allow-Origin": "http://dashboard.test",
	})
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Vendor-Id")
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	r := newStack()

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/ok", nil, "",
		httptest.WithHeader("Origin", "http://evil.test"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
