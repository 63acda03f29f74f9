package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	RequestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
	// longest inbound request id we echo back
	maxRequestIDLen = 64
)

// Logger owns the process slog logger and the request logging middleware.
type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

// NewLogger builds JSON output in release mode and text output otherwise.
// Timestamps are rendered in the configured zone and format.
func NewLogger(cfg config.LogConfig) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key != slog.TimeKey {
				return a
			}
			if t, ok := a.Value.Any().(time.Time); ok {
				a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
			}
			return a
		},
	}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	return &Logger{logger: slog.New(handler), timezone: timezone}
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// LoggingMiddleware reuses the application logger when one is given.
func LoggingMiddleware(logger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	if logger == nil {
		return NewLogger(cfg).LoggingMiddleware()
	}
	l := &Logger{logger: logger, timezone: time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)}
	return l.LoggingMiddleware()
}

// LoggingMiddleware logs one line when a request starts and one when it
// completes. The completion level follows the status class.
func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		requestID := l.requestID(c.GetHeader(RequestIDHeader))
		c.Set(ctxRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		vendorID, role := extractVendorContext(c)
		if vendorID != "" {
			attrs = append(attrs, slog.String("vendor_id", vendorID))
		}
		if role != "" {
			attrs = append(attrs, slog.String("role", role))
		}
		l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "Request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(started)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(c.Request.Context(), level, "Request completed", attrs...)
	}
}

// requestID keeps a caller-supplied id from the gateway, otherwise mints one
// as "<timestamp>-<8 hex>".
func (l *Logger) requestID(inbound string) string {
	if inbound = strings.TrimSpace(inbound); inbound != "" && len(inbound) <= maxRequestIDLen {
		return inbound
	}
	stamp := time.Now().In(l.timezone).Format("20060102150405")
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return stamp
	}
	return stamp + "-" + hex.EncodeToString(b)
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

// The vendor is only known when auth ran before this middleware; the
// X-Vendor-* headers cover calls made from behind the gateway.
func extractVendorContext(c *gin.Context) (vendorID, role string) {
	if id, ok := GetVendorID(c); ok {
		vendorID = id.String()
	}
	if r, ok := GetRole(c); ok {
		role = r.String()
	}
	if vendorID == "" {
		vendorID = c.GetHeader("X-Vendor-ID")
	}
	if role == "" {
		role = c.GetHeader("X-Vendor-Role")
	}
	return
}
