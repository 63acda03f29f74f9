package middleware

import (
	"log/slog"
	"net/http"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/httperr"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLinesLogged = 12

// ErrorHandler renders errors that handlers recorded without writing a body.
// Public errors carry their response in Meta; private ones are mapped by sentinel.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			if status := httperr.StatusFor(e.Err); status >= http.StatusInternalServerError {
				logger.ErrorContext(c.Request.Context(), "request failed",
					"request_id", GetRequestID(c),
					"path", c.FullPath(),
					"error", e.Err,
					"stack", errs.StackLines(e.Err, stackLinesLogged),
				)
			}
		}

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		if resp, ok := last.Meta.(httperr.Response); ok && last.IsType(gin.ErrorTypePublic) {
			c.JSON(resp.Status, resp)
			return
		}
		status := httperr.StatusFor(last.Err)
		msg := http.StatusText(status)
		if status == http.StatusInternalServerError {
			msg = "Internal server error"
		}
		c.JSON(status, httperr.NewResponse(status, msg, nil))
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					"request_id", GetRequestID(c), "panic", rec, "path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
