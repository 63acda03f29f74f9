package httperr

import (
	"net/http"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/promotion"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// AbortWithError writes the JSON error body and keeps err on the context for
// the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusFor maps the shared sentinels to a status; anything unknown is a 500.
func StatusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrPromotionNotFound), errs.Is(err, errs.ErrNotificationNotFound):
		return http.StatusNotFound
	case errs.Is(err, promotion.ErrAlreadyDecided):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
