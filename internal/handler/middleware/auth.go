package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/auth"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/handler/httperr"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxVendorIDKey = "vendor_id"
	ctxRoleKey     = "vendor_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.NewResponse(http.StatusUnauthorized, "Access token required", nil))
			return
		}

		vendor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.NewResponse(http.StatusUnauthorized, "Invalid or expired token", nil))
			return
		}

		setVendor(c, vendor)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			return
		}

		if !role.AtLeast(minRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, httperr.NewResponse(http.StatusForbidden, "Insufficient permissions", nil))
			return
		}

		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		vendor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setVendor(c, vendor)
		c.Next()
	}
}

func setVendor(c *gin.Context, v auth.Vendor) {
	c.Set(ctxVendorIDKey, v.ID)
	c.Set(ctxRoleKey, v.Role)
}

func GetVendorID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxVendorIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetRole(c *gin.Context) (auth.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(auth.Role)
	return role, ok
}
