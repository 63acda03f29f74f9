//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/auth"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/config"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the running app will accept, signed with the
// app's own secret.
type JWTHelper struct {
	secret string
	ttl    time.Duration
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	ttl, err := time.ParseDuration(cfg.Duration)
	if err != nil || ttl <= 0 {
		ttl = time.Hour
	}
	return &JWTHelper{secret: cfg.Secret, ttl: ttl}
}

func (h *JWTHelper) GenerateToken(t *testing.T, vendorID uuid.UUID, role auth.Role) string {
	t.Helper()
	return h.sign(t, vendorID, role, h.ttl)
}

// CreateExpiredToken is already past the validator's leeway.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, vendorID uuid.UUID, role auth.Role) string {
	t.Helper()
	return h.sign(t, vendorID, role, -time.Hour)
}

func (h *JWTHelper) sign(t *testing.T, vendorID uuid.UUID, role auth.Role, ttl time.Duration) string {
	t.Helper()
	token, err := jwt.NewService(h.secret, ttl).GenerateToken(vendorID, role.String())
	require.NoError(t, err)
	return token
}
