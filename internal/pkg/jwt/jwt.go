// Package jwt signs and checks the HS256 bearer tokens vendors use for the
// write endpoints.
package jwt

import (
	"errors"
	"time"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/clock"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const Issuer = "travelconnect-vendor"

// clock skew tolerated on exp/iat
const leeway = 30 * time.Second

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
)

type Claims struct {
	VendorID uuid.UUID `json:"vendor_id"`
	Role     string    `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

type Option func(*Service)

// WithClock replaces wall time for issuing and checking expiry.
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func NewService(secret string, ttl time.Duration, opts ...Option) *Service {
	s := &Service{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GenerateToken(vendorID uuid.UUID, role string) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		VendorID: vendorID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   vendorID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errs.Wrap(err, "sign token")
	}
	return signed, nil
}

// ValidateToken returns ErrExpiredToken or ErrInvalidToken, each wrapping
// the parser's reason.
func (s *Service) ValidateToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(leeway),
		jwt.WithTimeFunc(s.clock.Now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, errs.Wrap(ErrExpiredToken, err.Error())
	case err != nil:
		return nil, errs.Wrap(ErrInvalidToken, err.Error())
	case !parsed.Valid:
		return nil, ErrInvalidToken
	}
	return claims, nil
}
