package usecase

import (
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/domain/auth"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the vendor it was issued to.
type TokenValidator interface {
	ValidateToken(token string) (auth.Vendor, error)
}

type jwtTokenValidator struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &jwtTokenValidator{tokens: tokens}
}

func (v *jwtTokenValidator) ValidateToken(token string) (auth.Vendor, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return auth.Vendor{}, err
	}
	// a well-signed token with a role we no longer know is still unusable
	role, err := auth.NewRole(claims.Role)
	if err != nil {
		return auth.Vendor{}, errs.Mark(errs.Wrapf(err, "role %q", claims.Role), jwt.ErrInvalidToken)
	}
	return auth.Vendor{ID: claims.VendorID, Role: role}, nil
}
