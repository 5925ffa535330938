package usecase

import (
	"vista-ecoupon/internal/domain/member"
	"vista-ecoupon/internal/pkg/errs"
	"vista-ecoupon/internal/pkg/jwt"
	"vista-ecoupon/internal/usecase/shared"
)

var ErrNotAdmin = errs.New("admin role required")

// TokenValidator turns a bearer token into the session context the engine
// operates on.
type TokenValidator interface {
	ValidateSession(tokenString string) (shared.Session, error)
	ValidateAdmin(tokenString string) (string, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

// ValidateSession rebuilds the caller's session from token claims. Members
// key their used-coupon cache by identifier; guest tokens key it by token id,
// so every guest session tracks its own redemptions.
func (t *tokenValidatorImpl) ValidateSession(tokenString string) (shared.Session, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Session{}, err
	}

	cacheKey := claims.Identifier
	if claims.Identifier == member.GuestIdentifier {
		cacheKey = "guest:" + claims.ID
	}

	return shared.Session{
		Identifier:  claims.Identifier,
		CacheKey:    cacheKey,
		Entitlement: member.Entitlement(claims.Entitlement),
		DisplayName: claims.DisplayName,
	}, nil
}

// ValidateAdmin accepts only admin-scoped tokens and returns the username.
func (t *tokenValidatorImpl) ValidateAdmin(tokenString string) (string, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Role != jwt.RoleAdmin {
		return "", ErrNotAdmin
	}
	return claims.Identifier, nil
}
