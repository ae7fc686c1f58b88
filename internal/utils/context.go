package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
)

var (
	ErrNoClaimsInContext = errors.New("no claims found in context")
	ErrInvalidClaimsType = errors.New("invalid claims type")
	ErrNoClaim           = errors.New("claim not found")
	ErrInvalidClaimType  = errors.New("claim must be a string")
)

// GetClaimsFromContext returns the verified claim set, if the request was
// authenticated.
func GetClaimsFromContext(c context.Context) (jwt.MapClaims, error) {
	claims, ok := c.Value(ClaimsKey).(jwt.MapClaims)
	if !ok {
		return nil, ErrNoClaimsInContext
	}
	return claims, nil
}

// GetStringClaim returns a single string claim from the request context.
func GetStringClaim(c context.Context, name string) (string, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return "", err
	}

	value, ok := claims[name]
	if !ok {
		return "", ErrNoClaim
	}

	str, ok := value.(string)
	if !ok {
		return "", ErrInvalidClaimType
	}
	return str, nil
}

// GetRoleFromContext returns the authenticated role ("ca" or "customer").
func GetRoleFromContext(c context.Context) (string, error) {
	return GetStringClaim(c, "role")
}

// GetUserIDFromContext returns the authenticated subject id.
func GetUserIDFromContext(c context.Context) (string, error) {
	return GetStringClaim(c, "user_id")
}
