package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken is returned when a bearer token cannot be parsed as a JWT.
var ErrMalformedToken = errors.New("malformed bearer token")

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpiry returns the "exp" claim of tokenString without verifying the
// signature; the remote store verifies it. ok is false when the token has no
// expiry.
func TokenExpiry(tokenString string) (exp time.Time, ok bool, err error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
	if expiresAt == nil {
		return time.Time{}, false, nil
	}

	return expiresAt.Time, true, nil
}

// IsTokenExpired reports whether tokenString expired at or before now.
// Tokens without an expiry never expire.
func IsTokenExpired(tokenString string, now time.Time) (bool, error) {
	exp, ok, err := TokenExpiry(tokenString)
	if err != nil {
		return false, err
	}
	return ok && !now.Before(exp), nil
}
