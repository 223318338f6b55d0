package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ParseBearerToken extracts the token value from an Authorization header of
// the form "Bearer <token>". Returns an error if the header does not have
// exactly two parts or the token part is empty.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpiresAt decodes tokenString without verifying its signature and
// returns the expiration time from the "exp" claim.
//
// The client never verifies tokens — the credential service does that — but
// it inspects expiry to warn about, or refuse, calls that are guaranteed to
// fail with 401. Returns an error if the token cannot be decoded or carries
// no expiration claim.
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("decode token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("get token expiration: %w", err)
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no expiration claim")
	}

	return exp.Time, nil
}

// IsTokenExpired reports whether tokenString carries an "exp" claim in the
// past. Tokens that cannot be decoded or have no expiry are treated as
// expired, so the caller fails before the network round-trip.
func IsTokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiresAt(tokenString)
	if err != nil {
		return true
	}
	return exp.Before(now)
}
