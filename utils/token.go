package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the subset of access-token claims the client cares
// about. The client never verifies signatures; tokens are opaque
// credentials validated by the backend, we only read them for display.
type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// InspectToken decodes a JWT without verifying it and extracts the
// claims used by "auth status". Returns an error for malformed tokens.
func InspectToken(tokenString string) (*TokenClaims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}

	out := &TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if out.Subject == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	return out, nil
}

// TokenExpired reports whether the inspected token's expiry has passed.
// A zero expiry counts as expired; the backend always sets one.
func (c *TokenClaims) TokenExpired() bool {
	if c.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().After(c.ExpiresAt)
}
