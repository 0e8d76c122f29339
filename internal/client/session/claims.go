package session

import (
	"fmt"
	"time"

	"github.com/aaywp/portal/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is what the client can learn from an access token without the
// signing key. It is informational only; the backend remains the authority.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

type tokenClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// ParseClaims decodes token without verifying its signature. Opaque
// (non-JWT) tokens yield common.ErrInvalidToken.
func ParseClaims(token string) (Claims, error) {
	var tc tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &tc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	c := Claims{Subject: tc.Subject, Role: tc.Role}
	if tc.ExpiresAt != nil {
		c.ExpiresAt = tc.ExpiresAt.Time
	}
	return c, nil
}

// Expired reports whether the token has an expiry that lies before now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}
