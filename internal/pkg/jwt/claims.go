// internal/pkg/jwt/claims.go
package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by TradeYard tokens.
type Claims struct {
	UserID  int64  `json:"user_id"`
	Role    string `json:"role,omitempty"`
	Email   string `json:"email,omitempty"`
	Purpose string `json:"purpose"` // access, password_reset
	jwt.RegisteredClaims
}

// IsAdmin checks if the token belongs to an admin account.
func (c *Claims) IsAdmin() bool {
	return c.Role == "admin"
}

// VerifyAudience checks if the expected audience is listed in the claims.
func (c *Claims) VerifyAudience(audience string, required bool) bool {
	if len(c.Audience) == 0 {
		return !required
	}
	for _, aud := range c.Audience {
		if aud == audience {
			return true
		}
	}
	return false
}
