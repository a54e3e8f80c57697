// internal/pkg/jwt/generator.go
package jwt

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

type Generator struct {
	priv     *rsa.PrivateKey
	issuer   string
	audience string
	kid      string // key id for rotation
	ttl      time.Duration
}

func NewGenerator(priv *rsa.PrivateKey, issuer, audience, kid string, ttl time.Duration) *Generator {
	return &Generator{
		priv:     priv,
		issuer:   issuer,
		audience: audience,
		kid:      kid,
		ttl:      ttl,
	}
}

// Generate creates a signed token for a user. The returned jti identifies
// the token instance.
func (g *Generator) Generate(userID int64, role, email, purpose string, ttl time.Duration) (string, string, error) {
	if g.priv == nil {
		return "", "", fmt.Errorf("jwt generator has nil private key")
	}

	now := time.Now()
	jti := ulid.Make().String()

	claims := &Claims{
		UserID:  userID,
		Role:    role,
		Email:   email,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    g.issuer,
			Subject:   fmt.Sprintf("%d", userID),
			Audience:  []string{g.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ID:        jti,
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if g.kid != "" {
		tok.Header["kid"] = g.kid
	}

	signed, err := tok.SignedString(g.priv)
	return signed, jti, err
}

// GenerateAccessToken generates a standard access token.
func (g *Generator) GenerateAccessToken(userID int64, role, email string) (string, string, error) {
	return g.Generate(userID, role, email, "access", g.ttl)
}

// GeneratePasswordResetToken generates a short-lived password reset token.
func (g *Generator) GeneratePasswordResetToken(userID int64, email string) (string, string, error) {
	return g.Generate(userID, "", email, "password_reset", time.Hour)
}
