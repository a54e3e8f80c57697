// internal/pkg/jwt/verifier.go
package jwt

import (
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type Verifier struct {
	pub      *rsa.PublicKey
	issuer   string
	audience string
}

func NewVerifier(pub *rsa.PublicKey, issuer, audience string) *Verifier {
	return &Verifier{
		pub:      pub,
		issuer:   issuer,
		audience: audience,
	}
}

// Verify validates a token and returns the claims.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	if v.pub == nil {
		return nil, fmt.Errorf("jwt verifier has nil public key")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.pub, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != v.issuer {
		return nil, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}

	if !claims.VerifyAudience(v.audience, true) {
		return nil, fmt.Errorf("invalid audience")
	}

	return claims, nil
}

// VerifyAccessToken verifies that the token is for access purposes.
func (v *Verifier) VerifyAccessToken(tokenString string) (*Claims, error) {
	claims, err := v.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != "access" {
		return nil, fmt.Errorf("token is not an access token")
	}
	return claims, nil
}

// VerifyPasswordResetToken verifies that the token is for password reset.
func (v *Verifier) VerifyPasswordResetToken(tokenString string) (*Claims, error) {
	claims, err := v.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Purpose != "password_reset" {
		return nil, fmt.Errorf("token is not a password reset token")
	}
	return claims, nil
}
