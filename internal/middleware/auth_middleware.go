// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tradeyardgit/TradeYard/internal/pkg/jwt"
	"github.com/tradeyardgit/TradeYard/internal/pkg/response"
)

type AuthMiddleware struct {
	verifier *jwt.Verifier
}

func NewAuthMiddleware(verifier *jwt.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Auth validates the bearer token and stores the user identity on the
// request context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}

		claims, err := m.verifier.VerifyAccessToken(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", err)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("email", claims.Email)

		c.Next()
	}
}

// RequireAdmin rejects non-admin users. MUST be used after Auth().
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			response.Error(c, http.StatusForbidden, "admin access required", nil)
			return
		}
		c.Next()
	}
}

// AdminOnly returns the middleware chain for admin routes.
func (m *AuthMiddleware) AdminOnly() []gin.HandlerFunc {
	return []gin.HandlerFunc{
		m.Auth(),
		m.RequireAdmin(),
	}
}

// extractToken pulls the Bearer token from the Authorization header, falling
// back to the token query param for websocket upgrades.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}

	return c.Query("token")
}
