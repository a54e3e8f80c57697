// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// GetUserID gets the authenticated user id from context.
func GetUserID(c *gin.Context) (int64, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	id, ok := userID.(int64)
	return id, ok
}

// MustGetUserID gets the user id from context or panics. Only call behind
// Auth().
func MustGetUserID(c *gin.Context) int64 {
	id, exists := GetUserID(c)
	if !exists {
		panic("user_id not found in context")
	}
	return id
}

// IsAdmin checks if the authenticated user is an admin.
func IsAdmin(c *gin.Context) bool {
	role, exists := c.Get("role")
	if !exists {
		return false
	}

	r, ok := role.(string)
	return ok && r == "admin"
}
