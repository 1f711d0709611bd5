package middleware

import (
	"net/http"
	"strings"

	"aide/utils"

	"github.com/gin-gonic/gin"
)

const (
	// ContextUserEmail is the gin context key holding the authenticated email.
	ContextUserEmail = "userEmail"
	// ContextUserName is the gin context key holding the display name.
	ContextUserName = "userName"
)

// SessionAuthMiddleware validates the Bearer session token and attaches the
// authenticated identity to the request context. A valid JWT is enough; the
// Redis session cache only short-circuits repeat lookups.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or malformed Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, name, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			return
		}

		c.Set(ContextUserEmail, email)
		c.Set(ContextUserName, name)
		c.Next()
	}
}

// UserEmail returns the authenticated email set by SessionAuthMiddleware.
func UserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}

// UserName returns the authenticated display name, possibly empty.
func UserName(c *gin.Context) string {
	return c.GetString(ContextUserName)
}
