package middleware

import (
	"crypto/subtle"
	"net/http"

	"tablebot/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the admin surface with a static API key passed
// in the X-Admin-Key header. With no key configured the surface stays closed.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := config.AppConfig.AdminAPIKey
		if key == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Admin API is not configured"})
			return
		}

		provided := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
