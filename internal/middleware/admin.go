package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminAuth protects the admin console API with a static shared token carried
// in the X-Admin-Token header.
func AdminAuth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "ADMIN_DISABLED",
					"message": "Admin token is not configured",
				},
			})
			return
		}

		got := c.GetHeader("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			abortUnauthorized(c, "Invalid admin token")
			return
		}

		c.Next()
	}
}
