package middleware

import (
	"net/http"
	"strings"

	jwtsvc "carsalesweblink/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// DealerAuth validates the portal bearer token and stores the dealer id in
// the request context under "dealer_id".
func DealerAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			abortUnauthorized(c, "Missing bearer token")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			abortUnauthorized(c, "Empty token")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil || claims.Role != jwtsvc.RoleDealer || claims.DealerID == "" {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set("dealer_id", claims.DealerID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
