package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nush-eats/storefront-app/utils"
)

// WebSocketAuthMiddleware authenticates /ws upgrades. Browsers cannot
// set headers on WebSocket handshakes, so the token travels as a query
// parameter.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if utils.IsTokenBlacklisted(token) {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set("admin_id", claims.AdminID)
		c.Next()
	}
}
