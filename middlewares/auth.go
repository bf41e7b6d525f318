package middlewares

import (
	"strings"

	"storefront/pkg/resp"
	"storefront/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid JWT in the Authorization header.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return authenticate(secret, false)
}

// WSAuthMiddleware also accepts the token query parameter, since browsers
// cannot set headers on a websocket upgrade. Use it on websocket routes only.
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return authenticate(secret, true)
}

func authenticate(secret string, allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		} else if allowQuery {
			tokenStr = c.Query("token")
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(utils.CtxUserID, claims.UserID)
		c.Set(utils.CtxUsername, claims.Username)
		c.Next()
	}
}
