package utils

import "github.com/gin-gonic/gin"

// Keys set on the gin context by the auth and request-logging middlewares.
const (
	CtxUserID    = "userId"
	CtxUsername  = "username"
	CtxRequestID = "requestId"
)

// CurrentUserID returns the user ID from the verified token, or 0 when the
// request carried none.
func CurrentUserID(c *gin.Context) uint {
	id, _ := c.Get(CtxUserID)
	v, _ := id.(uint)
	return v
}

func CurrentUsername(c *gin.Context) string {
	return c.GetString(CtxUsername)
}

func RequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}
