package middleware

import (
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/net/resp"

	"github.com/gin-gonic/gin"
)

// Recovery turns panics into the JSON 500 body.
func Recovery(l *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		l.Errorf(c.Request.Context(), "panic recovered: %v", recovered)
		resp.Fail(c.Writer, resp.InternalServer(""))
		c.Abort()
	})
}
