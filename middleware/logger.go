package middleware

import (
	"time"

	"github.com/milindvishnoi/FSND/ctxutil"
	"github.com/milindvishnoi/FSND/logging/logger"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request after it completes.
func Logger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		ctx := c.Request.Context()
		fields := []any{"HTTP request",
			"method", method,
			"path", path,
			"status", status,
			"duration", time.Since(start).String(),
			"client_ip", ctxutil.GetClientIP(c),
		}
		switch {
		case status >= 500:
			l.Error(ctx, fields...)
		case status >= 400:
			l.Warn(ctx, fields...)
		default:
			l.Info(ctx, fields...)
		}
	}
}
