package middleware

import (
	"github.com/milindvishnoi/FSND/ctxutil"

	"github.com/gin-gonic/gin"
)

// TraceHeader carries the request trace id in both directions.
const TraceHeader = "X-Trace-ID"

// Trace ensures every request has a trace id, reusing an incoming header.
func Trace() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithGinContext(c.Request.Context(), c)
		if incoming := c.GetHeader(TraceHeader); incoming != "" {
			ctx = ctxutil.SetTraceID(ctx, incoming)
		}
		ctx, traceID := ctxutil.EnsureTraceID(ctx)

		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceHeader, traceID)
		c.Next()
	}
}
