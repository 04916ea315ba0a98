package ctxutil

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ctxKey string

const (
	ginContextKey   ctxKey = "gin_context"
	subjectKey      ctxKey = "subject"
	TraceIDKey             = "trace_id"
	traceIDValueKey ctxKey = TraceIDKey
)

// WithGinContext returns a context.Context that embeds the *gin.Context.
func WithGinContext(ctx context.Context, c *gin.Context) context.Context {
	return context.WithValue(ctx, ginContextKey, c)
}

// ginContext extracts *gin.Context from context.Context if it exists.
func ginContext(ctx context.Context) (*gin.Context, bool) {
	if c, ok := ctx.Value(ginContextKey).(*gin.Context); ok {
		return c, ok
	}
	return nil, false
}

// getValue retrieves a value from the gin context first, then from ctx.
func getValue(ctx context.Context, key ctxKey) any {
	if c, ok := ginContext(ctx); ok {
		if val, exists := c.Get(string(key)); exists {
			return val
		}
	}
	return ctx.Value(key)
}

// setValue stores a value in ctx and mirrors it into the gin context.
func setValue(ctx context.Context, key ctxKey, val any) context.Context {
	if c, ok := ginContext(ctx); ok {
		c.Set(string(key), val)
	}
	return context.WithValue(ctx, key, val)
}

// GetTraceID gets trace id from context.Context or gin.Context.
func GetTraceID(ctx context.Context) string {
	if traceID, ok := getValue(ctx, traceIDValueKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets trace id to context.Context and gin.Context if available.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return setValue(ctx, traceIDValueKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}

// SetSubject sets the verified token subject.
func SetSubject(ctx context.Context, sub string) context.Context {
	return setValue(ctx, subjectKey, sub)
}

// GetSubject gets the verified token subject.
func GetSubject(ctx context.Context) string {
	if sub, ok := getValue(ctx, subjectKey).(string); ok {
		return sub
	}
	return ""
}
