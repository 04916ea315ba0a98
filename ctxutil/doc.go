// Package ctxutil carries request scoped values (trace id and token subject)
// through context.Context and *gin.Context.
package ctxutil
