package middleware

import (
	"errors"

	"github.com/milindvishnoi/FSND/ctxutil"
	"github.com/milindvishnoi/FSND/ecode"
	"github.com/milindvishnoi/FSND/net/resp"
	"github.com/milindvishnoi/FSND/security/jwt"

	"github.com/gin-gonic/gin"
)

// RequirePermission verifies the bearer token and checks that it grants
// permission. The token subject is stored on the request context.
func RequirePermission(tm *jwt.TokenManager, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := tm.Authorize(c.GetHeader("Authorization"), permission)
		if err != nil {
			resp.Fail(c.Writer, AuthException(err))
			c.Abort()
			return
		}

		ctx := ctxutil.WithGinContext(c.Request.Context(), c)
		ctx = ctxutil.SetSubject(ctx, claims.Subject)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AuthException maps a token failure to the response body. The message is
// the machine readable code, the description goes into errors.
func AuthException(err error) *resp.Exception {
	var ae *jwt.AuthError
	if !errors.As(err, &ae) {
		return resp.InternalServer("")
	}
	code := ecode.Unauthorized
	if ae.Status == 403 {
		code = ecode.AccessDenied
	}
	return &resp.Exception{
		Status:  ae.Status,
		Code:    code,
		Message: ae.Code,
		Errors:  ae.Description,
	}
}
