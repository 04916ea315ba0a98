package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/milindvishnoi/FSND/config"

	"github.com/gin-gonic/gin"
)

// CORS sets the access control headers and answers preflight requests.
func CORS(cfg *config.CORS) gin.HandlerFunc {
	if cfg == nil {
		cfg = &config.CORS{}
	}
	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	headers := strings.Join(cfg.AllowHeaders, ", ")
	methods := strings.Join(cfg.AllowMethods, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case slices.Contains(origins, "*"):
			c.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(origins, origin):
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		if headers != "" {
			c.Header("Access-Control-Allow-Headers", headers)
		}
		if methods != "" {
			c.Header("Access-Control-Allow-Methods", methods)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
