package ctxutil

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionHeader carries a client supplied session identifier.
const SessionHeader = "X-Session-ID"

// GetSessionID reads the session id from the cookie or the header.
func GetSessionID(c *gin.Context) string {
	if sessionID, err := c.Cookie("session_id"); err == nil && sessionID != "" {
		return sessionID
	}
	return strings.TrimSpace(c.GetHeader(SessionHeader))
}

// GetClientIP returns gin's client IP, which honours the engine's trusted
// proxy settings.
func GetClientIP(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
