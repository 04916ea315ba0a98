package ecode

import (
	"net/http"
	"sync"
)

// Business codes. 0 is success; negative values are failures.
const (
	OK               = 0
	RequestErr       = -400
	ParamErr         = -401
	Unauthorized     = -402
	AccessDenied     = -403
	NothingFound     = -404
	MethodNotAllowed = -405
	Conflict         = -409
	Unprocessable    = -422
	ServerErr        = -500
)

var (
	mu    sync.RWMutex
	texts = map[int]string{
		OK:               "ok",
		RequestErr:       "Bad Request",
		ParamErr:         "Invalid parameters",
		Unauthorized:     "Unauthorized",
		AccessDenied:     "Forbidden",
		NothingFound:     "Resource Not Found",
		MethodNotAllowed: "Method Not Allowed",
		Conflict:         "Conflict",
		Unprocessable:    "Unprocessable Entity",
		ServerErr:        "Internal Server Error",
	}
	statuses = map[int]int{
		OK:               http.StatusOK,
		RequestErr:       http.StatusBadRequest,
		ParamErr:         http.StatusBadRequest,
		Unauthorized:     http.StatusUnauthorized,
		AccessDenied:     http.StatusForbidden,
		NothingFound:     http.StatusNotFound,
		MethodNotAllowed: http.StatusMethodNotAllowed,
		Conflict:         http.StatusConflict,
		Unprocessable:    http.StatusUnprocessableEntity,
		ServerErr:        http.StatusInternalServerError,
	}
)

// Text returns the message for code, or the server error message when unknown
func Text(code int) string {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := texts[code]; ok {
		return t
	}
	return texts[ServerErr]
}

// ToHTTPStatus maps a business code to an HTTP status
func ToHTTPStatus(code int) int {
	mu.RLock()
	defer mu.RUnlock()
	if s, ok := statuses[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Register adds or replaces an application specific code
func Register(code int, text string, status int) {
	mu.Lock()
	defer mu.Unlock()
	texts[code] = text
	statuses[code] = status
}
