package jwt

import (
	"fmt"
	"net/http"
)

// AuthError codes reported to clients
const (
	CodeHeaderMissing = "authorization_header_missing"
	CodeInvalidHeader = "invalid_header"
	CodeTokenExpired  = "token_expired"
	CodeInvalidClaims = "invalid_claims"
	CodeUnauthorized  = "unauthorized"
)

// AuthError is an authentication or authorization failure with the HTTP
// status it maps to.
type AuthError struct {
	Status      int
	Code        string
	Description string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func newAuthError(status int, code, description string) *AuthError {
	return &AuthError{Status: status, Code: code, Description: description}
}

// ErrHeaderMissing is returned when no Authorization header was sent.
func ErrHeaderMissing() *AuthError {
	return newAuthError(http.StatusUnauthorized, CodeHeaderMissing, "Authorization header is expected.")
}

// ErrInvalidHeader is returned for malformed headers and unparsable tokens.
func ErrInvalidHeader(description string) *AuthError {
	return newAuthError(http.StatusUnauthorized, CodeInvalidHeader, description)
}

// ErrTokenExpired is returned for tokens past their exp claim.
func ErrTokenExpired() *AuthError {
	return newAuthError(http.StatusUnauthorized, CodeTokenExpired, "Token expired.")
}

// ErrInvalidClaims is returned when issuer, audience or permissions are wrong.
func ErrInvalidClaims(description string) *AuthError {
	return newAuthError(http.StatusUnauthorized, CodeInvalidClaims, description)
}

// ErrForbidden is returned when a valid token lacks the permission.
func ErrForbidden(permission string) *AuthError {
	return newAuthError(http.StatusForbidden, CodeUnauthorized, fmt.Sprintf("Permission %q not found.", permission))
}
