package jwt

import (
	"errors"
	"slices"
	"strings"
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
)

// TokenError represents JWT token related errors
type TokenError string

func (e TokenError) Error() string {
	return string(e)
}

const (
	DefaultAccessTokenExpire = time.Hour * 24

	ErrNeedTokenProvider = TokenError("cannot sign token without token provider")
)

// Claims is the verified content of an access token
type Claims struct {
	Subject     string
	Permissions []string
	ExpiresAt   time.Time
}

// Has reports whether the claims grant permission
func (c *Claims) Has(permission string) bool {
	return c != nil && slices.Contains(c.Permissions, permission)
}

// TokenManager handles JWT token operations
type TokenManager struct {
	key      string
	issuer   string
	audience string
}

// Option configures a TokenManager
type Option func(*TokenManager)

// WithIssuer requires and sets the iss claim
func WithIssuer(issuer string) Option {
	return func(m *TokenManager) { m.issuer = issuer }
}

// WithAudience requires and sets the aud claim
func WithAudience(audience string) Option {
	return func(m *TokenManager) { m.audience = audience }
}

// NewTokenManager creates a new TokenManager instance
func NewTokenManager(key string, opts ...Option) *TokenManager {
	m := &TokenManager{key: key}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// validateKey validates the token key
func (jtm *TokenManager) validateKey() error {
	if jtm.key == "" {
		return ErrNeedTokenProvider
	}
	return nil
}

// GenerateAccessToken signs an HS256 token carrying permissions. A non
// positive expiry uses DefaultAccessTokenExpire.
func (jtm *TokenManager) GenerateAccessToken(subject string, permissions []string, expiry time.Duration) (string, error) {
	if err := jtm.validateKey(); err != nil {
		return "", err
	}
	if expiry <= 0 {
		expiry = DefaultAccessTokenExpire
	}

	claims := jwtstd.MapClaims{
		"sub":         subject,
		"permissions": permissions,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(expiry).Unix(),
	}
	if jtm.issuer != "" {
		claims["iss"] = jtm.issuer
	}
	if jtm.audience != "" {
		claims["aud"] = jtm.audience
	}

	t := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims)
	return t.SignedString([]byte(jtm.key))
}

// Verify parses and validates a token and returns its claims. Failures are
// *AuthError values.
func (jtm *TokenManager) Verify(tokenString string) (*Claims, error) {
	if err := jtm.validateKey(); err != nil {
		return nil, ErrInvalidClaims("Tokens cannot be verified without a signing secret.")
	}

	opts := []jwtstd.ParserOption{jwtstd.WithValidMethods([]string{jwtstd.SigningMethodHS256.Alg()})}
	if jtm.issuer != "" {
		opts = append(opts, jwtstd.WithIssuer(jtm.issuer))
	}
	if jtm.audience != "" {
		opts = append(opts, jwtstd.WithAudience(jtm.audience))
	}

	claims := jwtstd.MapClaims{}
	_, err := jwtstd.ParseWithClaims(tokenString, claims, func(*jwtstd.Token) (any, error) {
		return []byte(jtm.key), nil
	}, opts...)
	switch {
	case err == nil:
	case errors.Is(err, jwtstd.ErrTokenExpired):
		return nil, ErrTokenExpired()
	case errors.Is(err, jwtstd.ErrTokenInvalidIssuer), errors.Is(err, jwtstd.ErrTokenInvalidAudience):
		return nil, ErrInvalidClaims("Incorrect claims. Please, check the audience and issuer.")
	default:
		return nil, ErrInvalidHeader("Unable to parse authentication token.")
	}

	permissions, ok := permissionsFromClaims(claims)
	if !ok {
		return nil, ErrInvalidClaims("Permissions not included in JWT.")
	}

	out := &Claims{Permissions: permissions}
	out.Subject, _ = claims.GetSubject()
	if exp, _ := claims.GetExpirationTime(); exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Authorize verifies an Authorization header value and checks permission.
// An empty permission only verifies the token.
func (jtm *TokenManager) Authorize(header, permission string) (*Claims, error) {
	token, err := BearerToken(header)
	if err != nil {
		return nil, err
	}
	claims, err := jtm.Verify(token)
	if err != nil {
		return nil, err
	}
	if permission != "" && !claims.Has(permission) {
		return nil, ErrForbidden(permission)
	}
	return claims, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", ErrHeaderMissing()
	}

	parts := strings.Fields(header)
	switch {
	case !strings.EqualFold(parts[0], "bearer"):
		return "", ErrInvalidHeader(`Authorization header must start with "Bearer".`)
	case len(parts) == 1:
		return "", ErrInvalidHeader("Token not found.")
	case len(parts) > 2:
		return "", ErrInvalidHeader("Authorization header must be bearer token.")
	}
	return parts[1], nil
}

// permissionsFromClaims reads a top level permissions claim, falling back to
// payload.permissions.
func permissionsFromClaims(claims jwtstd.MapClaims) ([]string, bool) {
	raw, ok := claims["permissions"]
	if !ok {
		payload, isMap := claims["payload"].(map[string]any)
		if !isMap {
			return nil, false
		}
		if raw, ok = payload["permissions"]; !ok {
			return nil, false
		}
	}

	slice, ok := raw.([]any)
	if !ok {
		return nil, raw == nil
	}
	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if str, ok := item.(string); ok {
			result = append(result, str)
		}
	}
	return result, true
}
