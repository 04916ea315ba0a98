package coffee

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/milindvishnoi/FSND/config"
	"github.com/milindvishnoi/FSND/data/datatest"
	"github.com/milindvishnoi/FSND/extension/types"
	"github.com/milindvishnoi/FSND/internal/coffee/structs"
	"github.com/milindvishnoi/FSND/logging/logger"
	"github.com/milindvishnoi/FSND/security/jwt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "coffee-test-secret"

var manager = []string{structs.PermGetDetail, structs.PermPostDrinks, structs.PermPatchDrinks, structs.PermDelete}

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T, seed bool) *gin.Engine {
	t.Helper()
	return newRouterWithSecret(t, secret, seed)
}

func newRouterWithSecret(t *testing.T, signingSecret string, seed bool) *gin.Engine {
	t.Helper()
	return newRouterWithLog(t, signingSecret, seed, logger.NewWriter(io.Discard, logrus.ErrorLevel))
}

func newRouterWithLog(t *testing.T, signingSecret string, seed bool, log *logger.Logger) *gin.Engine {
	t.Helper()

	m := New()
	deps := &types.Deps{
		Config: &config.Config{
			Auth:   &config.Auth{JWT: &config.JWT{Secret: signingSecret, Issuer: "fsnd"}},
			Paging: &config.Paging{PageSize: 10, MaxPageSize: 50},
		},
		Data:   datatest.New(t, m.Tables()...),
		Logger: log,
	}
	require.NoError(t, m.Init(deps))
	if seed {
		require.NoError(t, m.Seed(context.Background()))
	}

	r := gin.New()
	m.RegisterRoutes(r)
	return r
}

func token(t *testing.T, permissions ...string) string {
	t.Helper()
	tok, err := jwt.NewTokenManager(secret, jwt.WithIssuer("fsnd")).GenerateAccessToken("tester", permissions, time.Hour)
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(t *testing.T, r *gin.Engine, method, path, auth string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func TestDrinks_EmptyMenu(t *testing.T) {
	r := newRouter(t, false)
	code, body := do(t, r, http.MethodGet, "/drinks", "", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{}, body["drinks"])
}

func TestDrinks_PublicShortForm(t *testing.T) {
	r := newRouter(t, true)
	code, body := do(t, r, http.MethodGet, "/drinks?page=1", "", nil)

	require.Equal(t, http.StatusOK, code)
	drinks := body["drinks"].([]any)
	require.Len(t, drinks, 3)
	first := drinks[0].(map[string]any)
	ingredient := first["recipe"].([]any)[0].(map[string]any)
	assert.NotContains(t, ingredient, "name")

	code, body = do(t, r, http.MethodGet, "/drinks?page=9", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, body["drinks"])
	assert.EqualValues(t, 3, body["total_drinks"])
}

func TestDrinksDetail_Auth(t *testing.T) {
	r := newRouter(t, true)

	tests := []struct {
		name   string
		auth   string
		status int
		code   string
	}{
		{"missing header", "", http.StatusUnauthorized, "authorization_header_missing"},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "invalid_header"},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized, "invalid_header"},
		{"missing permission", token(t, structs.PermPostDrinks), http.StatusForbidden, "unauthorized"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, r, http.MethodGet, "/drinks-detail", tt.auth, nil)
			assert.Equal(t, tt.status, code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.code, body["message"])
		})
	}

	code, body := do(t, r, http.MethodGet, "/drinks-detail", token(t, structs.PermGetDetail), nil)
	require.Equal(t, http.StatusOK, code)
	first := body["drinks"].([]any)[0].(map[string]any)
	ingredient := first["recipe"].([]any)[0].(map[string]any)
	assert.Equal(t, "water", ingredient["name"])
}

func TestDrinks_ManagerLifecycle(t *testing.T) {
	r := newRouter(t, false)
	auth := token(t, manager...)

	code, body := do(t, r, http.MethodPost, "/drinks", auth, map[string]any{
		"title":  "Cortado",
		"recipe": map[string]any{"name": "espresso", "color": "brown", "parts": 1},
	})
	require.Equal(t, http.StatusOK, code, body)
	created := body["drinks"].([]any)[0].(map[string]any)
	id := int(created["id"].(float64))
	assert.Equal(t, "Cortado", created["title"])

	code, body = do(t, r, http.MethodPost, "/drinks", auth, map[string]any{
		"title":  "Cortado",
		"recipe": []any{map[string]any{"name": "milk", "color": "white", "parts": 1}},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, false, body["success"])

	code, _ = do(t, r, http.MethodPost, "/drinks", auth, map[string]any{"title": "Nothing", "recipe": []any{}})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	path := "/drinks/" + itoa(id)
	code, body = do(t, r, http.MethodPatch, path, auth, map[string]any{"title": "Gibraltar"})
	require.Equal(t, http.StatusOK, code)
	updated := body["drinks"].([]any)[0].(map[string]any)
	assert.Equal(t, "Gibraltar", updated["title"])
	assert.Len(t, updated["recipe"], 1)

	code, _ = do(t, r, http.MethodPatch, "/drinks/999", auth, map[string]any{"title": "Ghost"})
	assert.Equal(t, http.StatusNotFound, code)

	code, body = do(t, r, http.MethodDelete, path, auth, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, id, body["delete"])

	code, _ = do(t, r, http.MethodDelete, path, auth, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDrinks_ExpiredToken(t *testing.T) {
	r := newRouter(t, false)
	tm := jwt.NewTokenManager(secret, jwt.WithIssuer("fsnd"))
	tok, err := tm.GenerateAccessToken("tester", manager, time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	code, body := do(t, r, http.MethodDelete, "/drinks/1", "Bearer "+tok, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "token_expired", body["message"])
}

func TestDrinks_NoSigningSecretRejectsTokens(t *testing.T) {
	r := newRouterWithSecret(t, "", true)

	code, body := do(t, r, http.MethodGet, "/drinks-detail", token(t, "get:drinks-detail"), nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid_claims", body["message"])

	code, _ = do(t, r, http.MethodGet, "/drinks", "", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestDrinks_ChangesLogTokenSubject(t *testing.T) {
	var out bytes.Buffer
	r := newRouterWithLog(t, secret, true, logger.NewWriter(&out, logrus.InfoLevel))

	tok, err := jwt.NewTokenManager(secret, jwt.WithIssuer("fsnd")).GenerateAccessToken("head-barista", manager, time.Hour)
	require.NoError(t, err)

	code, _ := do(t, r, http.MethodDelete, "/drinks/1", "Bearer "+tok, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, out.String(), "drink deleted")
	assert.Contains(t, out.String(), "head-barista")
}

func itoa(n int) string {
	raw, _ := json.Marshal(n)
	return string(raw)
}
