package trivia

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/milindvishnoi/FSND/config"
	"github.com/milindvishnoi/FSND/ctxutil"
	"github.com/milindvishnoi/FSND/data/datatest"
	"github.com/milindvishnoi/FSND/extension/types"
	"github.com/milindvishnoi/FSND/internal/trivia/handler"
	"github.com/milindvishnoi/FSND/logging/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()

	m := New()
	d := datatest.New(t, m.Tables()...)
	deps := &types.Deps{
		Config: &config.Config{Paging: &config.Paging{PageSize: 10, MaxPageSize: 100}},
		Data:   d,
		Logger: logger.NewWriter(io.Discard, logrus.ErrorLevel),
	}
	require.NoError(t, m.Init(deps))
	require.NoError(t, m.Seed(context.Background()))

	r := gin.New()
	m.RegisterRoutes(r)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w.Code, out
}

func TestCategories(t *testing.T) {
	r := newRouter(t)
	code, body := do(t, r, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	categories := body["categories"].(map[string]any)
	assert.Equal(t, "Science", categories["1"])
}

func TestQuestions_Paginated(t *testing.T) {
	r := newRouter(t)

	code, body := do(t, r, http.MethodGet, "/questions?page=1", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body["questions"], 10)
	assert.EqualValues(t, 17, body["total_questions"])
	assert.Nil(t, body["current_category"])
	assert.NotEmpty(t, body["categories"])

	code, body = do(t, r, http.MethodGet, "/questions?page=1000", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.EqualValues(t, 404, body["error"])

	code, _ = do(t, r, http.MethodGet, "/questions?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestQuestions_CreateValidation(t *testing.T) {
	r := newRouter(t)

	code, body := do(t, r, http.MethodPost, "/questions", map[string]any{
		"question": "Q", "answer": "A", "category": 1, "difficulty": 9,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, map[string]any{"Difficulty": "max=5"}, body["errors"])

	code, body = do(t, r, http.MethodPost, "/questions", map[string]any{
		"question": "Q", "answer": "A", "category": 1, "difficulty": 2,
	})
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 18, body["total_questions"])
	created := body["created"].(float64)

	code, body = do(t, r, http.MethodDelete, "/questions/"+jsonNumber(created), nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, created, body["deleted"])

	code, _ = do(t, r, http.MethodDelete, "/questions/"+jsonNumber(created), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestQuestions_SearchAndCategory(t *testing.T) {
	r := newRouter(t)

	code, body := do(t, r, http.MethodPost, "/questions/search", map[string]any{"searchTerm": "zebra"})
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, body["total_questions"])

	code, body = do(t, r, http.MethodPost, "/questions/search", map[string]any{"searchTerm": "who"})
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 4, body["total_questions"])

	code, body = do(t, r, http.MethodGet, "/categories/2/questions", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Art", body["current_category"])
	assert.EqualValues(t, 3, body["total_questions"])

	code, _ = do(t, r, http.MethodGet, "/categories/99/questions", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestQuizzes_SessionLifecycle(t *testing.T) {
	r := newRouter(t)
	play := map[string]any{
		"previous_questions": []int{},
		"quiz_category":      map[string]any{"id": 1, "type": "Science"},
		"session_id":         "abc",
	}

	for i := 0; i < 3; i++ {
		code, body := do(t, r, http.MethodPost, "/quizzes", play)
		require.Equal(t, http.StatusOK, code)
		assert.NotNil(t, body["question"])
		assert.Equal(t, false, body["exhausted"])
		assert.Equal(t, "abc", body["session_id"])
	}

	code, body := do(t, r, http.MethodPost, "/quizzes", play)
	assert.Equal(t, http.StatusOK, code)
	assert.Nil(t, body["question"])
	assert.Equal(t, true, body["exhausted"])
	assert.Equal(t, handler.ExhaustedMessage, body["message"])
	assert.Len(t, body["previous_questions"], 3)

	code, _ = do(t, r, http.MethodDelete, "/quizzes/abc", nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = do(t, r, http.MethodDelete, "/quizzes/abc", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestQuizzes_SessionFromHeader(t *testing.T) {
	r := newRouter(t)
	raw, err := json.Marshal(map[string]any{"quiz_category": map[string]any{"id": 1}})
	require.NoError(t, err)

	seen := map[float64]bool{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/quizzes", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(ctxutil.SessionHeader, "hdr-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "hdr-1", body["session_id"])
		q := body["question"].(map[string]any)
		id := q["id"].(float64)
		assert.False(t, seen[id], "question %v asked twice", id)
		seen[id] = true
	}

	code, _ := do(t, r, http.MethodDelete, "/quizzes/hdr-1", nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestQuizzes_UnknownCategory(t *testing.T) {
	r := newRouter(t)
	code, _ := do(t, r, http.MethodPost, "/quizzes", map[string]any{
		"quiz_category": map[string]any{"id": 77},
	})
	assert.Equal(t, http.StatusNotFound, code)
}

func jsonNumber(f float64) string {
	raw, _ := json.Marshal(int(f))
	return string(raw)
}
