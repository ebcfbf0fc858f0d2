package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"miniforum/internal/router"
	"miniforum/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer() (*gin.Engine, *store.Memory) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	s := store.NewMemory()
	router.RegisterRoutes(r, s)
	return r, s
}

// do runs one request against the engine and decodes the JSON response.
func do(t *testing.T, r http.Handler, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc), "response body: %s", w.Body.String())
	return w.Code, doc
}

func entity(t *testing.T, doc map[string]any, key string) map[string]any {
	t.Helper()
	inner, ok := doc[key].(map[string]any)
	require.True(t, ok, "expected %q wrapper in %v", key, doc)
	return inner
}

func TestPing(t *testing.T) {
	r, _ := newServer()
	code, doc := do(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Hello world!", doc["message"])
}
