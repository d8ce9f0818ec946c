package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeflow/forgeflow/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSecurityHeaders(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil)
	rec := perform(t, s.Router(), http.MethodGet, "/version", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Body.String(), "forgeflow")
}

func TestHealthWithoutPool(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil)
	rec := perform(t, s.Router(), http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "disabled")
}

func TestCreateTaskRejectsMalformedJSON(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil)
	rec := perform(t, s.Router(), http.MethodPost, "/api/v1/tasks", "{not json", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListTasksRejectsBadPagination(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil)

	rec := perform(t, s.Router(), http.MethodGet, "/api/v1/tasks?limit=zero", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = perform(t, s.Router(), http.MethodGet, "/api/v1/tasks?offset=-1", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = perform(t, s.Router(), http.MethodGet, "/api/v1/tasks?created_after=yesterday", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebhookUnconfigured(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil)
	rec := perform(t, s.Router(), http.MethodPost, "/webhooks/github", `{"action":"labeled"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMemoryQueryUnconfigured(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil)
	rec := perform(t, s.Router(), http.MethodPost, "/api/v1/memory/query", `{"kind":"config"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestModelAdminUnconfigured(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil)

	rec := perform(t, s.Router(), http.MethodGet, "/api/v1/models", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = perform(t, s.Router(), http.MethodPut, "/api/v1/models/plan", `{"provider":"anthropic","model":"x"}`, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := NewServer(nil, nil, nil, nil, nil, nil)
	rec := perform(t, s.Router(), http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestServiceErrorMapping(t *testing.T) {
	r := gin.New()
	r.GET("/validation", func(c *gin.Context) {
		abortWithServiceError(c, services.NewValidationError("repo", "required"))
	})
	r.GET("/notfound", func(c *gin.Context) {
		abortWithServiceError(c, services.ErrNotFound)
	})
	r.GET("/conflict", func(c *gin.Context) {
		abortWithServiceError(c, services.ErrAlreadyExists)
	})
	r.GET("/internal", func(c *gin.Context) {
		abortWithServiceError(c, assert.AnError)
	})

	assert.Equal(t, http.StatusBadRequest, perform(t, r, http.MethodGet, "/validation", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, perform(t, r, http.MethodGet, "/notfound", "", nil).Code)
	assert.Equal(t, http.StatusConflict, perform(t, r, http.MethodGet, "/conflict", "", nil).Code)
	assert.Equal(t, http.StatusInternalServerError, perform(t, r, http.MethodGet, "/internal", "", nil).Code)
}

func TestExtractAuthor(t *testing.T) {
	r := gin.New()
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, extractAuthor(c))
	})

	rec := perform(t, r, http.MethodGet, "/whoami", "", map[string]string{"X-Forwarded-User": "alice"})
	assert.Equal(t, "alice", rec.Body.String())

	rec = perform(t, r, http.MethodGet, "/whoami", "", map[string]string{"X-Forwarded-Email": "bob@example.com"})
	assert.Equal(t, "bob@example.com", rec.Body.String())

	rec = perform(t, r, http.MethodGet, "/whoami", "", nil)
	assert.Equal(t, "api-client", rec.Body.String())
}
