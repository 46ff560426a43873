package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airward/airward/internal/api/middleware"
	"github.com/airward/airward/internal/api/models"
	"github.com/airward/airward/internal/api/response"
)

// requestWithContext runs a request through the RequestID middleware so the
// context carries a request ID, the way handlers see it in production.
func requestWithContext(t *testing.T, method, path string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, path, http.NoBody)
	rec := httptest.NewRecorder()

	var processedReq *http.Request
	handler := middleware.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		processedReq = r
	}))
	handler.ServeHTTP(rec, req)

	return processedReq, httptest.NewRecorder()
}

func TestJSON_IncludesRequestID(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodGet, "/v1/pollution")

	response.JSON(rec, req, http.StatusOK, map[string]string{"message": "hello"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestJSON_NilBody(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodGet, "/v1/pollution")

	response.JSON(rec, req, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}

func TestNotFound_ProblemBody(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodGet, "/v1/pollution/wards/9999")

	response.NotFound(rec, req, "ward 9999 is not in the registry")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var problem models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, models.ProblemTypeNotFound, problem.Type)
	assert.Equal(t, "/v1/pollution/wards/9999", problem.Instance)
	assert.NotEmpty(t, problem.TraceID)
}

func TestServiceUnavailable_ProblemBody(t *testing.T) {
	req, rec := requestWithContext(t, http.MethodPost, "/v1/ops/refresh")

	response.ServiceUnavailable(rec, req, "scheduler is stopped")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var problem models.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "scheduler is stopped", problem.Detail)
}
