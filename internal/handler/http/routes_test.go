package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds the router with services that reject every token, so
// protected routes answer 401.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AuthService:    &mockAuthService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}, logger.Nop()).Init()
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

// ─────────────────────────────────────────────
// Init route registration
// ─────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/users/register"},
		{http.MethodPost, "/api/users/login"},
		{http.MethodPost, "/api/tasks"},
		{http.MethodGet, "/api/tasks"},
		{http.MethodGet, "/api/tasks/1"},
		{http.MethodPatch, "/api/tasks/1"},
		{http.MethodDelete, "/api/tasks/1"},
		{http.MethodGet, "/api/version"},
		{http.MethodGet, "/metrics"},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(router, tc.method, tc.path)

			// Protected routes answer 401, which still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_TaskRoutesRequireToken(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/api/tasks")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"empty `+"`Authorization`"+` header"}`, rec.Body.String())
}

func TestInit_UnknownRouteReturns404JSON(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/api/nonexistent")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Route /api/nonexistent not found"}`, rec.Body.String())
}

func TestInit_MethodNotAllowed(t *testing.T) {
	tests := []struct {
		method    string
		path      string
		wantAllow string
	}{
		{http.MethodPost, "/api/tasks/5", "DELETE, GET, PATCH"},
		{http.MethodPut, "/api/tasks/5", "DELETE, GET, PATCH"},
		{http.MethodDelete, "/api/tasks", "GET, POST"},
		{http.MethodGet, "/api/users/login", "POST"},
		{http.MethodPost, "/api/version", "GET"},
	}

	router := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(router, tt.method, tt.path)

			require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Allow"))
			assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
		})
	}
}

func TestInit_RecoversFromPanics(t *testing.T) {
	router := NewHandler(&service.Services{
		AuthService: &mockAuthService{}, // nil registerUserFn panics
	}, logger.Nop()).Init()

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() { router.ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestInit_EchoesTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	newTestRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
}
