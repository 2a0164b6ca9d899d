package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// apiClient talks to a server backed by the real services and a migrated
// SQLite file.
type apiClient struct {
	t     *testing.T
	url   string
	token string
}

func newSQLiteAPI(t *testing.T) *apiClient {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.DB{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "api.db"),
	}, logger.Nop())
	if err != nil {
		t.Skipf("sqlite3 unavailable: %v", err)
	}
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, config.StructuredConfig{
		App:  config.App{PasswordHashCost: bcrypt.MinCost, Version: "test"},
		Auth: config.Auth{Secret: "api-secret", Issuer: "api-test", Duration: time.Hour},
	}, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(services, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	return &apiClient{t: t, url: srv.URL}
}

// do sends body as JSON and decodes a JSON response into out when out is
// not nil. It returns the status code and the raw body.
func (c *apiClient) do(method, path string, body, out any) (int, string) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.url+path, reader)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	if out != nil && resp.StatusCode < http.StatusBadRequest {
		require.NoError(c.t, json.Unmarshal(raw, out), string(raw))
	}

	return resp.StatusCode, string(raw)
}

func (c *apiClient) registerAndLogin(username string) int64 {
	c.t.Helper()
	email := username + "@example.com"

	var registered models.UserResponse
	code, body := c.do(http.MethodPost, "/api/users/register",
		models.RegisterRequest{Username: username, Email: email, Password: "secret1"}, &registered)
	require.Equal(c.t, http.StatusCreated, code, body)

	var login models.TokenResponse
	code, body = c.do(http.MethodPost, "/api/users/login",
		models.LoginRequest{Email: email, Password: "secret1"}, &login)
	require.Equal(c.t, http.StatusOK, code, body)
	c.token = login.Token

	return registered.User.UserID
}

func TestAPI_TaskLifecycleOverSQLite(t *testing.T) {
	api := newSQLiteAPI(t)
	userID := api.registerAndLogin("alice")

	var first, second models.Task
	code, body := api.do(http.MethodPost, "/api/tasks", models.CreateTaskRequest{UserID: &userID, Title: "first"}, &first)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, models.StatusIncomplete, first.Status)
	code, body = api.do(http.MethodPost, "/api/tasks", models.CreateTaskRequest{UserID: &userID, Title: "second"}, &second)
	require.Equal(t, http.StatusCreated, code, body)

	completed := "completed"
	var updated models.Task
	code, body = api.do(http.MethodPatch, fmt.Sprintf("/api/tasks/%d", first.ID), models.UpdateTaskRequest{Status: &completed}, &updated)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "first", updated.Title)
	assert.Equal(t, models.StatusCompleted, updated.Status)

	var done []models.Task
	code, _ = api.do(http.MethodGet, "/api/tasks?status=completed", nil, &done)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, done, 1)
	assert.Equal(t, first.ID, done[0].ID)

	// an unrecognised status is no filter at all
	var all []models.Task
	code, _ = api.do(http.MethodGet, "/api/tasks?status=archived", nil, &all)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, all, 2)

	var deleted models.DeleteTaskResponse
	code, body = api.do(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", second.ID), nil, &deleted)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "second", deleted.Task.Title)

	code, body = api.do(http.MethodGet, fmt.Sprintf("/api/tasks/%d", second.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, fmt.Sprintf(`{"error":"A task with the id of %d was not found"}`, second.ID), body)

	code, _ = api.do(http.MethodDelete, fmt.Sprintf("/api/tasks/%d", second.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAPI_RegistrationAndLoginOverSQLite(t *testing.T) {
	api := newSQLiteAPI(t)
	api.registerAndLogin("bob")

	code, body := api.do(http.MethodPost, "/api/users/register",
		models.RegisterRequest{Username: "bob2", Email: "bob@example.com", Password: "secret1"}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, "email already exists")

	code, body = api.do(http.MethodPost, "/api/users/register",
		models.RegisterRequest{Username: "carol", Email: "carol@example.com", Password: strings.Repeat("é", 40)}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body, `"field":"password"`)

	_, wrongPassword := api.do(http.MethodPost, "/api/users/login", models.LoginRequest{Email: "bob@example.com", Password: "nope"}, nil)
	code, unknownEmail := api.do(http.MethodPost, "/api/users/login", models.LoginRequest{Email: "ghost@example.com", Password: "secret1"}, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, wrongPassword, unknownEmail)

	longTitle := strings.Repeat("t", 300)
	userID := int64(1)
	var task models.Task
	code, body = api.do(http.MethodPost, "/api/tasks", models.CreateTaskRequest{UserID: &userID, Title: longTitle}, &task)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, longTitle, task.Title)

	api.token = ""
	code, _ = api.do(http.MethodGet, "/api/tasks", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
