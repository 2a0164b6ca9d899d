package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpTaskAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPTaskAdapter constructs the REST implementation of [TaskAPI].
// The base URL is taken from cfg.ServerURL and cfg.Token, if any, is
// preloaded as the bearer token.
func NewHTTPTaskAdapter(cfg config.ClientConfig, logger *logger.Logger) (TaskAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	a := &httpTaskAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpTaskAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpTaskAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpTaskAdapter) Version(ctx context.Context) (string, error) {
	var out models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.Version, nil
}

func (h *httpTaskAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var out models.UserResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/users/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return out.User, nil
}

func (h *httpTaskAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var out models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/api/users/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", fmt.Errorf("login response carries no token")
	}

	h.SetToken(out.Token)
	h.logger.Debug().Str("func", "httpTaskAdapter.Login").Msg("bearer token stored")
	return out.Token, nil
}

func (h *httpTaskAdapter) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	var task models.Task

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}

	resp, err := r.SetBody(req).SetResult(&task).Post("/api/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (h *httpTaskAdapter) ListTasks(ctx context.Context, req models.ListTasksRequest) ([]models.Task, error) {
	tasks := []models.Task{}

	r, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}
	if req.Status != "" {
		r.SetQueryParam("status", req.Status)
	}

	resp, err := r.SetResult(&tasks).Get("/api/tasks")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (h *httpTaskAdapter) GetTask(ctx context.Context, id int64) (models.Task, error) {
	var task models.Task

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}

	resp, err := r.SetResult(&task).Get(taskPath(id))
	if err != nil {
		return models.Task{}, fmt.Errorf("get task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (h *httpTaskAdapter) UpdateTask(ctx context.Context, id int64, req models.UpdateTaskRequest) (models.Task, error) {
	var task models.Task

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}

	resp, err := r.SetBody(req).SetResult(&task).Patch(taskPath(id))
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (h *httpTaskAdapter) DeleteTask(ctx context.Context, id int64) (models.Task, error) {
	var out models.DeleteTaskResponse

	r, err := h.authedRequest(ctx)
	if err != nil {
		return models.Task{}, err
	}

	resp, err := r.SetResult(&out).Delete(taskPath(id))
	if err != nil {
		return models.Task{}, fmt.Errorf("delete task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	return out.Task, nil
}

func (h *httpTaskAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func taskPath(id int64) string {
	return "/api/tasks/" + strconv.FormatInt(id, 10)
}
