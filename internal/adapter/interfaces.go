// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-task-keeper HTTP API.
//
// [TaskAPI] hides the REST transport from the taskctl command line tool.
// Non-2xx responses are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskAPI is a typed client of the go-task-keeper REST API.
type TaskAPI interface {
	// SetToken stores the bearer token attached to every task request.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Version calls GET /api/version.
	Version(ctx context.Context) (string, error)

	// Register calls POST /api/users/register and returns the created user.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login calls POST /api/users/login. On success the returned token is
	// also stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// CreateTask calls POST /api/tasks.
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)

	// ListTasks calls GET /api/tasks, passing req.Status as the status
	// query parameter when set.
	ListTasks(ctx context.Context, req models.ListTasksRequest) ([]models.Task, error)

	// GetTask calls GET /api/tasks/{id}.
	GetTask(ctx context.Context, id int64) (models.Task, error)

	// UpdateTask calls PATCH /api/tasks/{id}.
	UpdateTask(ctx context.Context, id int64, req models.UpdateTaskRequest) (models.Task, error)

	// DeleteTask calls DELETE /api/tasks/{id} and returns the removed task.
	DeleteTask(ctx context.Context, id int64) (models.Task, error)
}
