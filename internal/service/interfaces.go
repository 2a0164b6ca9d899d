package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService implements the task resource. The caller's identity, when
// needed, is read from the context (see utils.GetUserIDFromContext).
type TaskService interface {
	CreateTask(ctx context.Context, request models.CreateTaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, request models.ListTasksRequest) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	UpdateTask(ctx context.Context, id int64, request models.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, id int64) (models.Task, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// TaskServiceWrapper defines middleware composition for TaskService.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService
}
