package http

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; a nil field panics,
// which flags an unexpected call.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockTaskService implements service.TaskService for unit tests.
type mockTaskService struct {
	createTaskFn func(ctx context.Context, request models.CreateTaskRequest) (models.Task, error)
	listTasksFn  func(ctx context.Context, request models.ListTasksRequest) ([]models.Task, error)
	getTaskFn    func(ctx context.Context, id int64) (models.Task, error)
	updateTaskFn func(ctx context.Context, id int64, request models.UpdateTaskRequest) (models.Task, error)
	deleteTaskFn func(ctx context.Context, id int64) (models.Task, error)
}

func (m *mockTaskService) CreateTask(ctx context.Context, request models.CreateTaskRequest) (models.Task, error) {
	return m.createTaskFn(ctx, request)
}

func (m *mockTaskService) ListTasks(ctx context.Context, request models.ListTasksRequest) ([]models.Task, error) {
	return m.listTasksFn(ctx, request)
}

func (m *mockTaskService) GetTask(ctx context.Context, id int64) (models.Task, error) {
	return m.getTaskFn(ctx, id)
}

func (m *mockTaskService) UpdateTask(ctx context.Context, id int64, request models.UpdateTaskRequest) (models.Task, error) {
	return m.updateTaskFn(ctx, id, request)
}

func (m *mockTaskService) DeleteTask(ctx context.Context, id int64) (models.Task, error) {
	return m.deleteTaskFn(ctx, id)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// acceptingAuth accepts every token and authenticates it as userID.
func acceptingAuth(userID int64) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			return models.Token{SignedString: tokenString, UserID: userID}, nil
		},
	}
}
