package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskValidationService rejects malformed task requests before the wrapped
// TaskService (and so the repository) is called.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService(validator validators.Validator) TaskServiceWrapper {
	return &TaskValidationService{validator: validator}
}

func (v *TaskValidationService) CreateTask(ctx context.Context, request models.CreateTaskRequest) (models.Task, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateTask(ctx, request)
}

func (v *TaskValidationService) ListTasks(ctx context.Context, request models.ListTasksRequest) ([]models.Task, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListTasks(ctx, request)
}

func (v *TaskValidationService) GetTask(ctx context.Context, id int64) (models.Task, error) {
	return v.inner.GetTask(ctx, id)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, id int64, request models.UpdateTaskRequest) (models.Task, error) {
	if request.Title == nil && request.Description == nil && request.Status == nil {
		return models.Task{}, ErrNoUpdateFieldsProvided
	}

	if err := v.validator.Validate(ctx, request); err != nil {
		if request.Status != nil && !models.TaskStatus(*request.Status).IsValid() {
			return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidTaskStatus, err)
		}
		return models.Task{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateTask(ctx, id, request)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, id int64) (models.Task, error) {
	return v.inner.DeleteTask(ctx, id)
}

func (v *TaskValidationService) Wrap(inner TaskService) TaskService {
	v.inner = inner
	return v
}
