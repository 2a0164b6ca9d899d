package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskService is the concrete implementation of TaskService on top of a
// TaskRepository.
//
// With enforceOwnership off any authenticated caller may read and modify any
// task. With it on, listings are scoped to the caller, foreign tasks look
// missing and creating a task for someone else is forbidden.
type taskService struct {
	taskRepository   store.TaskRepository
	enforceOwnership bool

	now func() time.Time

	logger *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, cfg config.App, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository:   taskRepository,
		enforceOwnership: cfg.EnforceTaskOwnership,
		now:              time.Now,
		logger:           logger,
	}
}

// CreateTask stores a new incomplete task for request.UserID.
func (s *taskService) CreateTask(ctx context.Context, request models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if request.UserID == nil || request.Title == "" {
		log.Error().Str("func", "taskService.CreateTask").Msg("title and userId are required")
		return models.Task{}, ErrInvalidDataProvided
	}

	if s.enforceOwnership {
		callerID, err := s.callerID(ctx)
		if err != nil {
			return models.Task{}, err
		}
		if callerID != *request.UserID {
			log.Warn().Str("func", "taskService.CreateTask").
				Int64("owner_id", *request.UserID).
				Msg("attempt to create a task for another user")
			return models.Task{}, ErrForeignTaskOwner
		}
	}

	now := s.now().UTC()
	task, err := s.taskRepository.CreateTask(ctx, models.Task{
		UserID:      *request.UserID,
		Title:       request.Title,
		Description: request.Description,
		Status:      models.StatusIncomplete,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		log.Err(err).Str("func", "taskService.CreateTask").Msg("task creation failed")
		return models.Task{}, mapTaskError(err)
	}

	return task, nil
}

// ListTasks returns tasks in insertion order, filtered by status when it is
// "completed" or "incomplete". Any other status lists every task. The result
// is never nil.
func (s *taskService) ListTasks(ctx context.Context, request models.ListTasksRequest) ([]models.Task, error) {
	var filter models.TaskFilter

	if status := models.TaskStatus(request.Status); status.IsValid() {
		filter.Status = &status
	}

	if s.enforceOwnership {
		callerID, err := s.callerID(ctx)
		if err != nil {
			return nil, err
		}
		filter.UserID = &callerID
	}

	tasks, err := s.taskRepository.ListTasks(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "taskService.ListTasks").Msg("task listing failed")
		return nil, mapTaskError(err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, id int64) (models.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, mapTaskError(err)
	}

	if err = s.checkOwner(ctx, task); err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// UpdateTask overwrites only the supplied fields and always refreshes
// updated_at.
func (s *taskService) UpdateTask(ctx context.Context, id int64, request models.UpdateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	update := models.TaskUpdate{
		ID:          id,
		Title:       request.Title,
		Description: request.Description,
	}
	if request.Status != nil {
		status := models.TaskStatus(*request.Status)
		if !status.IsValid() {
			return models.Task{}, ErrInvalidTaskStatus
		}
		update.Status = &status
	}
	if update.IsEmpty() {
		return models.Task{}, ErrNoUpdateFieldsProvided
	}
	if update.Title != nil && *update.Title == "" {
		return models.Task{}, ErrInvalidDataProvided
	}

	if s.enforceOwnership {
		if _, err := s.GetTask(ctx, id); err != nil {
			return models.Task{}, err
		}
	}

	update.UpdatedAt = s.now().UTC()
	task, err := s.taskRepository.UpdateTask(ctx, update)
	if err != nil {
		log.Err(err).Str("func", "taskService.UpdateTask").Int64("task_id", id).Msg("task update failed")
		return models.Task{}, mapTaskError(err)
	}

	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, id int64) (models.Task, error) {
	if s.enforceOwnership {
		if _, err := s.GetTask(ctx, id); err != nil {
			return models.Task{}, err
		}
	}

	task, err := s.taskRepository.DeleteTask(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "taskService.DeleteTask").Int64("task_id", id).Msg("task deletion failed")
		return models.Task{}, mapTaskError(err)
	}

	return task, nil
}

// checkOwner hides tasks of other users when ownership is enforced.
func (s *taskService) checkOwner(ctx context.Context, task models.Task) error {
	if !s.enforceOwnership {
		return nil
	}

	callerID, err := s.callerID(ctx)
	if err != nil {
		return err
	}
	if task.UserID != callerID {
		return fmt.Errorf("%w: owned by another user", ErrTaskNotFound)
	}

	return nil
}

func (s *taskService) callerID(ctx context.Context) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		logger.FromContext(ctx).Error().Str("func", "taskService.callerID").Msg("no authenticated user in context")
		return 0, ErrTokenIsExpiredOrInvalid
	}

	return userID, nil
}

// mapTaskError translates repository errors into service errors.
// Unknown errors are passed through wrapped and end up as 500.
func mapTaskError(err error) error {
	switch {
	case errors.Is(err, store.ErrTaskNotFound):
		return fmt.Errorf("%w: %w", ErrTaskNotFound, err)
	case errors.Is(err, store.ErrUnknownTaskOwner):
		return fmt.Errorf("%w: %w", ErrUnknownTaskOwner, err)
	case errors.Is(err, store.ErrInvalidTaskData):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	case errors.Is(err, store.ErrNothingToUpdate):
		return fmt.Errorf("%w: %w", ErrNoUpdateFieldsProvided, err)
	default:
		return fmt.Errorf("task storage failure: %w", err)
	}
}
