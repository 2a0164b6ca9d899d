package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the SQL implementation of [TaskRepository] over the
// "tasks" table. Mutations use RETURNING so that each one is a single
// statement that also yields the affected row.
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTask inserts task and returns the stored row.
//
// A user_id that references no user yields [ErrUnknownTaskOwner]; a status
// rejected by the CHECK constraint yields [ErrInvalidTaskData].
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateTaskQuery(r.builder, task)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.CreateTask").Msg("failed to build query")
		return models.Task{}, err
	}

	created, err := scanTask(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.CreateTask").
			Int64("owner_id", task.UserID).
			Msg("failed to insert task")
		return models.Task{}, r.classify(err)
	}

	return created, nil
}

// ListTasks returns the tasks matching filter ordered by id. The result is
// never nil.
func (r *taskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTasksQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.ListTasks").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.ListTasks").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "taskRepository.ListTasks").Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "taskRepository.ListTasks").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// GetTask returns the task with id or [ErrTaskNotFound].
func (r *taskRepository) GetTask(ctx context.Context, id int64) (models.Task, error) {
	query, args, err := buildGetTaskQuery(r.builder, id)
	if err != nil {
		return models.Task{}, err
	}

	return r.queryTask(ctx, "taskRepository.GetTask", id, query, args)
}

// UpdateTask overwrites the supplied fields of the task and refreshes
// updated_at. Returns the row after the update or [ErrTaskNotFound].
func (r *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	query, args, err := buildUpdateTaskQuery(r.builder, update)
	if err != nil {
		return models.Task{}, err
	}

	return r.queryTask(ctx, "taskRepository.UpdateTask", update.ID, query, args)
}

// DeleteTask removes the task and returns the deleted row, or
// [ErrTaskNotFound] when nothing was deleted.
func (r *taskRepository) DeleteTask(ctx context.Context, id int64) (models.Task, error) {
	query, args, err := buildDeleteTaskQuery(r.builder, id)
	if err != nil {
		return models.Task{}, err
	}

	return r.queryTask(ctx, "taskRepository.DeleteTask", id, query, args)
}

// queryTask runs a statement yielding at most one task row.
func (r *taskRepository) queryTask(ctx context.Context, funcName string, id int64, query string, args []any) (models.Task, error) {
	log := logger.FromContext(ctx)

	task, err := scanTask(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		log.Debug().Str("func", funcName).Int64("task_id", id).Msg("task not found")
		return models.Task{}, ErrTaskNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Int64("task_id", id).Msg("failed to execute query")
		return models.Task{}, r.classify(err)
	}

	return task, nil
}

// classify turns a constraint violation into a store sentinel and wraps
// anything else as [ErrExecutingQuery].
func (r *taskRepository) classify(err error) error {
	switch r.errorClassificator.Classify(err) {
	case ForeignKeyViolation:
		return ErrUnknownTaskOwner
	case CheckViolation, NotNullViolation, ValueTooLong:
		return fmt.Errorf("%w: %w", ErrInvalidTaskData, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
