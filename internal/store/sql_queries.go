package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	userColumns = []string{"id", "username", "email", "password_hash", "created_at"}
	taskColumns = []string{"id", "user_id", "title", "description", "status", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(user.TableName()).
		Columns("username", "email", "password_hash", "created_at").
		Values(user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserQuery selects the user whose column equals value.
func buildFindUserQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildCreateTaskQuery(b sq.StatementBuilderType, task models.Task) (string, []any, error) {
	query, args, err := b.
		Insert(task.TableName()).
		Columns("user_id", "title", "description", "status", "created_at", "updated_at").
		Values(task.UserID, task.Title, task.Description, string(task.Status), task.CreatedAt, task.UpdatedAt).
		Suffix(returning(taskColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListTasksQuery selects tasks matching filter in insertion order.
func buildListTasksQuery(b sq.StatementBuilderType, filter models.TaskFilter) (string, []any, error) {
	where := sq.Eq{}
	if filter.Status != nil {
		where["status"] = string(*filter.Status)
	}
	if filter.UserID != nil {
		where["user_id"] = *filter.UserID
	}

	builder := b.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		OrderBy("id ASC")
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetTaskQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateTaskQuery writes only the supplied fields plus updated_at.
// An update without fields yields [ErrNothingToUpdate].
func buildUpdateTaskQuery(b sq.StatementBuilderType, update models.TaskUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := b.Update(models.Task{}.TableName())
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Status != nil {
		builder = builder.Set("status", string(*update.Status))
	}

	query, args, err := builder.
		Set("updated_at", update.UpdatedAt).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returning(taskColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteTaskQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Delete(models.Task{}.TableName()).
		Where(sq.Eq{"id": id}).
		Suffix(returning(taskColumns)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
