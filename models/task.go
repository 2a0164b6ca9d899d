package models

import "time"

// TaskStatus is the completion state of a task.
type TaskStatus string

const (
	// StatusIncomplete is the state every task is created in.
	StatusIncomplete TaskStatus = "incomplete"
	// StatusCompleted marks a finished task.
	StatusCompleted TaskStatus = "completed"
)

// IsValid reports whether s is one of the recognized statuses.
func (s TaskStatus) IsValid() bool {
	return s == StatusIncomplete || s == StatusCompleted
}

// Task is a unit of work owned by a user.
type Task struct {
	// ID is the unique identifier assigned by the store on insert.
	ID int64 `json:"id"`

	// UserID references the owning [User].
	UserID int64 `json:"user_id"`

	// Title is the required short name of the task.
	Title string `json:"title"`

	// Description is optional free text; nil is stored as NULL.
	Description *string `json:"description"`

	// Status is either [StatusIncomplete] or [StatusCompleted].
	Status TaskStatus `json:"status"`

	// CreatedAt is the moment the task was inserted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskFilter narrows the result of a task listing.
// Nil fields do not take part in filtering.
type TaskFilter struct {
	// Status keeps only tasks in the given state.
	Status *TaskStatus

	// UserID keeps only tasks owned by the given user.
	UserID *int64
}

// TaskUpdate describes a partial (coalesce) update of a single task.
// Only non-nil fields are written; UpdatedAt is always refreshed.
type TaskUpdate struct {
	// ID is the identifier of the task to update. Required.
	ID int64

	// Title replaces the title when non-nil.
	Title *string

	// Description replaces the description when non-nil.
	Description *string

	// Status replaces the status when non-nil.
	Status *TaskStatus

	// UpdatedAt is the timestamp written to updated_at.
	UpdatedAt time.Time
}

// IsEmpty reports whether the update carries no field to change.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}
