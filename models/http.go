package models

// CreateTaskRequest is the body of POST /api/tasks.
type CreateTaskRequest struct {
	// UserID is the owner of the new task. Required.
	UserID *int64 `json:"userId" validate:"required"`

	// Title is required and must be non-empty.
	Title string `json:"title" validate:"required"`

	// Description is optional.
	Description *string `json:"description,omitempty"`
}

// UpdateTaskRequest is the body of PATCH /api/tasks/{id}.
// Absent fields are left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=completed incomplete"`
}

// ListTasksRequest carries the query parameters of GET /api/tasks.
type ListTasksRequest struct {
	// Status is the raw value of the "status" query parameter. Anything but
	// "completed" or "incomplete" means no filter.
	Status string `json:"status"`
}
