package models

// UserResponse wraps the user returned by registration.
type UserResponse struct {
	User User `json:"user"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// DeleteTaskResponse confirms a deletion and echoes the removed row.
type DeleteTaskResponse struct {
	Message string `json:"message"`
	Task    Task   `json:"task"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// FieldViolation describes one failed validation rule on a request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx API response.
// Errors is only populated for validation failures.
type ErrorResponse struct {
	Error  string           `json:"error"`
	Errors []FieldViolation `json:"errors,omitempty"`
}
