package service

import "errors"

// Validation errors. The HTTP layer answers them with 400 Bad Request.
var (
	ErrInvalidDataProvided    = errors.New("invalid data provided")
	ErrNoUpdateFieldsProvided = errors.New("no update fields provided")
	ErrInvalidTaskStatus      = errors.New("status must be either 'completed' or 'incomplete'")
	ErrUnknownTaskOwner       = errors.New("user referenced by userId does not exist")
)

// Authentication errors (401).
var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

// Conflict errors. Registration reports them as 400 like the other
// client-side mistakes.
var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrUserAlreadyExists     = errors.New("user already exists")
)

var (
	ErrForeignTaskOwner = errors.New("task belongs to another user")
	ErrTaskNotFound     = errors.New("task was not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
