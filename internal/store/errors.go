package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT into users violates
	// the unique username or email constraint.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound is returned when a lookup by email or username matches
	// no row.
	ErrUserNotFound = errors.New("user was not found")

	// ErrTaskNotFound is returned when a task lookup, update or delete
	// targets an id that does not exist.
	ErrTaskNotFound = errors.New("task was not found")

	// ErrUnknownTaskOwner is returned when a task references a user id that
	// does not exist (foreign key violation).
	ErrUnknownTaskOwner = errors.New("task owner does not exist")

	// ErrInvalidTaskData is returned when a task row violates a CHECK or
	// NOT NULL constraint.
	ErrInvalidTaskData = errors.New("task violates a table constraint")

	// ErrNothingToUpdate is returned when an update carries no field to set.
	ErrNothingToUpdate = errors.New("no fields to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewStorages] for a driver name it
	// cannot open.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
