package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// ValidationError is returned by [Validator.Validate] when one or more rules
// fail. Violations keeps the order in which fields are declared.
type ValidationError struct {
	Violations []models.FieldViolation
}

func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}
