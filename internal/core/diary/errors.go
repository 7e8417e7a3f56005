package diary

import (
	"fmt"

	"github.com/journalkeep/diary-server/internal/model"
)

// ValidationError represents a rejected create-entry request. It wraps
// model.ErrInvalidRequest so handlers can map it to a client error with
// errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error { return model.ErrInvalidRequest }

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}
