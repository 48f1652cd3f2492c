package crm

import (
	"errors"
	"fmt"

	"github.com/highshiftmedia/crmhub/internal/validation"
)

// ErrNotFound indicates the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// ValidationFailedError carries the field errors that caused a creation
// workflow to refuse its input. The store is untouched when this is
// returned.
type ValidationFailedError struct {
	Fields []validation.ValidationError
}

func (e *ValidationFailedError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s %s", e.Fields[0].Field, e.Fields[0].Message)
}

// invalid wraps collected field errors into a ValidationFailedError.
func invalid(c *validation.Collector) error {
	return &ValidationFailedError{Fields: c.Errors()}
}
