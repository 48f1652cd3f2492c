package validation

import (
	"fmt"
	"strings"
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Collector accumulates validation errors without failing on first.
type Collector struct {
	errors []ValidationError
}

// Add appends a validation error to the collector if non-nil.
func (c *Collector) Add(err *ValidationError) {
	if err != nil {
		c.errors = append(c.errors, *err)
	}
}

// HasErrors returns true if the collector has accumulated any errors.
func (c *Collector) HasErrors() bool {
	return len(c.errors) > 0
}

// Errors returns all accumulated validation errors.
func (c *Collector) Errors() []ValidationError {
	return c.errors
}

// ValidateRequired returns an error if the value is empty or whitespace-only.
func ValidateRequired(field, value string) *ValidationError {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   field,
			Message: "is required",
		}
	}
	return nil
}

// ValidateEnum returns an error if the value is not in the allowed list.
// Empty values pass; pair with ValidateRequired when the field is mandatory.
func ValidateEnum(field, value string, allowed []string) *ValidationError {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	}
}

// ValidateNonNegative returns an error if the value is below zero.
func ValidateNonNegative(field string, value float64) *ValidationError {
	if value < 0 {
		return &ValidationError{
			Field:   field,
			Message: "must not be negative",
		}
	}
	return nil
}

// ValidatePositive returns an error if the value is zero or below.
func ValidatePositive(field string, value float64) *ValidationError {
	if value <= 0 {
		return &ValidationError{
			Field:   field,
			Message: "must be greater than zero",
		}
	}
	return nil
}

// ValidateRange returns an error if the value is outside [min, max].
func ValidateRange(field string, value, min, max float64) *ValidationError {
	if value < min || value > max {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %g and %g", min, max),
		}
	}
	return nil
}
