package domain

import (
	"fmt"
	"time"
)

// EngineError represents a standardized error raised at the analysis boundary
type EngineError struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id,omitempty"`
	Cause     error     `json:"-"`
}

// Error implements the error interface
func (e *EngineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *EngineError) Unwrap() error {
	return e.Cause
}

// Error codes for different failure scenarios
const (
	ErrInvalidInput   = "INVALID_INPUT"
	ErrParse          = "PARSE_ERROR"
	ErrValidation     = "VALIDATION_ERROR"
	ErrConfiguration  = "CONFIGURATION_ERROR"
	ErrCancelled      = "CANCELLED"
	ErrInternalEngine = "INTERNAL_ERROR"
)

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// NewEngineError creates a new EngineError with timestamp
func NewEngineError(code, message, details, runID string) *EngineError {
	return &EngineError{
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
		RunID:     runID,
	}
}

// WrapEngineError creates an EngineError carrying cause
func WrapEngineError(code, message, runID string, cause error) *EngineError {
	e := NewEngineError(code, message, "", runID)
	if cause != nil {
		e.Details = cause.Error()
		e.Cause = cause
	}
	return e
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Value:   value,
	}
}
