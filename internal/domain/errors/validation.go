package errors

import (
	"net/http"
	"strings"
)

// Issue is a single failed rule on one input field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every issue found in one input. It is the failure
// half of validation; a nil *ValidationError means the input passed.
type ValidationError struct {
	Issues []Issue
}

// NewValidationError builds a ValidationError from issues.
func NewValidationError(issues ...Issue) *ValidationError {
	return &ValidationError{Issues: issues}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msgs = append(msgs, issue.Field+": "+issue.Message)
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends an issue.
func (e *ValidationError) Add(field, message string) {
	e.Issues = append(e.Issues, Issue{Field: field, Message: message})
}

// HasIssues reports whether any rule failed.
func (e *ValidationError) HasIssues() bool {
	return e != nil && len(e.Issues) > 0
}

// OrNil returns e as an error when it has issues, and a nil error otherwise.
func (e *ValidationError) OrNil() error {
	if !e.HasIssues() {
		return nil
	}

	return e
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	if len(e.Issues) == 1 {
		return e.Issues[0].Message
	}

	return "Input validation failed"
}

// Details returns detailed error information
func (e *ValidationError) Details() string {
	return e.Error()
}
