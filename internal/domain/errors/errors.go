// Package errors defines the application error kinds returned by usecases and
// rendered by the HTTP delivery.
package errors

import (
	"net/http"

	"courseadmin/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so errors.Is works
// against the predefined values after WithDetails or WithMessage copies them.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message, keeping code and status.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// Generic kinds
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// Banner
	ErrBannerNotFound = NewBaseError(
		http.StatusNotFound,
		"BANNER_NOT_FOUND",
		"Banner not found",
		"",
	)

	ErrBannerPriorityTaken = NewBaseError(
		http.StatusConflict,
		"BANNER_PRIORITY_TAKEN",
		"Another active banner already uses this priority",
		"",
	)

	// Coupon
	ErrCouponNotFound = NewBaseError(
		http.StatusNotFound,
		"COUPON_NOT_FOUND",
		"Coupon not found",
		"",
	)

	ErrCouponCodeTaken = NewBaseError(
		http.StatusConflict,
		"COUPON_CODE_TAKEN",
		"Coupon code already exists",
		"",
	)

	// Plan
	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"Subscription plan not found",
		"",
	)

	// Section
	ErrSectionNotFound = NewBaseError(
		http.StatusNotFound,
		"SECTION_NOT_FOUND",
		"Section not found",
		"",
	)

	ErrSectionNameTaken = NewBaseError(
		http.StatusConflict,
		"SECTION_NAME_TAKEN",
		"Section with this name already exists",
		"",
	)

	// Teacher
	ErrTeacherNotFound = NewBaseError(
		http.StatusNotFound,
		"TEACHER_NOT_FOUND",
		"Teacher not found",
		"",
	)

	ErrTeacherNameTaken = NewBaseError(
		http.StatusConflict,
		"TEACHER_NAME_TAKEN",
		"Teacher with this name already exists",
		"",
	)

	// Rank score
	ErrRankScoreNotFound = NewBaseError(
		http.StatusNotFound,
		"RANK_SCORE_NOT_FOUND",
		"Rank score not found",
		"",
	)

	// SEO URL
	ErrSEOURLNotFound = NewBaseError(
		http.StatusNotFound,
		"SEO_URL_NOT_FOUND",
		"SEO URL not found",
		"",
	)

	ErrSEOURLTaken = NewBaseError(
		http.StatusConflict,
		"SEO_URL_TAKEN",
		"SEO entry for this URL already exists",
		"",
	)

	// Admin / authentication
	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Admin not found",
		"",
	)

	ErrAdminEmailTaken = NewBaseError(
		http.StatusConflict,
		"ADMIN_EMAIL_TAKEN",
		"An admin with this email already exists",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	// Assets
	ErrAssetUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"ASSET_UPLOAD_FAILED",
		"Failed to store uploaded file",
		"",
	)

	ErrUnsupportedImage = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_IMAGE",
		"Uploaded file is not a supported image",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	if e.details == "" {
		return e.err.Error()
	}

	return e.details + ": " + e.err.Error()
}
