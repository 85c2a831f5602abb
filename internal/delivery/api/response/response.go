// Package response renders every API reply in one envelope:
// {state, message, data, errors, meta{request_id}}.
package response

import (
	"net/http"

	deliverycontext "courseadmin/internal/delivery/context"
	domainerrors "courseadmin/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every JSON response
type Envelope struct {
	State   int                  `json:"state"`
	Message string               `json:"message"`
	Data    any                  `json:"data"`
	Errors  []domainerrors.Issue `json:"errors,omitempty"`
	Meta    *MetaInfo            `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Envelope{
		State:   statusCode,
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// OK returns a 200 response
func OK(c echo.Context, data any, message string) error {
	return Success(c, http.StatusOK, data, message)
}

// Created returns a 201 response
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error returns an error response. issues lists per-field failures, when any.
func Error(c echo.Context, statusCode int, message string, issues []domainerrors.Issue) error {
	return c.JSON(statusCode, Envelope{
		State:   statusCode,
		Message: message,
		Data:    nil,
		Errors:  issues,
		Meta:    meta(c),
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, message, nil)
}

// TooManyRequests returns a 429 error
func TooManyRequests(c echo.Context, message string) error {
	return Error(c, http.StatusTooManyRequests, message, nil)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
