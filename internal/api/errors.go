// errors.go - Structured error handling for API responses
package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIError is the uniform error shape returned by every failure path.
// The wire body is always {"detail": "..."}; the HTTP status lives on the
// value and is not serialized.
type APIError struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Detail
}

// Error constructors for consistent error handling

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(detail string) *APIError {
	return &APIError{
		Status: http.StatusBadRequest,
		Detail: detail,
	}
}

// NewNotFoundError creates a 404 Not Found error
func NewNotFoundError(resource string, id string) *APIError {
	return &APIError{
		Status: http.StatusNotFound,
		Detail: fmt.Sprintf("%s not found: %s", resource, id),
	}
}

// NewServerError creates a 500 error with a fixed detail message
func NewServerError(detail string) *APIError {
	return &APIError{
		Status: http.StatusInternalServerError,
		Detail: detail,
	}
}

// NewInternalError creates a 500 error carrying the cause text
func NewInternalError(message string, cause error) *APIError {
	detail := message
	if cause != nil {
		detail = fmt.Sprintf("%s: %v", message, cause)
	}
	return &APIError{
		Status: http.StatusInternalServerError,
		Detail: detail,
	}
}

// ErrorHandler renders every error as the uniform {"detail": ...} body.
// Usage: e.HTTPErrorHandler = api.ErrorHandler
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *APIError

	switch e := err.(type) {
	case *APIError:
		apiErr = e
	case *echo.HTTPError:
		apiErr = &APIError{
			Status: e.Code,
			Detail: fmt.Sprintf("%v", e.Message),
		}
	default:
		apiErr = &APIError{
			Status: http.StatusInternalServerError,
			Detail: "An unexpected error occurred",
		}
	}

	c.JSON(apiErr.Status, apiErr)
}
