// Package response defines consistent HTTP response structures.
// Loaders answer with Success, failed form actions with ActionData, and
// successful actions with a See Other redirect.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"remixjokes/src/core/domain"
)

// Success represents a successful loader response with data.
type Success struct {
	Data any `json:"data"`
}

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// ActionData is what a form action answers with when it does not redirect:
// a form-level error, per-field errors, and the submitted values to refill the form.
type ActionData struct {
	FormError   string            `json:"formError,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Fields      any               `json:"fields,omitempty"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

// Redirect sends a 303 so the browser follows up with a GET.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// Invalid sends a 400 with action data.
func Invalid(c *gin.Context, data ActionData) {
	c.JSON(http.StatusBadRequest, data)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      "BAD_REQUEST",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusNotFound, Error{
		Error: ErrorDetail{
			Code:      "NOT_FOUND",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusConflict, Error{
		Error: ErrorDetail{
			Code:      "CONFLICT",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusForbidden, Error{
		Error: ErrorDetail{
			Code:      "FORBIDDEN",
			Message:   message,
			RequestID: requestID,
		},
	})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, Error{
		Error: ErrorDetail{
			Code:      "INTERNAL_ERROR",
			Message:   "An unexpected error occurred",
			RequestID: requestID,
		},
	})
}

// FromDomainError converts a domain error to an appropriate HTTP response.
// This centralizes error handling and ensures consistent error responses.
func FromDomainError(c *gin.Context, err error, requestID string) {
	msg := domain.Message(err)
	if msg == "" {
		msg = err.Error()
	}

	switch {
	case domain.IsNotFound(err):
		NotFound(c, msg, requestID)
	case domain.IsValidationError(err):
		var fe domain.FieldErrors
		var de *domain.DomainError
		switch {
		case errors.As(err, &fe):
			Invalid(c, ActionData{FieldErrors: fe})
		case errors.As(err, &de) && de.Field != "":
			Invalid(c, ActionData{FieldErrors: map[string]string{de.Field: de.Message}})
		default:
			Invalid(c, ActionData{FormError: msg})
		}
	case domain.IsConflict(err):
		Conflict(c, msg, requestID)
	case domain.IsForbidden(err):
		Forbidden(c, msg, requestID)
	case domain.IsUnauthorized(err):
		Invalid(c, ActionData{FormError: msg})
	default:
		InternalError(c, requestID)
	}
}
