package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// FieldError describes a single invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError represents an application error
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
	HTTPStatus int          `json:"-"`
	Timestamp  time.Time    `json:"timestamp"`
	RequestID  string       `json:"request_id,omitempty"`
	Path       string       `json:"path,omitempty"`
	Method     string       `json:"method,omitempty"`
	Err        error        `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a validation error with field-level detail
func NewValidationError(field, message string) *AppError {
	appErr := NewAppError(
		ErrCodeValidation,
		fmt.Sprintf("Validation failed for field '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
	appErr.Errors = []FieldError{{Field: field, Message: message}}
	return appErr
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *AppError {
	return NewAppError(
		ErrCodeNotFound,
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		nil,
	)
}

// NewConflictError creates a duplicate-unique-field error.
// Duplicates surface as 400, matching the original public API contract.
func NewConflictError(code, message string) *AppError {
	return NewAppError(code, message, http.StatusBadRequest, nil)
}

// NewStoreError creates an opaque persistence error; the cause is
// logged server-side and never leaks into the response body.
func NewStoreError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeStore,
		fmt.Sprintf("Failed to %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		ErrCodeInternal,
		message,
		http.StatusInternalServerError,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Error codes for different categories of errors
const (
	ErrCodeValidation = "VALIDATION_ERROR"
	ErrCodeNotFound   = "NOT_FOUND"
	ErrCodeStore      = "STORE_ERROR"
	ErrCodeInternal   = "INTERNAL_ERROR"

	ErrCodeRequiredField = "REQUIRED_FIELD"
	ErrCodeInvalidFormat = "INVALID_FORMAT"

	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodePlayerNotFound      = "PLAYER_NOT_FOUND"
	ErrCodeKingdomNotFound     = "KINGDOM_NOT_FOUND"
	ErrCodeApplicationNotFound = "APPLICATION_NOT_FOUND"

	ErrCodeUsernameTaken      = "USERNAME_TAKEN"
	ErrCodeKingdomNumberTaken = "KINGDOM_NUMBER_TAKEN"

	ErrCodeApplicationInvalidStatus = "APPLICATION_INVALID_STATUS"
)
