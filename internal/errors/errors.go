package errors

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

var (
	// ErrUserNotFound is returned when a user lookup by id finds nothing.
	ErrUserNotFound = errors.New("User not found")
	// ErrRecordNotFound is returned when a record lookup by id finds nothing.
	ErrRecordNotFound = errors.New("Record not found")
)

// RefNotFoundError reports a write payload referencing an entity id that
// does not exist. Unlike a direct lookup miss this maps to 400, not 404.
type RefNotFoundError struct {
	Message string
}

func (e *RefNotFoundError) Error() string {
	return e.Message
}

// NewRefNotFound builds a RefNotFoundError with a formatted message.
func NewRefNotFound(format string, args ...any) *RefNotFoundError {
	return &RefNotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError from a cause.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// BulkItemError names one failing item in a bulk create batch.
type BulkItemError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// BulkCreateError carries every failing index of an all-or-nothing batch.
type BulkCreateError struct {
	Items []BulkItemError
}

func (e *BulkCreateError) Error() string {
	return "Bulk creation failed"
}

// MethodError wraps a failure raised while executing an entity method
// endpoint. Its text is surfaced verbatim in the response.
type MethodError struct {
	Err error
}

func (e *MethodError) Error() string {
	return "Method execution failed: " + e.Err.Error()
}

func (e *MethodError) Unwrap() error {
	return e.Err
}

// ErrorResponse is the uniform error envelope returned by every handler.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Detail  any    `json:"detail"`
}

// MapErrorToHTTP maps a domain or storage error to an HTTP status and the
// response envelope.
func MapErrorToHTTP(err error) (int, ErrorResponse) {
	var (
		validationErr *ValidationError
		refErr        *RefNotFoundError
		bulkErr       *BulkCreateError
		methodErr     *MethodError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, ErrorResponse{
			Error:   "Bad Request",
			Message: validationErr.Message,
			Detail:  "Invalid input data provided",
		}
	case errors.As(err, &refErr):
		return http.StatusBadRequest, ErrorResponse{
			Error:   refErr.Error(),
			Message: refErr.Error(),
			Detail:  "HTTP 400 error occurred",
		}
	case errors.As(err, &bulkErr):
		return http.StatusBadRequest, ErrorResponse{
			Error:   "Bad Request",
			Message: bulkErr.Error(),
			Detail:  bulkErr.Items,
		}
	case errors.As(err, &methodErr):
		return http.StatusInternalServerError, ErrorResponse{
			Error:   methodErr.Error(),
			Message: methodErr.Error(),
			Detail:  "HTTP 500 error occurred",
		}
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrRecordNotFound):
		return http.StatusNotFound, ErrorResponse{
			Error:   err.Error(),
			Message: err.Error(),
			Detail:  "HTTP 404 error occurred",
		}
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return http.StatusConflict, ErrorResponse{
			Error:   "Conflict",
			Message: "Data conflict occurred",
			Detail:  err.Error(),
		}
	default:
		// Storage internals stay out of the response.
		return http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Message: "Database operation failed",
			Detail:  "An internal database error occurred",
		}
	}
}
