package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
		expectedDetail any
	}{
		{
			name:           "validation error",
			err:            NewValidationError("invalid id"),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Bad Request",
			expectedDetail: "Invalid input data provided",
		},
		{
			name:           "referenced entity missing",
			err:            NewRefNotFound("Record with id %d not found", 9),
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Record with id 9 not found",
			expectedDetail: "HTTP 400 error occurred",
		},
		{
			name:           "user lookup miss",
			err:            ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "User not found",
			expectedDetail: "HTTP 404 error occurred",
		},
		{
			name:           "record lookup miss",
			err:            ErrRecordNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Record not found",
			expectedDetail: "HTTP 404 error occurred",
		},
		{
			name:           "wrapped lookup miss",
			err:            fmt.Errorf("fetching: %w", ErrUserNotFound),
			expectedStatus: http.StatusNotFound,
			expectedError:  "fetching: User not found",
			expectedDetail: "HTTP 404 error occurred",
		},
		{
			name:           "method failure",
			err:            &MethodError{Err: errors.New("disk full")},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Method execution failed: disk full",
			expectedDetail: "HTTP 500 error occurred",
		},
		{
			name:           "duplicate key conflict",
			err:            gorm.ErrDuplicatedKey,
			expectedStatus: http.StatusConflict,
			expectedError:  "Conflict",
			expectedDetail: gorm.ErrDuplicatedKey.Error(),
		},
		{
			name:           "unknown storage failure stays opaque",
			err:            errors.New("dial tcp: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal Server Error",
			expectedDetail: "An internal database error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedError, body.Error)
			assert.Equal(t, tt.expectedDetail, body.Detail)
		})
	}
}

func TestMapErrorToHTTP_BulkCreateError(t *testing.T) {
	err := &BulkCreateError{Items: []BulkItemError{
		{Index: 1, Error: "User not found"},
		{Index: 3, Error: "numberOfPushups is required"},
	}}

	status, body := MapErrorToHTTP(err)

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad Request", body.Error)
	assert.Equal(t, "Bulk creation failed", body.Message)
	assert.Equal(t, err.Items, body.Detail)
}

func TestMethodError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := &MethodError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Method execution failed: disk full", err.Error())
}
