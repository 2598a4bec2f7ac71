package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		cause  error
		status int
	}{
		{"record not found", gorm.ErrRecordNotFound, http.StatusNotFound},
		{"wrapped not found", errors.Join(errors.New("lookup"), gorm.ErrRecordNotFound), http.StatusNotFound},
		{"postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "pk"`), http.StatusConflict},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: tcus_bltn_m.bltn_no"), http.StatusConflict},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), http.StatusServiceUnavailable},
		{"anything else", errors.New("syntax error at or near"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("find", "customer", tt.cause)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.status, StatusCode(err))
		})
	}
}

func TestNotFoundMessages(t *testing.T) {
	err := NewNotFound("blog post")
	assert.Equal(t, "blog post not found", err.Error())
	assert.True(t, IsNotFound(err))

	dbErr := NewDatabaseError("find", "customer", gorm.ErrRecordNotFound)
	assert.True(t, IsNotFound(dbErr))
	assert.Equal(t, "customer not found: Failed to find customer", dbErr.Error())
}

func TestSentinelsSurviveWrapping(t *testing.T) {
	assert.True(t, IsInvalidFieldError(NewInvalidFieldError("page", "must be a positive integer")))
	assert.True(t, IsMissingRequiredFieldError(NewMissingRequiredFieldError("titl")))
	assert.True(t, IsInvalidJSONError(NewInvalidJSONError(errors.New("unexpected EOF"))))
	assert.True(t, IsMissingTokenError(NewMissingTokenError()))
	assert.True(t, IsDatabaseQueryError(NewDatabaseError("search", "customers", errors.New("boom"))))
	assert.True(t, IsServiceUnavailableError(NewServiceUnreachableError("file store", errors.New("timeout"))))
	assert.True(t, IsConfigError(NewConfigError("S3_BUCKET")))
}

func TestGetFullErrorFollowsCauses(t *testing.T) {
	inner := NewServiceUnreachableError("file store", errors.New("timeout"))
	outer := NewInternalErrorWithCause("upload failed", inner)

	assert.Equal(t, "upload failed -> service unavailable: file store request failed -> timeout", outer.GetFullError())
}

func TestStatusCodeOfPlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("plain")))
	assert.Equal(t, http.StatusUnauthorized, StatusCode(NewMissingTokenError()))
}
