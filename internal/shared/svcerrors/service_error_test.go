package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("SRC_1000", "validation failed", nil),
			wantErr: NewInvalidArgumentError("SRC_1000", "validation failed", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("ANA_9000", nil)),
			wantErr: NewInternalError("ANA_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_Categories(t *testing.T) {
	t.Parallel()

	notFound := NewNotFoundError("SRC_1000", "cannot open input", nil)
	assert.True(t, notFound.IsNotFoundError())
	assert.False(t, notFound.IsInternalError())
	assert.Equal(t, ExitCodeNotFound, notFound.ExitCode)

	internal := NewInternalError("ANA_9000", errors.New("boom"))
	assert.True(t, internal.IsInternalError())
	assert.Equal(t, ExitCodeInternal, internal.ExitCode)

	invalid := NewInvalidArgumentError("CFG_1000", "bad flag", nil)
	assert.Equal(t, ExitCodeUsage, invalid.ExitCode)
}

func TestNewInternalErrorUndefined(t *testing.T) {
	t.Parallel()

	cause := errors.New("unclassified failure")
	svcErr := NewInternalErrorUndefined(cause)

	assert.Equal(t, "SYS_9001", svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
	assert.Equal(t, ExitCodeInternal, svcErr.ExitCode)
	assert.ErrorIs(t, svcErr, cause)
}

func TestServiceError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying")
	err := NewInternalError("ANA_9000", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "ANA_9000: internal error", err.Error())
}
