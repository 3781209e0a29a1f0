package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMyError(t *testing.T) {
	inner := errors.New("underlying")
	e := NewMyError(ErrBadParameter, "invalid input", inner)
	require.NotNil(t, e)
	assert.Equal(t, ErrBadParameter, e.Code)
	assert.Equal(t, "invalid input", e.Message)
	assert.Same(t, inner, e.Inner)
}

func TestNewInternalServerError_KeepsClassifiedInner(t *testing.T) {
	notFound := NewEntityNotFoundError("credential not found", nil)
	e := NewInternalServerError("lookup failed", notFound)
	assert.Same(t, notFound, e)
	assert.True(t, IsEntityNotFoundError(e))
}

func TestNewInternalServerError_WrapsPlainInner(t *testing.T) {
	inner := errors.New("connection refused")
	e := NewInternalServerError("lookup failed", inner)
	assert.Equal(t, ErrInternalServerError, e.Code)
	assert.ErrorIs(t, e, inner)
}

func TestMyError_Error(t *testing.T) {
	assert.Equal(t, "bad_parameter invalid body", NewBadParameterError("invalid body", nil).Error())
	assert.Equal(t,
		"internal_server_error redis down: dial tcp: refused",
		NewInternalServerError("redis down", errors.New("dial tcp: refused")).Error(),
	)
}

func TestToMyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{name: "nil", err: nil, wantCode: ""},
		{name: "plain", err: errors.New("plain"), wantCode: ""},
		{name: "direct", err: NewEntityNotFoundError("gone", nil), wantCode: ErrEntityNotFound},
		{name: "wrapped with fmt", err: fmt.Errorf("login: %w", NewBadParameterError("bad", nil)), wantCode: ErrBadParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, ToMyErrorCode(tt.err))
			if tt.wantCode == "" {
				assert.Nil(t, ToMyError(tt.err))
			} else {
				assert.NotNil(t, ToMyError(tt.err))
			}
		})
	}
}

func TestIsHelpers(t *testing.T) {
	assert.True(t, IsInternalServerError(NewInternalServerError("x", nil)))
	assert.True(t, IsEntityNotFoundError(NewEntityNotFoundError("x", nil)))
	assert.True(t, IsBadParameterError(NewBadParameterError("x", nil)))
	assert.False(t, IsBadParameterError(NewEntityNotFoundError("x", nil)))
	assert.False(t, IsMyError(errors.New("plain"), ""))
}
