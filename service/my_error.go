package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that the store or another dependency failed.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that no credential record exists for the requested key.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that the request could not be parsed or does not match the API schema.
	ErrBadParameter = "bad_parameter"
)

// MyError is an error raised inside mylogin. Code selects the HTTP status; Message and Inner
// are for logs only and never reach API consumers.
type MyError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Inner   error  `json:"-"`
}

// NewMyError creates a new MyError.
func NewMyError(code string, message string, inner error) *MyError {
	return &MyError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// wrap keeps an already classified inner error instead of hiding its code behind a new one.
func wrap(code string, message string, inner error) *MyError {
	if myInner := ToMyError(inner); myInner != nil {
		return myInner
	}
	return NewMyError(code, message, inner)
}

func NewInternalServerError(message string, inner error) *MyError {
	return wrap(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *MyError {
	return wrap(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *MyError {
	return wrap(ErrBadParameter, message, inner)
}

func (e MyError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap returns the cause.
func (e MyError) Unwrap() error {
	return e.Inner
}

// ToMyError returns the first MyError in the chain of err, or nil.
func ToMyError(err error) *MyError {
	var e *MyError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// ToMyErrorCode returns the code of err, or "" when err is not a MyError.
func ToMyErrorCode(err error) string {
	if myErr := ToMyError(err); myErr != nil {
		return myErr.Code
	}
	return ""
}

func IsMyError(err error, code string) bool {
	return ToMyErrorCode(err) == code && code != ""
}

func IsInternalServerError(err error) bool {
	return IsMyError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsMyError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsMyError(err, ErrBadParameter)
}
