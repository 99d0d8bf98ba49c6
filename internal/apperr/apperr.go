// Package apperr defines the discriminated error kinds returned by the
// record services so handlers can map each kind to a specific HTTP
// status without string matching.
package apperr

import (
	"errors"
	"fmt"
)

// FieldError is one field-level validation failure
type FieldError struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// ValidationError carries one or more field-level failures
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Errors[0].Field, e.Errors[0].Msg)
}

// Validation builds a ValidationError from field/message pairs
func Validation(pairs ...FieldError) *ValidationError {
	return &ValidationError{Errors: pairs}
}

// NotFoundError marks a lookup that did not resolve
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// NotFound builds a NotFoundError for the named entity
func NotFound(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

// ConflictError marks a mutation blocked by referencing records
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

// Conflict builds a ConflictError with the given message
func Conflict(msg string) *ConflictError {
	return &ConflictError{Msg: msg}
}

// Infrastructure faults. Both are surfaced to clients as a generic
// server error; the detail is only logged.
var (
	ErrStoreFault  = errors.New("record store operation failed")
	ErrFileIOFault = errors.New("file storage operation failed")
)

// StoreFault wraps a store-level failure
func StoreFault(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreFault, err)
}

// FileIOFault wraps a file-storage failure
func FileIOFault(err error) error {
	return fmt.Errorf("%w: %w", ErrFileIOFault, err)
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// IsNotFound reports whether err is (or wraps) a NotFoundError
func IsNotFound(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	ok := errors.As(err, &nf)
	return nf, ok
}

// IsConflict reports whether err is (or wraps) a ConflictError
func IsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}
