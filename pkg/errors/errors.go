package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed domain error surfaced to the coordinator.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors covering the registration failure taxonomy.
var (
	ErrInvalidStudentID = New("INVALID_STUDENT_ID", "invalid student ID")
	ErrNotFound         = New("NOT_FOUND", "resource not found")
	ErrAlreadyEnrolled  = New("ALREADY_ENROLLED", "student is already enrolled in this course")
	ErrCourseFull       = New("COURSE_FULL", "course is full")
	ErrInvalidGrade     = New("INVALID_GRADE", "invalid grade format")
	ErrConflict         = New("CONFLICT", "conflict")
	ErrValidation       = New("VALIDATION_ERROR", "validation failed")
	ErrInternal         = New("INTERNAL_ERROR", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Is reports whether err carries the same code as target.
func Is(err error, target *Error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return target != nil && e.Code == target.Code
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
