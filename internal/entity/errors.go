package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Event errors
	ErrEventNotFound = errors.New("event not found")

	// Admin errors
	ErrInvalidPassword = errors.New("invalid password")

	// General errors
	ErrInvalidInput = errors.New("invalid input")
	ErrNoInsertedID = errors.New("store did not return an inserted id")
)

// FieldError attributes one violated rule to a field path such as
// "coordinators[1].phone".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for malformed or out-of-range input. Message is
// the summary shown to the submitter, Fields lists every violation.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func NewValidationError(message string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// HasField reports whether a violation was recorded for field.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// PersistenceError is returned when a store is unreachable or rejects a
// write. Message is safe to show, Err keeps the cause for logs.
type PersistenceError struct {
	Message string
	Err     error
}

func NewPersistenceError(message string, err error) *PersistenceError {
	return &PersistenceError{Message: message, Err: err}
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
