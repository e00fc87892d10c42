package errors

import (
	"fmt"
)

// ErrorType classifies failures of the analytics pipeline.
//
// Coercion failures of individual cells are not errors at all; they recover
// locally to null. Everything here is fatal and stops the run.
type ErrorType string

const (
	// ErrTypeInput covers missing or unreadable source files and malformed CSV.
	ErrTypeInput ErrorType = "INPUT"
	// ErrTypeSchema covers a required field being absent for a requested aggregation.
	ErrTypeSchema ErrorType = "SCHEMA"
	// ErrTypeArgument covers unsupported metrics, group-by keys, and operation names.
	ErrTypeArgument ErrorType = "ARGUMENT"
	// ErrTypeJoinFanOut covers duplicate keys in a dimension table.
	ErrTypeJoinFanOut ErrorType = "JOIN_FANOUT"
	// ErrTypeExport covers failures writing result files.
	ErrTypeExport ErrorType = "EXPORT"
	// ErrTypeStore covers failures persisting the dataset snapshot.
	ErrTypeStore ErrorType = "STORE"
	// ErrTypeConfig covers invalid configuration.
	ErrTypeConfig ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewInputError creates an input error naming the offending source path.
func NewInputError(path string, cause error) *AppError {
	return NewAppError(ErrTypeInput, fmt.Sprintf("cannot read source %s", path), cause).
		WithContext("path", path)
}

// NewSchemaError creates a schema error naming the aggregation and the
// missing canonical fields.
func NewSchemaError(aggregation string, missing []string) *AppError {
	return NewAppError(ErrTypeSchema,
		fmt.Sprintf("%s requires missing fields %v", aggregation, missing), nil).
		WithContext("aggregation", aggregation).
		WithContext("missing_fields", missing)
}

// NewArgumentError creates an argument error naming the invalid value and the
// valid set.
func NewArgumentError(name, value string, valid []string) *AppError {
	return NewAppError(ErrTypeArgument,
		fmt.Sprintf("unsupported %s %q, valid values are %v", name, value, valid), nil).
		WithContext(name, value).
		WithContext("valid", valid)
}

// NewJoinFanOutError creates a fan-out error naming the dimension and the
// duplicated key.
func NewJoinFanOutError(dimension, key string) *AppError {
	return NewAppError(ErrTypeJoinFanOut,
		fmt.Sprintf("dimension %s has duplicate key %q", dimension, key), nil).
		WithContext("dimension", dimension).
		WithContext("key", key)
}

// NewExportError creates an export-related error
func NewExportError(message string, cause error) *AppError {
	return NewAppError(ErrTypeExport, message, cause)
}

// NewStoreError creates a snapshot-store error
func NewStoreError(message string, cause error) *AppError {
	return NewAppError(ErrTypeStore, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, errType ErrorType) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Type == errType
}
