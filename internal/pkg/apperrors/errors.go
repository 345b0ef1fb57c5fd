package apperrors

import (
	"errors"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound     = NewResourceNotFoundError("Student not found.")
	ErrEmailAlreadyExists  = NewConflictError("The provided email is already registered.")
	ErrStudentHasRelations = NewConflictError("The student cannot be deleted because it has associated enrollments.")
)

// Teacher errors
var (
	ErrTeacherNotFound    = NewResourceNotFoundError("Teacher not found.")
	ErrTeacherHasSubjects = NewConflictError("The teacher cannot be deleted because it is assigned to one or more subjects.")
)

// Subject errors
var (
	ErrSubjectNotFound     = NewResourceNotFoundError("Subject not found.")
	ErrSubjectNameExists   = NewConflictError("A subject with that name already exists.")
	ErrSubjectHasRelations = NewConflictError("The subject cannot be deleted because it has associated records.")
	ErrNothingToUpdate     = NewBadRequestError("No data was provided to update.")
	ErrSubjectTeacherFKey  = NewBadRequestError("Foreign key error: the specified teacher does not exist.")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewValidationError creates a validation error carrying every failed field message.
func NewValidationError(messages []string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: "Invalid input data.",
		Details: strings.Join(messages, ". "),
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details string) *CustomError {
	e.Details = details
	return e
}

// Message returns the user-facing message of err if it carries one.
func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return ""
}

// Details returns the details of err if it carries any.
func Details(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Details
	}
	return ""
}
