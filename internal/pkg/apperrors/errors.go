package apperrors

import "errors"

// Error categories. Every domain error wraps exactly one of these so
// callers can branch with errors.Is without knowing the concrete cause.
var (
	// ErrValidation covers malformed or missing input, caught before any
	// remote call where possible.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced id does not resolve.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a uniqueness constraint is violated.
	ErrConflict = errors.New("conflict")

	// ErrConnection is returned when the remote store is unreachable or
	// a request timed out.
	ErrConnection = errors.New("connection failed")

	// ErrAuth covers invalid credentials, already-registered emails and
	// expired sessions.
	ErrAuth = errors.New("authentication failed")
)

// Validation errors
var (
	ErrInvalidEmail    = &CustomError{Err: ErrValidation, Message: "invalid email address"}
	ErrPasswordTooWeak = &CustomError{Err: ErrValidation, Message: "password must be at least 6 characters"}
	ErrInvalidID       = &CustomError{Err: ErrValidation, Message: "invalid identifier"}
)

// Auth errors
var (
	ErrInvalidCredentials     = &CustomError{Err: ErrAuth, Message: "invalid email or password"}
	ErrEmailAlreadyRegistered = &CustomError{Err: ErrAuth, Message: "this email is already registered"}
	ErrTokenExpired           = &CustomError{Err: ErrAuth, Message: "token expired"}
	ErrTokenInvalid           = &CustomError{Err: ErrAuth, Message: "invalid token"}
	ErrTokenRevoked           = &CustomError{Err: ErrAuth, Message: "token revoked"}
	ErrSessionNotFound        = &CustomError{Err: ErrAuth, Message: "no active session"}
)

// Department errors
var (
	ErrDepartmentNotFound      = &CustomError{Err: ErrNotFound, Message: "department not found"}
	ErrDepartmentAlreadyExists = &CustomError{Err: ErrConflict, Message: "department with this code already exists"}
)

// Faculty errors
var (
	ErrFacultyNotFound    = &CustomError{Err: ErrNotFound, Message: "faculty member not found"}
	ErrEmailAlreadyExists = &CustomError{Err: ErrConflict, Message: "faculty member with this email already exists"}
)

// Course errors
var (
	ErrCourseNotFound      = &CustomError{Err: ErrNotFound, Message: "course not found"}
	ErrCourseAlreadyExists = &CustomError{Err: ErrConflict, Message: "course with this code already exists"}
	ErrDuplicateAssignment = &CustomError{Err: ErrConflict, Message: "teaching assignment already exists"}
)

// Errors for the faculty sub-resources
var (
	ErrQualificationNotFound = &CustomError{Err: ErrNotFound, Message: "qualification not found"}
	ErrPublicationNotFound   = &CustomError{Err: ErrNotFound, Message: "publication not found"}
	ErrDocumentNotFound      = &CustomError{Err: ErrNotFound, Message: "extracted document not found"}
	ErrProfileNotFound       = &CustomError{Err: ErrNotFound, Message: "profile not found"}
)

// CustomError carries a category sentinel plus a human-readable cause.
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the category sentinel to errors.Is.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails attaches context details to a copy of the error, leaving
// the shared sentinel untouched.
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	return &CustomError{Err: e.Err, Message: e.Message, Details: details}
}

// NewValidationError creates a validation error with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidation, Message: message}
}

// NewNotFoundError creates a not-found error with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}

// NewConflictError creates a conflict error with a message.
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewConnectionError creates a connection error with a message.
func NewConnectionError(message string) error {
	return &CustomError{Err: ErrConnection, Message: message}
}

// NewAuthError creates an authentication error with a message.
func NewAuthError(message string) error {
	return &CustomError{Err: ErrAuth, Message: message}
}
