package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrBadRequest       = errors.New("bad request")

	// Precondition errors: the operation needs prior state that is absent
	ErrPreconditionFailed = errors.New("precondition failed")
)

// Person errors
var (
	ErrPersonNotFound     = errors.New("person not found")
	ErrEmailAlreadyExists = errors.New("person with this email already exists")
	ErrEmailRequired      = errors.New("email address is required")
)

// Profile errors
var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile for this person already exists")
)

// Role errors
var (
	ErrInstructorNotFound  = errors.New("instructor not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrRoleAlreadyAssigned = errors.New("person already holds this role")
	ErrRoleConflict        = errors.New("person is already associated with an instructor or student role")
)

// Course / module errors
var (
	ErrCourseNotFound = errors.New("course not found")
	ErrModuleNotFound = errors.New("module not found")
)

// Enrollment / review errors
var (
	ErrEnrollmentNotFound    = errors.New("enrollment not found")
	ErrAlreadyEnrolled       = errors.New("student is already enrolled in this course")
	ErrStudentCourseNotFound = errors.New("student course record not found")
	ErrStudentCourseExists   = errors.New("student is already linked to this course")
	ErrReviewNotFound        = errors.New("review not found")
	ErrReviewAlreadyExists   = errors.New("review for this course by this student already exists")
	ErrEnrollmentRequired    = errors.New("student must be enrolled in the course to leave a review")
)

// NewValidationError creates a new custom error for a failed field validation
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError wraps a sentinel error with a situation-specific message
type CustomError struct {
	Err     error
	Message string
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
