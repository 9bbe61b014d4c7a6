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

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Admission errors
var (
	ErrAdmissionNotFound = errors.New("admission not found")
	ErrInvalidStatus     = errors.New("invalid admission status")
	ErrTransitionFailed  = errors.New("status transition failed")
)

// Student errors
var (
	ErrStudentNotFound        = errors.New("student not found")
	ErrStudentNoAlreadyExists = errors.New("student number already exists")
)

// Archive errors
var (
	ErrArchiveRecordNotFound = errors.New("archived application not found")
)

// Section errors
var (
	ErrSectionNotFound      = errors.New("section not found")
	ErrSectionAlreadyExists = errors.New("section with this grade level and name already exists")
	ErrInvalidGradeLevel    = errors.New("unrecognized grade level")
)

// User errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUsernameAlreadyInUse = errors.New("username already in use")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// Is returns whether target matches err or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
