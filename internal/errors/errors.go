package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a bad-request failure with a human-readable message.
// Registration and evaluation rules surface through this type.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ConflictError represents a uniqueness violation caught at commit time. The message is
// deliberately generic so a retry race is indistinguishable from a duplicate submit.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// AuthenticationError represents credential or token failures
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents an authenticated caller lacking a required role
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// UnexpectedError wraps anything that is not part of the public taxonomy. The cause is
// logged by the caller; only the generic message crosses the API boundary.
type UnexpectedError struct {
	Cause error
}

func (e *UnexpectedError) Error() string {
	return "internal server error"
}

func (e *UnexpectedError) Unwrap() error {
	return e.Cause
}

// Entity Not Found Errors
var (
	ErrAccountNotFound    = &NotFoundError{Entity: "account"}
	ErrJudgeNotFound      = &NotFoundError{Entity: "judge"}
	ErrProjectNotFound    = &NotFoundError{Entity: "project"}
	ErrEvaluationNotFound = &NotFoundError{Entity: "evaluation"}
)

// Registration Errors
var (
	ErrTooManyMembers     = &ValidationError{Message: "team can have at most 3 members"}
	ErrSelfAsMember       = &ValidationError{Message: "cannot add yourself as a team member"}
	ErrDuplicateMember    = &ValidationError{Message: "duplicate team member"}
	ErrNameRequired       = &ValidationError{Field: "name", Message: "name is required"}
	ErrTeamNameRequired   = &ValidationError{Field: "team_name", Message: "team name is required"}
	ErrExternalIDMismatch = &ValidationError{Field: "external_id", Message: "external id does not match account"}
	ErrRegistrationClosed = &ValidationError{Message: "registration period is closed"}

	ErrRegistrationConflict = &ConflictError{Message: "registration conflict, please try again"}
	ErrEvaluationConflict   = &ConflictError{Message: "evaluation conflict, please try again"}
	ErrAccountConflict      = &ConflictError{Message: "account already exists"}
)

// Authentication Errors
var (
	ErrPasswordRequired = &ValidationError{Field: "password", Message: "password is required"}
	ErrPasswordMismatch = &AuthenticationError{Message: "password does not match"}
	ErrAdminRequired    = &AuthorizationError{Message: "admin privileges required"}
)

// Mail Relay Errors
var (
	ErrMailRelayFailed        = errors.New("failed to send email")
	ErrMailRelayNotConfigured = errors.New("mail relay is not configured")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorf creates a ValidationError with a formatted message
func NewValidationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewUnexpectedError wraps an internal failure so its detail never reaches the caller
func NewUnexpectedError(cause error) error {
	return &UnexpectedError{Cause: cause}
}
