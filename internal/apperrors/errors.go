package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller's scope does not allow the action.
var ErrForbidden = errors.New("forbidden")

// ErrPersistence wraps any failure of the database or the blob store.
var ErrPersistence = errors.New("persistence failure")

// Authentication failures. They are kept distinct so the client can tell
// "awaiting approval" apart from "wrong password".
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPendingApproval    = errors.New("account is pending approval")
	ErrEmailInUse         = errors.New("email already in use")
	ErrWeakCredential     = errors.New("password is too weak")
)

// ErrIllegalStanding is returned when a stored identity carries a role/status
// combination that has no meaning.
var ErrIllegalStanding = errors.New("identity record has an illegal role/status combination")

// AppError carries a stable machine-readable code next to the human message.
// Kind is one of the sentinels above and is what errors.Is matches against.
type AppError struct {
	Code    string
	Message string
	Kind    error
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError builds an AppError of the given kind.
func NewAppError(code, message string, kind error, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: kind, Err: err}
}

func NewValidationFailedError(field, message string) *AppError {
	return NewAppError("VALIDATION_FAILED", fmt.Sprintf("%s: %s", field, message), ErrValidation, nil)
}

func NewNotFoundError(resource, id string) *AppError {
	return NewAppError("NOT_FOUND", fmt.Sprintf("%s %q not found", resource, id), ErrNotFound, nil)
}

func NewConflictError(message string) *AppError {
	return NewAppError("CONFLICT", message, ErrDuplicate, nil)
}

func NewForbiddenError(message string) *AppError {
	return NewAppError("FORBIDDEN", message, ErrForbidden, nil)
}

// NewPersistenceError hides the driver error behind one opaque failure while
// keeping it in the chain for logging.
func NewPersistenceError(op string, err error) *AppError {
	return NewAppError("PERSISTENCE_FAILED", op, ErrPersistence, err)
}

var authCodes = map[error]string{
	ErrUnauthorized:       "UNAUTHORIZED",
	ErrInvalidCredentials: "INVALID_CREDENTIALS",
	ErrPendingApproval:    "PENDING_APPROVAL",
	ErrEmailInUse:         "EMAIL_IN_USE",
	ErrWeakCredential:     "WEAK_CREDENTIAL",
}

// NewAuthError builds one of the authentication failures.
func NewAuthError(kind error, message string) *AppError {
	code, ok := authCodes[kind]
	if !ok {
		code = "UNAUTHORIZED"
	}
	return NewAppError(code, message, kind, nil)
}
