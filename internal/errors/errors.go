// Package errors defines the domain error taxonomy shared by all services.
// Handlers map these values to transport-level status codes; services never
// return raw store errors to callers.
package errors

import "fmt"

// DomainError is a typed, user-presentable error. Code is stable and safe to
// match on; Message is the human-readable form returned to callers.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

var (
	ErrInsufficientBalance = &DomainError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: "insufficient balance",
	}
	ErrBalanceOverflow = &DomainError{
		Code:    "BALANCE_OVERFLOW",
		Message: "balance overflow",
	}
	ErrEmailAlreadyExists = &DomainError{
		Code:    "EMAIL_ALREADY_EXISTS",
		Message: "email already exists",
	}
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid credentials",
	}
)

// NotFound reports that the named entity with the given id does not exist.
func NotFound(entity string, id uint) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %d not found", entity, id),
	}
}

// Validation reports a rejected input field.
func Validation(field, reason string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf("%s: %s", field, reason),
	}
}

// StoreError wraps an opaque storage failure. It is distinct from NotFound:
// callers that branch on "absent" must not treat a StoreError as absence.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store wraps err as a StoreError. Returns nil when err is nil.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}
