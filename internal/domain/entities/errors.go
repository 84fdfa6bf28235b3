package entities

import (
	"errors"
	"fmt"
)

// Error kinds shared by every engine. Concrete errors match their kind with errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrPersistence        = errors.New("persistence error")
	ErrAuth               = errors.New("authentication error")
)

// DomainError is a typed error carrying a stable code for the transport layer.
type DomainError struct {
	Kind    error
	Code    string
	Message string
	Err     error
}

func NewError(kind error, code, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Is(target error) bool {
	return target == e.Kind
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Validationf builds an ad-hoc validation error for a single field.
func Validationf(format string, args ...any) error {
	return &DomainError{Kind: ErrValidation, Code: "INVALID_REQUEST", Message: fmt.Sprintf(format, args...)}
}

// Persistence wraps a gateway failure. A nil err stays nil.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		return err
	}
	return &DomainError{Kind: ErrPersistence, Code: "PERSISTENCE_ERROR", Message: op, Err: err}
}

// InvalidTransitionError reports a status change rejected by a transition table.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: transition %q -> %q not allowed", e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrConflict
}
