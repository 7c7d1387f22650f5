package errors

import (
	stderrors "errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

type ErrorType string

const (
	ErrTypeAuth       ErrorType = "AUTH"
	ErrTypeValidation ErrorType = "VALIDATION"
	ErrTypeNotFound   ErrorType = "NOT_FOUND"
	ErrTypeTransport  ErrorType = "TRANSPORT"
	ErrTypeInternal   ErrorType = "INTERNAL"
)

// DomainError carries one of the client error kinds plus the message shown to
// the caller. When the remote service supplied an error body, Message holds it
// verbatim.
type DomainError struct {
	Type    ErrorType
	Message string
	Err     error
	Stack   []byte
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func (e *DomainError) StackTrace() []byte {
	return e.Stack
}

func New(errType ErrorType, message string, err error) *DomainError {
	var stack []byte
	if err != nil {
		if stackErr, ok := err.(*goerrors.Error); ok {
			stack = stackErr.Stack()
		} else {
			stack = goerrors.Wrap(err, 2).Stack()
		}
	} else {
		stack = goerrors.New(message).Stack()
	}

	return &DomainError{
		Type:    errType,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

func Auth(message string, err error) *DomainError {
	return New(ErrTypeAuth, message, err)
}

func Validation(message string, err error) *DomainError {
	return New(ErrTypeValidation, message, err)
}

func NotFound(message string, err error) *DomainError {
	return New(ErrTypeNotFound, message, err)
}

func Transport(message string, err error) *DomainError {
	return New(ErrTypeTransport, message, err)
}

func Internal(message string, err error) *DomainError {
	return New(ErrTypeInternal, message, err)
}

// TypeOf reports the kind of err, or ErrTypeInternal for errors that did not
// come out of this package.
func TypeOf(err error) ErrorType {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Type
	}
	return ErrTypeInternal
}

// IsType reports whether err is a DomainError of the given kind.
func IsType(err error, t ErrorType) bool {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Type == t
	}
	return false
}

// Message returns the caller-facing message of err: the DomainError message
// when there is one, otherwise err.Error().
func Message(err error) string {
	var de *DomainError
	if stderrors.As(err, &de) {
		return de.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
