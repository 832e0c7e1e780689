package errs

import (
	"errors"
	"fmt"
)

// Kind is a machine readable error category, it goes to the client as error.code
type Kind string

const (
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindNotFound     Kind = "NOT_FOUND"
	KindForbidden    Kind = "FORBIDDEN"
	KindInvalidInput Kind = "INVALID_INPUT"
	KindInternal     Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewUnauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NewInvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf walks the error chain, wrapped db errors fall back to KindInternal
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
