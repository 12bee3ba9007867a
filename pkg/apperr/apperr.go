// Package apperr classifies errors so that transport layers can map them to
// status codes without knowing where they came from.
//
//	return apperr.NewInvalidArgumentErrorFromError(
//		fmt.Errorf("newDomainCell: %w", err),
//		apperr.WithCode(errcodes.InvalidCell),
//	)
package apperr

import (
	"errors"
	"fmt"
)

// ErrorCode is a stable machine readable error identifier.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindNotFound
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindNotFound:
		return "not found"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Error is a classified error. The zero Kind is KindInternal.
type Error struct {
	kind        Kind
	code        ErrorCode
	description string
	message     string
	cause       error
}

func (e *Error) Error() string {
	switch {
	case e.message != "" && e.cause != nil:
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	case e.cause != nil:
		return e.cause.Error()
	default:
		return e.message
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) ErrorCode() ErrorCode {
	return e.code
}

type Option func(*Error)

func WithCode(code ErrorCode) Option {
	return func(e *Error) {
		e.code = code
	}
}

// WithDescription sets the human readable text returned to API clients.
func WithDescription(description string) Option {
	return func(e *Error) {
		e.description = description
	}
}

func newError(kind Kind, message string, cause error, opts ...Option) error {
	e := &Error{
		kind:    kind,
		message: message,
		cause:   cause,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func NewInvalidArgumentError(message string, opts ...Option) error {
	return newError(KindInvalidArgument, message, nil, opts...)
}

func NewInvalidArgumentErrorFromError(err error, opts ...Option) error {
	return newError(KindInvalidArgument, "", err, opts...)
}

func NewNotFoundError(message string, opts ...Option) error {
	return newError(KindNotFound, message, nil, opts...)
}

func NewUnavailableErrorFromError(err error, opts ...Option) error {
	return newError(KindUnavailable, "", err, opts...)
}

func NewInternalErrorFromError(err error, opts ...Option) error {
	return newError(KindInternal, "", err, opts...)
}

func kindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}

	return KindInternal, false
}

func IsInvalidArgumentError(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == KindInvalidArgument
}

func IsNotFoundError(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == KindNotFound
}

func IsUnavailableError(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == KindUnavailable
}

type coder interface {
	ErrorCode() ErrorCode
}

// Code returns the first non-empty code found in the error chain.
func Code(err error) ErrorCode {
	for err != nil {
		if c, ok := err.(coder); ok && c.ErrorCode() != "" { //nolint:errorlint // walking the chain by hand
			return c.ErrorCode()
		}

		err = errors.Unwrap(err)
	}

	return ""
}

// Description returns the client facing description, or an empty string.
func Description(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.description
	}

	return ""
}
