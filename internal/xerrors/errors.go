package xerrors

import (
	"errors"
)

// ErrBlank marks input that is empty once surrounding whitespace is removed.
var ErrBlank = errors.New("blank input")

type Error struct {
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Blank reports that field held no usable text.
func Blank(field string, opts ...Option) *Error {
	return newErr(field, append([]Option{WithCause(ErrBlank)}, opts...))
}

// Invalid reports a field value that could not be used.
func Invalid(field string, opts ...Option) *Error {
	return newErr(field, opts)
}

func newErr(field string, opts []Option) *Error {
	e := &Error{Field: field, Message: "invalid value"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// IsBlank reports whether err was caused by blank input.
func IsBlank(err error) bool {
	return errors.Is(err, ErrBlank)
}
