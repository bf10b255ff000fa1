// Package serrors implements semantic error kinds: comparable sentinel
// values that categorize a failure while still carrying a human-readable
// message and, optionally, a wrapped cause. Both the kind and the cause
// remain reachable through errors.Is and errors.As.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel category for an error. Kinds are comparable, so two
// errors belong to the same category exactly when they carry the same Kind
// value.
type Kind interface {
	error
	kind()
}

type sentinel struct{ name string }

func (s sentinel) Error() string { return s.name }
func (s sentinel) kind()         {}

// NewKind returns a fresh sentinel with the given name. The name is what
// Error() reports for errors built with KindOnly.
func NewKind(name string) Kind { return sentinel{name: name} }

// Error couples a Kind with an optional message and an optional wrapped
// cause.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// With builds an error of the given kind with a formatted message.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an error of the given kind that wraps cause and adds a
// formatted message.
func Wrap(k Kind, cause error, format string, args ...any) *Error {
	return &Error{kind: k, err: cause, msg: fmt.Sprintf(format, args...)}
}

// KindOnly builds an error carrying just the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	}

	return "unknown error"
}

// Unwrap exposes the wrapped cause to the errors package.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel as well as the cause chain,
// so errors.Is works for both.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As matches target against the kind sentinel as well as the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the sentinel carried by e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to e.
func (e *Error) Message() string { return e.msg }
