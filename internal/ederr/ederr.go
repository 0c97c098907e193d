// Package ederr defines the editor's typed error kinds. It builds on
// the standard library's errors/fmt wrapping rather than a third-party
// errors package: none of the retrieved examples import one
// (github.com/pkg/errors does not appear anywhere in the pack), so
// %w-wrapping plus errors.Is/As is the idiom to follow here.
package ederr

import (
	"errors"
	"fmt"
)

// Kind classifies an Error by what went wrong.
type Kind int

const (
	NotFound Kind = iota
	ParseError
	TypeMismatch
	IndexOutOfRange
	IoError
	Cancelled
	Shadow
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case ParseError:
		return "parse_error"
	case TypeMismatch:
		return "type_mismatch"
	case IndexOutOfRange:
		return "index_out_of_range"
	case IoError:
		return "io_error"
	case Cancelled:
		return "cancelled"
	case Shadow:
		return "shadow"
	default:
		return "unknown"
	}
}

// Error pairs a Kind with a message and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error with no wrapped cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap builds an *Error that wraps cause, preserving it for
// errors.Is/errors.As.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err is an *Error of the given Kind, unwrapping
// through any chain fmt.Errorf("%w", ...) built.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
