// Package errors wraps github.com/go-errors/errors so every failure
// carries a stack trace from the point it was first wrapped.
package errors

import (
	"runtime"

	errorsGo "github.com/go-errors/errors"
)

// Error carries a message plus the call stack of its creation site.
type Error = errorsGo.Error

// New wraps obj into an *Error with a stack trace. It returns nil for
// nil input and passes already-wrapped errors through unchanged, so
// the recorded origin of a failure survives rewrapping on the way up.
func New(obj any) *Error {
	if obj == nil {
		return nil
	}
	if errGo, ok := obj.(*errorsGo.Error); ok {
		return errGo
	}
	return errorsGo.Wrap(obj, 1)
}

func Errorf(format string, a ...any) *Error { return errorsGo.Errorf(format, a...) }

func Wrap(e any, skip int) *Error { return errorsGo.Wrap(e, skip+1) }

func WrapPrefix(e any, prefix string, skip int) *Error {
	return errorsGo.WrapPrefix(e, prefix, skip)
}

func Is(err, target error) bool { return errorsGo.Is(err, target) }

func As(err error, target any) bool { return errorsGo.As(err, target) }

func Unwrap(err error) error { return errorsGo.Unwrap(err) }

// NilReceiver returns an error naming the calling function when any
// argument is nil, else nil.
func NilReceiver(args ...any) error {
	return nilTester(`nil receiver or struct field`, args...)
}

// NilParam returns an error naming the calling function when any
// argument is nil, else nil.
func NilParam(args ...any) error {
	return nilTester(`nil parameter`, args...)
}

func nilTester(msg string, args ...any) error {
	for i := range args {
		if args[i] != nil {
			continue
		}
		pc, _, _, ok := runtime.Caller(2)
		if !ok {
			return errorsGo.Wrap(msg, 2)
		}
		return errorsGo.Wrap(msg+`: `+runtime.FuncForPC(pc).Name()+`()`, 2)
	}
	return nil
}
