package ca

import (
	"errors"
	"fmt"
)

var (
	ErrNotInitialized         = errors.New("certificate manager not initialized")
	ErrAlreadyExists          = errors.New("already exists")
	ErrRootCANotFound         = errors.New("root CA not found")
	ErrIntermediateCANotFound = errors.New("intermediate CA not found")
	ErrNotFound               = errors.New("not found")
	ErrInvalidInput           = errors.New("invalid input")
)

// ErrorKind categorizes errors for status mapping at the API edge.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindInvalidInput
	KindConflict
	KindInternal
)

// CAError wraps a sentinel with the operation that produced it.
type CAError struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *CAError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *CAError) Unwrap() error {
	return e.Err
}

func newError(op string, kind ErrorKind, err error) *CAError {
	return &CAError{Op: op, Kind: kind, Err: err}
}

func notFound(op string, format string, args ...any) error {
	return newError(op, KindNotFound, fmt.Errorf("%w: "+format, append([]any{ErrNotFound}, args...)...))
}

func invalidInput(op string, format string, args ...any) error {
	return newError(op, KindInvalidInput, fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...))
}

// KindOf reports the ErrorKind of err.
func KindOf(err error) ErrorKind {
	var caErr *CAError
	if errors.As(err, &caErr) {
		return caErr.Kind
	}
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrRootCANotFound),
		errors.Is(err, ErrIntermediateCANotFound),
		errors.Is(err, ErrNotInitialized):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	case errors.Is(err, ErrAlreadyExists):
		return KindConflict
	}
	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsInvalidInput(err error) bool {
	return KindOf(err) == KindInvalidInput
}

func IsConflict(err error) bool {
	return KindOf(err) == KindConflict
}
