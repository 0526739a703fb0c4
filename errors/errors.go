// Package errors provides error handling for catena.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Assertion errors for contract violations
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotComposable) {
//	    // the path has no composite in this theory
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions and panics
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Common sentinel errors for use across catena.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates the requested generator or table entry does not exist
	ErrNotFound = New("not found")

	// ErrNotComposable indicates a path of morphism types has no composite in
	// the theory. This is ordinary partiality, not a bug: callers must treat
	// it as a recoverable outcome.
	ErrNotComposable = New("not composable")

	// ErrIllTyped indicates an operation was applied to arguments whose types
	// do not line up (for example, a morphism whose source does not match the
	// previous target in a path)
	ErrIllTyped = New("ill-typed")

	// ErrMalformedDefinition indicates a theory definition file failed
	// validation
	ErrMalformedDefinition = New("malformed definition")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsNotComposableError checks if an error is or wraps ErrNotComposable.
func IsNotComposableError(err error) bool {
	return err != nil && Is(err, ErrNotComposable)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewNotComposableError creates a not-composable error with a formatted message
func NewNotComposableError(format string, args ...interface{}) error {
	return Wrap(ErrNotComposable, Newf(format, args...).Error())
}
