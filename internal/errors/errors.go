package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

const (
	// ErrCodeAlreadyRegistered indicates a name already exists in a namespace.
	ErrCodeAlreadyRegistered ErrorCode = "ALREADY_REGISTERED"
	// ErrCodeNotFound indicates an unknown category, component, strategy or key.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeNotWired indicates a build was attempted on a component with no linked strategy.
	ErrCodeNotWired ErrorCode = "NOT_WIRED"
	// ErrCodeCycle indicates a build path revisited one of its ancestors.
	ErrCodeCycle ErrorCode = "CYCLE"
	// ErrCodeTypeMismatch indicates a produced value does not satisfy the declared output type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeInvalidReference indicates a dependency reference that does not parse.
	ErrCodeInvalidReference ErrorCode = "INVALID_REFERENCE"
	// ErrCodeInvalidArgument indicates malformed registration input.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeStrategyFailed indicates a strategy body returned an error.
	ErrCodeStrategyFailed ErrorCode = "STRATEGY_FAILED"
)

// Sentinels for errors.Is. Matching is by code only.
var (
	ErrAlreadyRegistered = New(ErrCodeAlreadyRegistered, "already registered")
	ErrNotFound          = New(ErrCodeNotFound, "not found")
	ErrNotWired          = New(ErrCodeNotWired, "no strategy linked")
	ErrCycle             = New(ErrCodeCycle, "cyclic dependency")
	ErrTypeMismatch      = New(ErrCodeTypeMismatch, "type mismatch")
	ErrInvalidReference  = New(ErrCodeInvalidReference, "invalid reference")
	ErrInvalidArgument   = New(ErrCodeInvalidArgument, "invalid argument")
	ErrStrategyFailed    = New(ErrCodeStrategyFailed, "strategy failed")
)

// ContextKeyChain is the Context key holding the ordered cycle chain.
const ContextKeyChain = "chain"

// StructuredError provides structured error information: a code for
// programmatic handling, a human-readable message, the underlying cause,
// and optional context for diagnostics.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StructuredError with the same code.
func (e *StructuredError) Is(target error) bool {
	t, ok := target.(*StructuredError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// Newf is New with a format string.
func Newf(code ErrorCode, format string, args ...any) *StructuredError {
	return New(code, fmt.Sprintf(format, args...))
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// NewCycle builds a cycle error from the ordered chain of keys, where the
// last element repeats an earlier one.
func NewCycle(chain []string) *StructuredError {
	c := make([]string, len(chain))
	copy(c, chain)
	return NewWithContext(ErrCodeCycle,
		"circular dependency is found: "+strings.Join(c, " → "),
		map[string]any{ContextKeyChain: c})
}

// CodeOf returns the code of the outermost StructuredError in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code, true
	}
	return "", false
}

// CycleChain extracts the dependency chain from the first cycle error in
// err's tree, including errors combined with errors.Join.
func CycleChain(err error) ([]string, bool) {
	if err == nil {
		return nil, false
	}
	if se, ok := err.(*StructuredError); ok && se.Code == ErrCodeCycle {
		chain, ok := se.Context[ContextKeyChain].([]string)
		return chain, ok
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if chain, ok := CycleChain(e); ok {
				return chain, true
			}
		}
	case interface{ Unwrap() error }:
		return CycleChain(u.Unwrap())
	}
	return nil, false
}
