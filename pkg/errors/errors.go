// Package errors defines AppError, the one structured error type every layer
// of SLA-Sentinel returns.  A typed code travels with each error so handlers
// can map failures to HTTP statuses and loggers can label them without string
// matching.
package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const stackDepth = 32

// captureStack renders the call stack above the factory that invoked it,
// dropping runtime frames so traces stay short.
func captureStack(skip int) string {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		f, more := frames.Next()
		if !strings.Contains(f.File, "runtime/") {
			fmt.Fprintf(&sb, "\n\t%s:%d %s", f.File, f.Line, f.Function)
		}
		if !more {
			break
		}
	}
	return sb.String()
}

// ─────────────────────────────────────────────────────────────────────────────
// AppError
// ─────────────────────────────────────────────────────────────────────────────

// AppError pairs a message with a typed ErrorCode and an optional cause.
// It participates in errors.Is/As/Unwrap chains like any wrapped error.
//
//	return errors.New(errors.ErrCodeFindingNotFound, "finding FND-2024-0113 not found")
//	return errors.Wrap(repoErr, errors.ErrCodeDatabaseError, "failed to query findings")
type AppError struct {
	// Code classifies the failure; see codes.go for the full registry.
	Code ErrorCode

	// Message is what API callers see.
	Message string

	// Detail adds debugging context (IDs, parameters) that is safe to expose.
	Detail string

	// Cause is the wrapped lower-layer error, if any.
	Cause error

	// Stack is captured at construction.  Error() deliberately leaves it out;
	// logging middleware reads the field when it wants a trace.
	Stack string
}

// Error renders "[CODE] message" with ": detail" appended when Detail is set.
func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code.String(), e.Message, e.Detail)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes Cause to the errors package traversal.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail clones the error with Detail set; the receiver is untouched.
// Nil-safe.
func (e *AppError) WithDetail(detail string) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Detail = detail
	return &clone
}

// WithCause clones the error with Cause set; the receiver is untouched.
func (e *AppError) WithCause(err error) *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Cause = err
	return &clone
}

// ─────────────────────────────────────────────────────────────────────────────
// Factories
// ─────────────────────────────────────────────────────────────────────────────

func build(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Stack:   captureStack(2),
	}
}

// New creates an AppError with no underlying cause, for failures that
// originate in the calling layer.
func New(code ErrorCode, message string) *AppError {
	return build(code, message, nil)
}

// Wrap attaches code and message around err.  A nil err yields nil, so the
// call composes inline with returns.  Passing CodeUnknown keeps the code of
// an *AppError already in the chain, so re-wrapping for context never erases
// the original classification.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	if code == CodeUnknown {
		var ae *AppError
		if errors.As(err, &ae) {
			code = ae.Code
		}
	}
	return build(code, message, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// Chain inspection
// ─────────────────────────────────────────────────────────────────────────────

// IsCode walks err's chain looking for an *AppError carrying code:
//
//	if errors.IsCode(err, errors.ErrCodeRunInProgress) { ... }
func IsCode(err error, code ErrorCode) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) && ae.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// IsNotFound matches any of the not-found codes: the generic ErrCodeNotFound
// plus the policy, finding and profile variants.
func IsNotFound(err error) bool {
	var ae *AppError
	for err != nil {
		if errors.As(err, &ae) {
			switch ae.Code {
			case ErrCodeNotFound, ErrCodePolicyNotFound, ErrCodeFindingNotFound, ErrCodeProfileNotFound:
				return true
			}
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode returns the code of the first *AppError in err's chain, CodeOK for
// nil, and CodeUnknown when no AppError is present.  Handlers and metric
// labels key off this.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}

// ─────────────────────────────────────────────────────────────────────────────
// Shorthand constructors
// ─────────────────────────────────────────────────────────────────────────────

// NotFound builds a generic not-found error.  Repository code should prefer
// the SLA_/FND_/PRF_ specific codes; this form suits router-level 404s.
func NotFound(message string) *AppError { return build(ErrCodeNotFound, message, nil) }

// InvalidParam builds an ErrCodeBadRequest error.
func InvalidParam(message string) *AppError { return build(ErrCodeBadRequest, message, nil) }

// InvalidState builds an ErrCodeConflict error for domain invariant breaches.
func InvalidState(message string) *AppError { return build(ErrCodeConflict, message, nil) }

// Internal builds an ErrCodeInternal error for unexpected server-side
// failures with no better code.
func Internal(message string) *AppError { return build(ErrCodeInternal, message, nil) }

// Conflict builds an ErrCodeConflict error.
func Conflict(message string) *AppError { return build(ErrCodeConflict, message, nil) }

//Personal.AI order the ending
