// Package domainerrors defines coded errors for the public API surface.
//
// Services and handlers communicate failure through these codes; transports
// map them onto their own status vocabulary. Infra layers return sentinel
// errors (pkg/platform/sentinel) instead and services translate at the
// boundary.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code identifies the class of a domain error.
type Code string

const (
	// CodeValidation marks a malformed or incomplete input the caller must
	// correct. Required fields are never silently defaulted.
	CodeValidation Code = "validation"
	// CodeInvalidInput marks a single field that failed enum or format
	// validation at a trust boundary.
	CodeInvalidInput Code = "invalid_input"
	// CodeBadRequest marks a request that could not be parsed at all.
	CodeBadRequest Code = "bad_request"
	// CodeNotFound marks a referenced assessment or catalog entry that does
	// not exist.
	CodeNotFound Code = "not_found"
	// CodeComputation marks an assessment that was aborted because the
	// engine's inputs were inconsistent (e.g. a catalog entry missing a
	// required field). Nothing partial is returned under this code.
	CodeComputation Code = "computation"
	// CodeInvariantViolation marks a broken internal invariant, such as a
	// weight table that does not sum to one.
	CodeInvariantViolation Code = "invariant_violation"
	// CodeTimeout marks a bounded unit of work that ran out of time.
	CodeTimeout Code = "timeout"
	// CodeInternal marks everything the caller cannot act on.
	CodeInternal Code = "internal"
)

// Error is a coded domain error. Message is safe to return to callers.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a domain error with the given code and message.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying error, preserving the
// chain for errors.Is / errors.As.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// HasCode is an alias of Is kept for readability at call sites that test
// error classes in assertions.
func HasCode(err error, code Code) bool {
	return Is(err, code)
}

// CodeOf extracts the code from err, or CodeInternal when err is not a
// domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
