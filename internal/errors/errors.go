package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is the error type returned across pokelookup. Message is what the
// user sees; Cause keeps the underlying failure for logs and errors.Is.
type Error struct {
	Code    Code                   `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithMeta sets a metadata entry and returns e
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// WithTip attaches a remediation hint shown under the message
func (e *Error) WithTip(tip string) *Error {
	return e.WithMeta(MetaTip, tip)
}

// WithSuggestion attaches the closest known spelling of the subject
func (e *Error) WithSuggestion(slug string) *Error {
	return e.WithMeta(MetaSuggestion, slug)
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap replaces the message of err, keeping its code and metadata when it
// is an *Error. Anything else becomes CodeInternal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Code:    existing.Code,
			Message: message,
			Cause:   err,
			Meta:    maps.Clone(existing.Meta),
		}
	}
	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a new code. Metadata of a wrapped *Error is
// copied so hints added later do not leak into the cause.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	meta := make(map[string]interface{})
	var existing *Error
	if errors.As(err, &existing) {
		for k, v := range existing.Meta {
			meta[k] = v
		}
	}

	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
		Meta:    meta,
	}
}

// WrapWithCodef is WrapWithCode with a formatted message
func WrapWithCodef(err error, code Code, format string, args ...interface{}) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// NotFound reports an unknown subject
func NotFound(message string) *Error { return New(CodeNotFound, message) }

// NotFoundf reports an unknown subject
func NotFoundf(format string, args ...interface{}) *Error {
	return newf(CodeNotFound, format, args...)
}

// InvalidArgument reports bad user input or configuration
func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

// InvalidArgumentf reports bad user input or configuration
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return newf(CodeInvalidArgument, format, args...)
}

// Internal reports a bug or local storage failure
func Internal(message string) *Error { return New(CodeInternal, message) }

// Unavailable reports an upstream fetch that did not succeed
func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

// Unavailablef reports an upstream fetch that did not succeed
func Unavailablef(format string, args ...interface{}) *Error {
	return newf(CodeUnavailable, format, args...)
}

// DataLoss reports an upstream body that does not have the expected shape
func DataLoss(message string) *Error { return New(CodeDataLoss, message) }
