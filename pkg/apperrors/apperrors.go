// Package apperrors defines the error kinds shared by the agents, the
// memory store and the HTTP layer. Kinds are sentinel errors so callers
// can classify failures with errors.Is without depending on message text.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks caller-supplied data violating a precondition
	// (empty transcript, empty query, unknown persona). Mapped to 400.
	ErrInvalidInput = errors.New("invalid input")

	// ErrModelInitialization marks a failure to construct the LLM client,
	// e.g. a missing API key.
	ErrModelInitialization = errors.New("model initialization failed")

	// ErrStructuredOutput marks model output that could not be coerced into
	// the expected schema after the bounded retry, or empty content where a
	// response was required.
	ErrStructuredOutput = errors.New("structured output error")

	// ErrMemoryExtraction wraps unexpected failures inside the extraction
	// pipeline.
	ErrMemoryExtraction = errors.New("memory extraction failed")

	// ErrPersonalityGeneration wraps unexpected failures inside response
	// generation.
	ErrPersonalityGeneration = errors.New("personality generation failed")

	// ErrStore marks a persistence layer failure.
	ErrStore = errors.New("store error")

	// ErrNotFound marks a missing record where one was requested by key.
	// Mapped to 404.
	ErrNotFound = errors.New("not found")
)

// Error carries a kind alongside an optional cause and context message.
type Error struct {
	kind  error
	cause error
	msg   string
}

// New builds a typed error of the given kind.
func New(kind error, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and context to an underlying cause. A nil cause
// yields the same result as New.
func Wrap(kind error, cause error, format string, args ...any) *Error {
	return &Error{kind: kind, cause: cause, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.kind.Error(), e.msg, e.cause.Error())
	}
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.msg)
}

// Is reports whether target matches this error's kind, so that
// errors.Is(err, apperrors.ErrInvalidInput) works through wrapping.
func (e *Error) Is(target error) bool {
	return errors.Is(e.kind, target)
}

func (e *Error) Unwrap() error {
	return e.cause
}
