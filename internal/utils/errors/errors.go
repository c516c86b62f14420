// Package errors provides enhanced error handling with error codes,
// metadata, and stack traces for the garden planner engine.
package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/urban-gardening-assistant/planner-engine/pkg/constants"
)

// customError implements enhanced error handling with metadata and stack
// trace support.
type customError struct {
	originalError error
	code          string
	metadata      map[string]interface{}
	stackTrace    []string
}

// Error implements the error interface with formatted output.
func (e *customError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %v", e.code, e.originalError))

	if len(e.metadata) > 0 {
		b.WriteString(fmt.Sprintf("\nMetadata: %+v", e.metadata))
	}
	if len(e.stackTrace) > 0 {
		b.WriteString("\nStack Trace:\n\t")
		b.WriteString(strings.Join(e.stackTrace, "\n\t"))
	}
	return b.String()
}

// Unwrap implements error unwrapping while preserving context.
func (e *customError) Unwrap() error {
	return e.originalError
}

func generateStackTrace(skip int) []string {
	var trace []string
	for i := skip; i < skip+5; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		trace = append(trace, fmt.Sprintf("%s:%d %s", file, line, fn.Name()))
	}
	return trace
}

// NewError creates a new error instance with complete context.
func NewError(code, message string, metadata map[string]interface{}) error {
	if code == "" || message == "" {
		return constants.NewError(constants.ErrInternal, "error code and message are required")
	}

	return &customError{
		originalError: errors.New(message),
		code:          code,
		metadata:      metadata,
		stackTrace:    generateStackTrace(2),
	}
}

// WrapError wraps an existing error with additional context, preserving its
// code, metadata, and stack trace when the source is a customError.
func WrapError(err error, message string, additionalMetadata map[string]interface{}) error {
	if err == nil {
		return nil
	}

	var existing *customError
	code := constants.ErrInternal
	metadata := make(map[string]interface{})
	var stack []string

	if errors.As(err, &existing) {
		code = existing.code
		for k, v := range existing.metadata {
			metadata[k] = v
		}
		stack = existing.stackTrace
	}
	for k, v := range additionalMetadata {
		metadata[k] = v
	}

	newStack := generateStackTrace(2)
	if len(stack) > 0 {
		newStack = append(newStack, stack...)
	}

	return &customError{
		originalError: fmt.Errorf("%s: %w", message, err),
		code:          code,
		metadata:      metadata,
		stackTrace:    newStack,
	}
}

// GetCode extracts the error code from an error, falling back to parsing a
// "[CODE] ..." prefixed string error.
func GetCode(err error) string {
	if err == nil {
		return ""
	}

	var ce *customError
	if errors.As(err, &ce) {
		return ce.code
	}

	s := err.Error()
	if strings.HasPrefix(s, "[") {
		if idx := strings.Index(s, "]"); idx > 0 {
			return s[1:idx]
		}
	}
	return constants.ErrInternal
}

// Is reports whether err carries the given error code.
func Is(err error, code string) bool {
	if err == nil || code == "" {
		return false
	}
	return GetCode(err) == code
}

// IsSystemError reports whether err represents an internal/catalogue/
// evaluation failure, as opposed to a user-facing validation error.
func IsSystemError(err error) bool {
	switch GetCode(err) {
	case constants.ErrInternal, constants.ErrCatalogue, constants.ErrEvaluation:
		return true
	default:
		return false
	}
}
