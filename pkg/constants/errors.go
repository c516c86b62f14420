// Package constants provides centralized error codes and domain enumerations
// used throughout the garden planner engine.
package constants

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error codes for common failure scenarios
const (
	// ErrValidation represents malformed or out-of-range request fields
	ErrValidation = "VALIDATION_ERROR"

	// ErrCatalogue represents catalogue or compatibility index unavailability
	ErrCatalogue = "CATALOGUE_ERROR"

	// ErrEvaluation represents a fitness-metric invariant violation
	ErrEvaluation = "EVALUATION_ERROR"

	// ErrInternal represents an unexpected internal failure
	ErrInternal = "INTERNAL_SERVER_ERROR"

	// ErrNotFound represents a missing resource (plant id, garden id, etc.)
	ErrNotFound = "NOT_FOUND"
)

// validErrorCodes enumerates the codes accepted by NewError
var validErrorCodes = map[string]bool{
	ErrValidation: true,
	ErrCatalogue:  true,
	ErrEvaluation: true,
	ErrInternal:   true,
	ErrNotFound:   true,
}

// NewError builds a standardized "[CODE] message" error string.
func NewError(code, message string) error {
	if code == "" {
		return errors.New("[INTERNAL_SERVER_ERROR] error code cannot be empty")
	}
	if message == "" {
		return errors.New("[INTERNAL_SERVER_ERROR] error message cannot be empty")
	}
	if !validErrorCodes[code] {
		return fmt.Errorf("[INTERNAL_SERVER_ERROR] invalid error code: %s", code)
	}
	return fmt.Errorf("[%s] %s", code, message)
}

// WrapError preserves the original error's code while adding context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	if message == "" {
		return err
	}

	code := ErrInternal
	errStr := err.Error()
	if strings.HasPrefix(errStr, "[") {
		if idx := strings.Index(errStr, "]"); idx > 0 {
			code = errStr[1:idx]
		}
	}

	return fmt.Errorf("[%s] %s: %w", code, message, err)
}
