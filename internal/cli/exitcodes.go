package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/validation"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags or invalid flag values.
	ExitUsage = 2

	// ExitNotFound indicates a requested task or label was not found.
	ExitNotFound = 3

	// ExitValidation indicates the payload failed validation.
	ExitValidation = 5

	// ExitDuplicate indicates a label with the same name already exists.
	ExitDuplicate = 6
)

// UsageError reports a command invoked with wrong flags or arguments
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError from a format string
func Usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// CodedError carries the process exit code for an error that was already
// reported to the user
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string { return e.Err.Error() }
func (e *CodedError) Unwrap() error { return e.Err }

// ExitCode maps an error kind onto an exit code
func ExitCode(err error) int {
	var (
		exitErr  *CodedError
		usageErr *UsageError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.Is(err, validation.ErrValidation):
		return ExitValidation
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrDuplicate):
		return ExitDuplicate
	default:
		return ExitError
	}
}

// ErrorCode returns the machine readable code used in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitValidation:
		return "VALIDATION_FAILED"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDuplicate:
		return "DUPLICATE"
	default:
		return "ERROR"
	}
}
