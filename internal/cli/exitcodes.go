package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/lanekit/internal/config"
	"github.com/thenoetrevino/lanekit/internal/models"
	boardservice "github.com/thenoetrevino/lanekit/internal/services/board"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a general error occurred.
	// Use for: Database errors, I/O errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitFailure = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Lane not found, item not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable column files, unsupported file formats.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, out of range indexes, duplicate keys.
	ExitValidation = 5
)

// ExitError carries the process exit code for a failed command.
// The message has already been reported through the OutputFormatter.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps an error returned by a command to its exit code
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, models.ErrLaneNotFound),
		errors.Is(err, models.ErrItemNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrInvalidIndex),
		errors.Is(err, models.ErrDuplicateLane),
		errors.Is(err, models.ErrDuplicateItem),
		errors.Is(err, boardservice.ErrEmptyTitle),
		errors.Is(err, boardservice.ErrTitleTooLong),
		errors.Is(err, boardservice.ErrEmptyKey),
		errors.Is(err, boardservice.ErrNoChanges):
		return ExitValidation
	case errors.Is(err, config.ErrUnsupportedFormat),
		errors.Is(err, config.ErrUnknownColumn):
		return ExitDataErr
	}
	return ExitFailure
}

// errorCode returns the machine-readable code reported in JSON output
func errorCode(err error) string {
	switch {
	case errors.Is(err, models.ErrLaneNotFound):
		return "LANE_NOT_FOUND"
	case errors.Is(err, models.ErrItemNotFound):
		return "ITEM_NOT_FOUND"
	case errors.Is(err, models.ErrInvalidIndex):
		return "INVALID_INDEX"
	case errors.Is(err, models.ErrDuplicateLane), errors.Is(err, models.ErrDuplicateItem):
		return "DUPLICATE_KEY"
	case errors.Is(err, config.ErrUnsupportedFormat):
		return "UNSUPPORTED_FORMAT"
	case errors.Is(err, config.ErrUnknownColumn):
		return "UNKNOWN_COLUMN"
	}

	switch ExitCodeFor(err) {
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	}
	return "ERROR"
}

// Fail reports err through the formatter and returns an ExitError with the
// matching exit code.
func (f *OutputFormatter) Fail(err error) error {
	return f.FailWithSuggestion(err, "")
}

// FailWithSuggestion is Fail with a hint for the user
func (f *OutputFormatter) FailWithSuggestion(err error, suggestion string) error {
	if fmtErr := f.ErrorWithSuggestion(errorCode(err), err.Error(), suggestion); fmtErr != nil {
		return fmtErr
	}
	return &ExitError{Code: ExitCodeFor(err), Err: err}
}

// Usage reports a usage error and returns it with ExitUsage
func (f *OutputFormatter) Usage(message string) error {
	err := errors.New(message)
	if fmtErr := f.Error("USAGE_ERROR", message); fmtErr != nil {
		return fmtErr
	}
	return &ExitError{Code: ExitUsage, Err: err}
}
