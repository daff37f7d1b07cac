package errors

import (
	"fmt"
)

// Common error codes
const (
	// Configuration error codes
	CodeConfigInvalid = "001"
	CodeConfigLoad    = "002"

	// Maze error codes
	CodeMazeEmpty       = "001"
	CodeMazeNoStart     = "002"
	CodeMazeManyStarts  = "003"
	CodeMazeUnreadable  = "005"
	CodeMazeUnknownCell = "006"

	// Search error codes
	CodeSearchNoPath    = "001"
	CodeSearchCancelled = "002"

	// Internal error codes
	CodeInternalPanic       = "001"
	CodeInternalReconstruct = "002"
)

// NewInvalidSettingError creates an error for a solver setting outside its range
func NewInvalidSettingError(setting string, value interface{}, reason string) *SolverError {
	return NewConfigurationError(CodeConfigInvalid,
		fmt.Sprintf("Invalid value for %s: %v (%s)", setting, value, reason),
		"Configuration validation").
		WithContext("setting", setting).
		WithContext("value", value).
		WithTroubleshooting(
			"Use --help to see available options and their ranges",
			"Check AMAZE_* environment variables and the config file for overrides",
		)
}

// NewConfigLoadError creates an error for an unreadable config file
func NewConfigLoadError(path string, originalErr error) *SolverError {
	return NewConfigurationError(CodeConfigLoad,
		fmt.Sprintf("Failed to load config file '%s'", path),
		"Configuration loading").
		WithContext("path", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Verify the file exists and is readable",
			"Check the file is valid YAML",
		)
}

// NewMazeUnreadableError creates an error for a maze file that cannot be read
func NewMazeUnreadableError(path string, originalErr error) *SolverError {
	return NewMazeError(CodeMazeUnreadable,
		fmt.Sprintf("Failed to read maze '%s'", path),
		"Maze loading").
		WithContext("path", path).
		WithOriginalError(originalErr).
		WithTroubleshooting(
			"Verify the maze path is correct",
			"Check file permissions",
		)
}

// NewNoPathError creates an error for a search that exhausted every branch
func NewNoPathError(start interface{}, claims int64) *SolverError {
	return NewSearchError(CodeSearchNoPath,
		"No goal is reachable from the start position",
		"Maze search").
		WithContext("start", start).
		WithContext("explored", claims).
		WithTroubleshooting(
			"Check that the maze contains at least one goal cell ('$')",
			"Check that the goal is not walled off from the start cell ('*')",
		)
}

// NewSearchCancelledError creates an error for a search interrupted by its caller
func NewSearchCancelledError(originalErr error) *SolverError {
	return NewSearchError(CodeSearchCancelled,
		"Search was cancelled before a path was found",
		"Maze search").
		WithOriginalError(originalErr)
}

// NewTaskPanicError creates an error for a search task that panicked
func NewTaskPanicError(recovered interface{}) *SolverError {
	return NewInternalError(CodeInternalPanic,
		fmt.Sprintf("Search task panicked: %v", recovered),
		"Maze search").
		WithTroubleshooting(
			"This indicates a defect in the maze implementation; rerun with --debug for details",
		)
}

// IsUserError determines if an error is due to user input/configuration
func IsUserError(err error) bool {
	if solverErr, ok := As(err); ok {
		return solverErr.Category == ErrorCategoryConfiguration ||
			solverErr.Category == ErrorCategoryMaze
	}
	return false
}

// GetErrorCode extracts the error code for reporting
func GetErrorCode(err error) string {
	if solverErr, ok := As(err); ok {
		return fmt.Sprintf("%s-%s", solverErr.Category, solverErr.Code)
	}
	return "UNKNOWN"
}

// GetErrorSeverity returns the severity level of an error
func GetErrorSeverity(err error) string {
	if solverErr, ok := As(err); ok {
		switch solverErr.Category {
		case ErrorCategoryConfiguration, ErrorCategoryMaze:
			return "WARNING"
		case ErrorCategorySearch:
			return "ERROR"
		case ErrorCategoryInternal:
			return "CRITICAL"
		}
	}
	return "ERROR"
}
