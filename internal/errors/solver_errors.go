package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCategory represents the category of error
type ErrorCategory string

const (
	// ErrorCategoryConfiguration represents invalid solver settings
	ErrorCategoryConfiguration ErrorCategory = "CONFIGURATION"
	// ErrorCategoryMaze represents malformed or unreadable mazes
	ErrorCategoryMaze ErrorCategory = "MAZE"
	// ErrorCategorySearch represents search outcomes surfaced to the user
	ErrorCategorySearch ErrorCategory = "SEARCH"
	// ErrorCategoryInternal represents defects surfaced by collaborators
	ErrorCategoryInternal ErrorCategory = "INTERNAL"
)

// SolverError represents a structured error with context and troubleshooting information
type SolverError struct {
	Category        ErrorCategory
	Code            string
	Message         string
	Operation       string
	Context         map[string]interface{}
	Troubleshooting []string
	OriginalError   error
}

// Error implements the error interface
func (e *SolverError) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s-%s: %s", e.Category, e.Code, e.Message))

	if e.Operation != "" {
		sb.WriteString(fmt.Sprintf("\nOperation: %s", e.Operation))
	}

	if len(e.Context) > 0 {
		sb.WriteString("\nContext:")
		for _, key := range e.contextKeys() {
			sb.WriteString(fmt.Sprintf("\n  %s: %v", key, e.Context[key]))
		}
	}

	if len(e.Troubleshooting) > 0 {
		sb.WriteString("\nTroubleshooting:")
		for i, step := range e.Troubleshooting {
			sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, step))
		}
	}

	if e.OriginalError != nil {
		sb.WriteString(fmt.Sprintf("\nUnderlying error: %v", e.OriginalError))
	}

	return sb.String()
}

// Unwrap returns the original error for error chain compatibility
func (e *SolverError) Unwrap() error {
	return e.OriginalError
}

// contextKeys returns the context keys in stable order
func (e *SolverError) contextKeys() []string {
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewSolverError creates a new solver error with the specified parameters
func NewSolverError(category ErrorCategory, code, message, operation string) *SolverError {
	return &SolverError{
		Category:        category,
		Code:            code,
		Message:         message,
		Operation:       operation,
		Context:         make(map[string]interface{}),
		Troubleshooting: []string{},
	}
}

// WithContext adds context information to the error
func (e *SolverError) WithContext(key string, value interface{}) *SolverError {
	e.Context[key] = value
	return e
}

// WithTroubleshooting adds troubleshooting steps to the error
func (e *SolverError) WithTroubleshooting(steps ...string) *SolverError {
	e.Troubleshooting = append(e.Troubleshooting, steps...)
	return e
}

// WithOriginalError adds the original error to the solver error
func (e *SolverError) WithOriginalError(err error) *SolverError {
	e.OriginalError = err
	return e
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(code, message, operation string) *SolverError {
	return NewSolverError(ErrorCategoryConfiguration, code, message, operation)
}

// NewMazeError creates a new maze error
func NewMazeError(code, message, operation string) *SolverError {
	return NewSolverError(ErrorCategoryMaze, code, message, operation)
}

// NewSearchError creates a new search error
func NewSearchError(code, message, operation string) *SolverError {
	return NewSolverError(ErrorCategorySearch, code, message, operation)
}

// NewInternalError creates a new internal error
func NewInternalError(code, message, operation string) *SolverError {
	return NewSolverError(ErrorCategoryInternal, code, message, operation)
}

// As reports whether err wraps a *SolverError and returns it.
func As(err error) (*SolverError, bool) {
	var solverErr *SolverError
	if stderrors.As(err, &solverErr) {
		return solverErr, true
	}
	return nil, false
}
