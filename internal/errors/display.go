package errors

import (
	"fmt"
	"strings"
)

// DisplayError formats an error for user-friendly display
func DisplayError(err error) string {
	if solverErr, ok := As(err); ok {
		return solverErr.Error()
	}

	return fmt.Sprintf("Error: %v", err)
}

// DisplayErrorSummary provides a brief summary of the error for logs
func DisplayErrorSummary(err error) string {
	if solverErr, ok := As(err); ok {
		return fmt.Sprintf("%s-%s: %s", solverErr.Category, solverErr.Code, solverErr.Message)
	}

	errStr := err.Error()
	if len(errStr) > 100 {
		return errStr[:97] + "..."
	}
	return errStr
}

// FormatForCLI formats an error for command-line display with proper spacing
func FormatForCLI(err error) string {
	solverErr, ok := As(err)
	if !ok {
		return fmt.Sprintf("\nError: %v\n", err)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n%s Error [%s-%s]\n",
		string(solverErr.Category), solverErr.Category, solverErr.Code))
	sb.WriteString(fmt.Sprintf("  %s\n", solverErr.Message))

	if solverErr.Operation != "" {
		sb.WriteString(fmt.Sprintf("\nFailed Operation: %s\n", solverErr.Operation))
	}

	if len(solverErr.Context) > 0 {
		sb.WriteString("\nDetails:\n")
		for _, key := range solverErr.contextKeys() {
			sb.WriteString(fmt.Sprintf("  %s: %v\n", key, solverErr.Context[key]))
		}
	}

	if len(solverErr.Troubleshooting) > 0 {
		sb.WriteString("\nHow to resolve:\n")
		for i, step := range solverErr.Troubleshooting {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, step))
		}
	}

	if solverErr.OriginalError != nil {
		sb.WriteString(fmt.Sprintf("\nTechnical details: %v\n", solverErr.OriginalError))
	}

	return sb.String()
}
