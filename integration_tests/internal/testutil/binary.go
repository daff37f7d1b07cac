package testutil

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

// GetAmazeBinaryPath returns the path to the amaze binary for integration tests.
// It checks multiple locations in order of preference:
// 1. Current directory (./amaze)
// 2. Parent directory (../amaze) - where 'go build -o amaze .' puts it
// 3. bin directory (../bin/amaze)
func GetAmazeBinaryPath() string {
	if _, err := os.Stat("amaze"); err == nil {
		return "./amaze"
	}

	if _, err := os.Stat("../amaze"); err == nil {
		return "../amaze"
	}

	binPath := filepath.Join("..", "bin", "amaze")
	if _, err := os.Stat(binPath); err == nil {
		return binPath
	}

	// Default to current directory (will fail if binary doesn't exist)
	return "./amaze"
}

// RunResult holds the outcome of one binary invocation.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunAmaze runs the amaze binary with args and an isolated environment.
func RunAmaze(t *testing.T, env []string, args ...string) RunResult {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cmd := exec.CommandContext(ctx, GetAmazeBinaryPath(), args...)
	cmd.Env = append([]string{"PATH=" + os.Getenv("PATH")}, env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := RunResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("failed to run amaze: %v", err)
	}
	return result
}
