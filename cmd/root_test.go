package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	solvererrors "github.com/maxkimambo/amaze/internal/errors"
	"github.com/maxkimambo/amaze/internal/logger"
)

func TestReportError(t *testing.T) {
	tests := []struct {
		name       string
		quiet      bool
		err        error
		wantReport string
		wantLog    []string
	}{
		{
			name:       "critical error is logged even when quiet",
			quiet:      true,
			err:        solvererrors.NewTaskPanicError("boom"),
			wantReport: "[INTERNAL-001]",
			wantLog:    []string{"INTERNAL-001: Search task panicked: boom", "severity=CRITICAL"},
		},
		{
			name:       "no path is only reported",
			quiet:      true,
			err:        solvererrors.NewNoPathError(0, 3),
			wantReport: "[SEARCH-001]",
		},
		{
			name:       "user error summary in verbose mode",
			err:        solvererrors.NewInvalidSettingError("workers", -1, "must be between 0 and 4096"),
			wantReport: "[CONFIGURATION-001]",
			wantLog:    []string{"code=CONFIGURATION-001", "severity=WARNING"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger.Setup(!tt.quiet, false, tt.quiet)
			defer logger.Setup(false, false, false)

			var user, op, report bytes.Buffer
			logger.SetOutputs(&user, &op)

			reportError(&report, tt.err)

			assert.Contains(t, report.String(), tt.wantReport)
			assert.Empty(t, user.String())
			if len(tt.wantLog) == 0 {
				assert.Empty(t, op.String())
			}
			for _, want := range tt.wantLog {
				assert.Contains(t, op.String(), want)
			}
		})
	}
}
