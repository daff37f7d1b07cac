package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	solvererrors "github.com/maxkimambo/amaze/internal/errors"
	"github.com/maxkimambo/amaze/internal/logger"
	"github.com/spf13/cobra"
)

var (
	debug    bool
	verbose  bool
	jsonLogs bool
	quiet    bool
	version  = "v0.1.0"

	rootCmd = newRootCmd()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "amaze",
		Short: "A parallel maze solver",
		Long: `A CLI tool that finds a path from the start to a goal of a maze using a parallel
depth-first search that forks a task at every branching point.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(verbose || debug, jsonLogs, quiet)
			logger.SetOutputs(cmd.OutOrStdout(), cmd.ErrOrStderr())
			if debug {
				logger.Op.Debug("Debug logging enabled")
			}
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Output logs in JSON format")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")

	root.AddCommand(newSolveCmd())
	return root
}

// Execute runs the root command and prints any error for the user.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(os.Stderr, err)
	}
	return err
}

// reportError logs a one-line summary of err and prints the full report to
// w. Critical errors are logged even in quiet mode.
func reportError(w io.Writer, err error) {
	severity := solvererrors.GetErrorSeverity(err)
	entry := logger.Op.WithFields(map[string]interface{}{
		"code":     solvererrors.GetErrorCode(err),
		"severity": severity,
	})
	if severity == "CRITICAL" {
		entry.Error(solvererrors.DisplayErrorSummary(err))
	} else {
		entry.Debug(solvererrors.DisplayErrorSummary(err))
	}

	fmt.Fprint(w, solvererrors.FormatForCLI(err))
}
