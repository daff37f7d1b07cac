package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxkimambo/amaze/internal/config"
	solvererrors "github.com/maxkimambo/amaze/internal/errors"
	"github.com/maxkimambo/amaze/internal/logger"
	"github.com/maxkimambo/amaze/internal/maze"
	"github.com/maxkimambo/amaze/internal/progress"
	"github.com/maxkimambo/amaze/internal/solver"
)

func newSolveCmd() *cobra.Command {
	solveCmd := &cobra.Command{
		Use:   "solve [maze-file]",
		Short: "Find a path from the start to a goal of a grid maze",
		Long: `Find a path from the start cell ('*') to any goal cell ('$') of a grid maze.
Walls are '#', open cells are '.' or ' '.

The search forks a concurrent task at each branching point. --fork-after defers
forking until a task has walked that many cells since its last fork; zero forks
at every branch. --workers bounds how many tasks run at once; --workers 1 gives a
reproducible search.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	defaults := config.Default()
	solveCmd.Flags().StringP("config", "c", "", "Path to a YAML config file (optional)")
	solveCmd.Flags().StringP("maze", "m", defaults.Maze, "Path to the maze file")
	solveCmd.Flags().Int("fork-after", defaults.Search.ForkAfter, "In-line steps a task takes before forking deferred branches (0 forks at every branch)")
	solveCmd.Flags().IntP("workers", "w", defaults.Search.Workers, "Maximum concurrently running search tasks (0 uses one per CPU)")
	solveCmd.Flags().Duration("timeout", defaults.Search.Timeout, "Give up after this long (0 means no limit)")
	solveCmd.Flags().Bool("render", defaults.Output.Render, "Draw the maze with the found path")
	solveCmd.Flags().Bool("trails", defaults.Output.Trails, "Also mark every cell a search task walked")

	return solveCmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		if err := cmd.Flags().Set("maze", args[0]); err != nil {
			return err
		}
	}

	cfg, err := createSolveConfig(cmd)
	if err != nil {
		return err
	}

	grid, err := loadMaze(cfg.Maze)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}

	logger.User.Startingf("Solving %s (%dx%d)", cfg.Maze, grid.Cols(), grid.Rows())
	logger.Op.WithFields(map[string]interface{}{
		"forkAfter": cfg.Search.ForkAfter,
		"workers":   cfg.Search.Workers,
		"timeout":   cfg.Search.Timeout.String(),
	}).Debug("Search settings")

	result, err := solver.New(grid, solver.WithConfig(cfg.Solver())).Solve(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reporter := progress.NewReporter(out)
	if cfg.Output.Render {
		var trails [][]maze.NodeID
		if cfg.Output.Trails {
			trails = grid.Trails()
		}
		fmt.Fprint(out, reporter.RenderGrid(grid, result.Path, trails))
	}

	if !result.Found {
		logger.User.DeadEndf("%s", reporter.Summary(result))
		return solvererrors.NewNoPathError(grid.Start(), result.Stats.Claims).
			WithContext("maze", cfg.Maze)
	}

	logger.User.Goalf("%s", reporter.Summary(result))
	if verbose || debug {
		fmt.Fprintln(out, reporter.StatsTable(result.Stats))
	}
	return nil
}

func createSolveConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return config.Load(configPath, cmd.Flags())
}

func loadMaze(path string) (*maze.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, solvererrors.NewMazeUnreadableError(path, err)
	}
	defer f.Close()

	grid, err := maze.ParseGrid(f)
	if err != nil {
		if solverErr, ok := solvererrors.As(err); ok {
			return nil, solverErr.WithContext("path", path)
		}
		return nil, err
	}
	return grid, nil
}
