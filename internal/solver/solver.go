// Package solver finds a path from a maze's start to any goal with a
// parallel depth-first search.
//
// The search forks a task at each branching point and joins the tasks back
// into one result. All tasks share one Exploration: the first task to claim
// a node explores it, and the first task to reach a goal stops the others at
// their next claim.
package solver

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/panics"

	solvererrors "github.com/maxkimambo/amaze/internal/errors"
	"github.com/maxkimambo/amaze/internal/logger"
	"github.com/maxkimambo/amaze/internal/maze"
)

// Result contains the outcome of a search.
type Result struct {
	Path  []maze.NodeID
	Found bool
	Stats Stats
}

// Stats describes how much work a search did.
type Stats struct {
	Claims     int64
	LostClaims int64
	Tasks      int64
	Forks      int64
	Inlined    int64
	Deferred   int64
	MaxActive  int64
	Elapsed    time.Duration
}

// Solver searches one maze.
type Solver struct {
	maze   maze.Maze
	config Config
}

// New creates a solver for m.
func New(m maze.Maze, options ...Option) *Solver {
	config := DefaultConfig()
	for _, option := range options {
		option(&config)
	}
	return &Solver{maze: m, config: config}
}

// Config returns the solver settings.
func (s *Solver) Config() Config {
	return s.config
}

// Solve runs the search and blocks until every task has been joined. A maze
// without a reachable goal yields a Result with Found false and no error.
// An error is returned for invalid settings, a cancelled ctx or a panicking
// maze.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	if s.maze == nil {
		return Result{}, solvererrors.NewInvalidSettingError("maze", nil, "a maze is required")
	}
	if err := s.config.Validate(); err != nil {
		return Result{}, err
	}

	started := time.Now()
	run := s.search(ctx)

	result := Result{
		Path:  run.path,
		Found: run.path != nil,
		Stats: run.stats(time.Since(started)),
	}

	if recovered := run.recovered; recovered != nil {
		logger.Op.Errorf("Search task panicked: %v", recovered.Value)
		logger.Op.WithFields(map[string]interface{}{
			"stack": string(recovered.Stack),
		}).Debug("Panicking task stack")
		return result, solvererrors.NewTaskPanicError(recovered.Value).WithOriginalError(recovered.AsError())
	}

	if !result.Found && ctx.Err() != nil {
		return result, solvererrors.NewSearchCancelledError(ctx.Err())
	}

	logger.Op.WithFields(map[string]interface{}{
		"found":   result.Found,
		"claims":  result.Stats.Claims,
		"tasks":   result.Stats.Tasks,
		"elapsed": result.Stats.Elapsed.String(),
	}).Debug("Maze search finished")

	return result, nil
}

// searchRun is the raw outcome of one search, before it becomes a Result.
type searchRun struct {
	state     *Exploration
	pool      *forkPool
	path      []maze.NodeID
	recovered *panics.Recovered
}

// search explores the maze and returns once every task has been joined. A
// panicking task cancels the rest of the search.
func (s *Solver) search(ctx context.Context) *searchRun {
	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := s.maze.Start()
	state := newExploration(searchCtx, cancel, start)
	state.TryClaim(start)

	workers := s.config.workers()
	pool := newForkPool(workers)
	pool.onPanic = cancel

	logger.Op.WithFields(map[string]interface{}{
		"start":     start,
		"workers":   workers,
		"forkAfter": s.config.ForkAfter,
	}).Debug("Starting maze search")

	run := &searchRun{state: state, pool: pool}
	root := newSearchTask(s.maze, state, pool, s.config.ForkAfter, start)
	submit := pool.group()
	submit.Go(func() { run.path = root.run() })
	run.recovered = originalPanic(panics.Try(submit.Wait))
	return run
}

func (r *searchRun) stats(elapsed time.Duration) Stats {
	return Stats{
		Claims:     r.state.Claims(),
		LostClaims: r.state.LostClaims(),
		Tasks:      r.pool.tasks.Load(),
		Forks:      r.pool.forks.Load(),
		Inlined:    r.pool.inlined.Load(),
		Deferred:   r.pool.deferred.Load(),
		MaxActive:  r.pool.maxActive.Load(),
		Elapsed:    elapsed,
	}
}

// originalPanic unwraps the panics re-raised by each join on the way up to
// the one raised by the maze or a task.
func originalPanic(r *panics.Recovered) *panics.Recovered {
	for r != nil {
		inner, ok := r.Value.(*panics.Recovered)
		if !ok {
			break
		}
		r = inner
	}
	return r
}
