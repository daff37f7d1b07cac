package solver

import (
	"runtime"

	solvererrors "github.com/maxkimambo/amaze/internal/errors"
)

// MaxWorkers caps the number of goroutine slots a search may use.
const MaxWorkers = 4096

// Config holds the search settings.
type Config struct {
	// ForkAfter defers forking until a task has made this many in-line
	// claims since its last fork. Zero or less forks at every branch.
	ForkAfter int
	// Workers bounds the tasks running on their own goroutine. Zero means
	// runtime.NumCPU(); one gives a sequential, reproducible search.
	Workers int
}

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{
		ForkAfter: 0,
		Workers:   runtime.NumCPU(),
	}
}

// Validate checks the settings are in range.
func (c Config) Validate() error {
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return solvererrors.NewInvalidSettingError("workers", c.Workers, "must be between 0 and 4096")
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

// Option is a function that modifies Config.
type Option func(*Config)

// WithForkAfter sets the fork-deferral threshold.
func WithForkAfter(steps int) Option {
	return func(c *Config) { c.ForkAfter = steps }
}

// WithWorkers sets how many search tasks may run on their own goroutine.
func WithWorkers(workers int) Option {
	return func(c *Config) { c.Workers = workers }
}

// WithConfig replaces every setting with c.
func WithConfig(c Config) Option {
	return func(target *Config) { *target = c }
}
