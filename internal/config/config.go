// Package config loads solver settings from defaults, an optional YAML file,
// AMAZE_* environment variables and bound command-line flags, in increasing
// order of precedence.
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	solvererrors "github.com/maxkimambo/amaze/internal/errors"
	"github.com/maxkimambo/amaze/internal/solver"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "AMAZE"

// Config represents the complete amaze configuration
type Config struct {
	// Maze is the path of the grid maze to solve.
	Maze   string       `mapstructure:"maze"`
	Search SearchConfig `mapstructure:"search"`
	Output OutputConfig `mapstructure:"output"`
}

// SearchConfig controls the parallel search
type SearchConfig struct {
	// ForkAfter is the number of in-line claims a task makes before forking
	// the branches it deferred. Zero or less forks at every branch.
	ForkAfter int `mapstructure:"fork_after"`
	// Workers bounds the search tasks running on their own goroutine.
	// Zero uses one per CPU.
	Workers int `mapstructure:"workers"`
	// Timeout stops the search after this long. Zero means no limit.
	Timeout time.Duration `mapstructure:"timeout"`
}

// OutputConfig controls the report printed after a search
type OutputConfig struct {
	// Render draws the maze with the found path.
	Render bool `mapstructure:"render"`
	// Trails also marks every cell a search task walked.
	Trails bool `mapstructure:"trails"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	defaults := solver.DefaultConfig()
	return &Config{
		Search: SearchConfig{
			ForkAfter: defaults.ForkAfter,
			Workers:   0,
		},
		Output: OutputConfig{
			Render: true,
		},
	}
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"maze":       "maze",
	"fork-after": "search.fork_after",
	"workers":    "search.workers",
	"timeout":    "search.timeout",
	"render":     "output.render",
	"trails":     "output.trails",
}

// Load reads the configuration. path may be empty; flags may be nil. Only
// flags present in flagKeys are bound.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, solvererrors.NewConfigLoadError(path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, solvererrors.NewConfigLoadError(path, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, solvererrors.NewConfigLoadError(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("maze", defaults.Maze)
	v.SetDefault("search.fork_after", defaults.Search.ForkAfter)
	v.SetDefault("search.workers", defaults.Search.Workers)
	v.SetDefault("search.timeout", defaults.Search.Timeout)
	v.SetDefault("output.render", defaults.Output.Render)
	v.SetDefault("output.trails", defaults.Output.Trails)
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if c.Maze == "" {
		return solvererrors.NewInvalidSettingError("maze", `""`, "a maze file is required")
	}
	if c.Search.Timeout < 0 {
		return solvererrors.NewInvalidSettingError("timeout", c.Search.Timeout, "must not be negative")
	}
	return c.Solver().Validate()
}

// Solver returns the search settings as solver options.
func (c *Config) Solver() solver.Config {
	return solver.Config{
		ForkAfter: c.Search.ForkAfter,
		Workers:   c.Search.Workers,
	}
}
