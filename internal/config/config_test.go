package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	solvererrors "github.com/maxkimambo/amaze/internal/errors"
	"github.com/maxkimambo/amaze/internal/solver"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("maze", "", "")
	flags.Int("fork-after", 0, "")
	flags.Int("workers", 0, "")
	flags.Duration("timeout", 0, "")
	flags.Bool("render", true, "")
	flags.Bool("trails", false, "")
	return flags
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "amaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--maze", "maze.txt"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	assert.Equal(t, "maze.txt", cfg.Maze)
	assert.Equal(t, 0, cfg.Search.ForkAfter)
	assert.Equal(t, 0, cfg.Search.Workers)
	assert.Equal(t, time.Duration(0), cfg.Search.Timeout)
	assert.True(t, cfg.Output.Render)
	assert.False(t, cfg.Output.Trails)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
maze: from-file.txt
search:
  fork_after: 2
  workers: 3
  timeout: 5s
output:
  render: false
`)

	t.Run("file", func(t *testing.T) {
		cfg, err := Load(path, nil)
		require.NoError(t, err)

		assert.Equal(t, "from-file.txt", cfg.Maze)
		assert.Equal(t, 2, cfg.Search.ForkAfter)
		assert.Equal(t, 3, cfg.Search.Workers)
		assert.Equal(t, 5*time.Second, cfg.Search.Timeout)
		assert.False(t, cfg.Output.Render)
	})

	t.Run("environment over file", func(t *testing.T) {
		t.Setenv("AMAZE_SEARCH_WORKERS", "7")

		cfg, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, 7, cfg.Search.Workers)
		assert.Equal(t, 2, cfg.Search.ForkAfter)
	})

	t.Run("flags over environment", func(t *testing.T) {
		t.Setenv("AMAZE_SEARCH_WORKERS", "7")
		flags := testFlags()
		require.NoError(t, flags.Parse([]string{"--workers", "1", "--fork-after", "4"}))

		cfg, err := Load(path, flags)
		require.NoError(t, err)
		assert.Equal(t, 1, cfg.Search.Workers)
		assert.Equal(t, 4, cfg.Search.ForkAfter)
		assert.Equal(t, "from-file.txt", cfg.Maze)
		assert.Equal(t, solver.Config{ForkAfter: 4, Workers: 1}, cfg.Solver())
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
		assert.Equal(t, "CONFIGURATION-002", solvererrors.GetErrorCode(err))
	})

	t.Run("missing maze", func(t *testing.T) {
		_, err := Load("", testFlags())
		require.Error(t, err)
		assert.Equal(t, "CONFIGURATION-001", solvererrors.GetErrorCode(err))
	})

	t.Run("negative workers", func(t *testing.T) {
		flags := testFlags()
		require.NoError(t, flags.Parse([]string{"--maze", "m.txt", "--workers", "-2"}))

		_, err := Load("", flags)
		require.Error(t, err)
		assert.True(t, solvererrors.IsUserError(err))
	})

	t.Run("negative timeout", func(t *testing.T) {
		flags := testFlags()
		require.NoError(t, flags.Parse([]string{"--maze", "m.txt", "--timeout", "-1s"}))

		_, err := Load("", flags)
		require.Error(t, err)
	})
}
