package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupMazeWorkspace writes each maze to <name>.txt in a fresh directory and
// returns the file paths by name. The directory is removed when the test ends
// unless keep is set.
func SetupMazeWorkspace(t *testing.T, keep bool, mazes map[string][]string) map[string]string {
	t.Helper()

	dir, err := os.MkdirTemp("", "amaze-"+strings.ReplaceAll(t.Name(), "/", "_")+"-")
	require.NoError(t, err, "failed to create test workspace directory")

	if keep {
		t.Logf("Keeping workspace %s", dir)
	} else {
		t.Cleanup(func() { os.RemoveAll(dir) })
	}

	paths := make(map[string]string, len(mazes))
	for name, rows := range mazes {
		path := filepath.Join(dir, name+".txt")
		err := os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644)
		require.NoError(t, err, "failed to write maze %s", name)
		paths[name] = path
	}
	return paths
}

// WriteConfig writes a YAML config file into the directory of anyPath.
func WriteConfig(t *testing.T, anyPath, content string) string {
	t.Helper()

	path := filepath.Join(filepath.Dir(anyPath), "amaze.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "failed to write config")
	return path
}
