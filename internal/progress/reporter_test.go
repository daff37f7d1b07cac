package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maxkimambo/amaze/internal/maze"
	"github.com/maxkimambo/amaze/internal/solver"
)

func TestSummary(t *testing.T) {
	r := NewReporter(&bytes.Buffer{})

	found := solver.Result{
		Path:  []maze.NodeID{0, 1, 2},
		Found: true,
		Stats: solver.Stats{Claims: 9, Elapsed: 3 * time.Millisecond},
	}
	assert.Equal(t, "Found a path of 2 steps after exploring 9 nodes in 3ms", r.Summary(found))

	missing := solver.Result{Stats: solver.Stats{Claims: 4, Elapsed: 1500 * time.Millisecond}}
	assert.Equal(t, "No path found after exploring 4 nodes in 1.5s", r.Summary(missing))
}

func TestStatsTable(t *testing.T) {
	r := NewReporter(&bytes.Buffer{})

	out := r.StatsTable(solver.Stats{Claims: 42, Tasks: 3, Forks: 2, Inlined: 1})
	assert.Contains(t, out, "Metric")
	assert.Contains(t, out, "Nodes claimed")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "Run by the parent")
}

func TestRenderGrid(t *testing.T) {
	grid := maze.MustParseGrid(
		"#####",
		"#*..#",
		"#.#$#",
		"#####",
	)
	r := NewReporter(&bytes.Buffer{})

	path := []maze.NodeID{grid.Node(1, 1), grid.Node(1, 2), grid.Node(1, 3), grid.Node(2, 3)}
	out := r.RenderGrid(grid, path, nil)
	assert.Equal(t, strings.Join([]string{
		"#####",
		"#*oo#",
		"# #$#",
		"#####",
		"",
	}, "\n"), out)

	trails := [][]maze.NodeID{{grid.Node(1, 1), grid.Node(2, 1)}}
	out = r.RenderGrid(grid, path, trails)
	assert.Contains(t, out, "#.#$#")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{250 * time.Microsecond, "250µs"},
		{42 * time.Millisecond, "42ms"},
		{2500 * time.Millisecond, "2.5s"},
		{90 * time.Second, "1m 30s"},
		{2*time.Hour + 5*time.Minute, "2h 5m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in))
	}
}
