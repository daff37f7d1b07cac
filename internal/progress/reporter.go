// Package progress formats the outcome of a maze search for the terminal.
package progress

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/maxkimambo/amaze/internal/maze"
	"github.com/maxkimambo/amaze/internal/solver"
)

// Rendered cell glyphs.
const (
	GlyphWall  = "#"
	GlyphOpen  = " "
	GlyphPath  = "o"
	GlyphTrail = "."
	GlyphStart = "*"
	GlyphGoal  = "$"
)

// Reporter renders search results with styles suited to its output.
type Reporter struct {
	wall  lipgloss.Style
	path  lipgloss.Style
	trail lipgloss.Style
	mark  lipgloss.Style
}

// NewReporter creates a reporter whose colours match what w supports.
func NewReporter(w io.Writer) *Reporter {
	r := lipgloss.NewRenderer(w)
	return &Reporter{
		wall:  r.NewStyle().Foreground(lipgloss.Color("8")),
		path:  r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		trail: r.NewStyle().Foreground(lipgloss.Color("12")),
		mark:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}

// Summary returns a one-line description of the result.
func (r *Reporter) Summary(result solver.Result) string {
	if !result.Found {
		return fmt.Sprintf("No path found after exploring %d nodes in %s",
			result.Stats.Claims, FormatDuration(result.Stats.Elapsed))
	}
	return fmt.Sprintf("Found a path of %d steps after exploring %d nodes in %s",
		len(result.Path)-1, result.Stats.Claims, FormatDuration(result.Stats.Elapsed))
}

// StatsTable returns the search statistics as a table.
func (r *Reporter) StatsTable(stats solver.Stats) string {
	rows := [][]string{
		{"Nodes claimed", fmt.Sprint(stats.Claims)},
		{"Claims lost to other tasks", fmt.Sprint(stats.LostClaims)},
		{"Search tasks", fmt.Sprint(stats.Tasks)},
		{"Forked onto a worker", fmt.Sprint(stats.Forks)},
		{"Run by the parent", fmt.Sprint(stats.Inlined)},
		{"Branches deferred", fmt.Sprint(stats.Deferred)},
		{"Peak concurrent tasks", fmt.Sprint(stats.MaxActive)},
		{"Elapsed", FormatDuration(stats.Elapsed)},
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Metric", "Value").
		Rows(rows...).
		String()
}

// RenderGrid draws grid with path marked. When trails is non-nil every cell
// a search task walked is marked as well.
func (r *Reporter) RenderGrid(grid *maze.Grid, path []maze.NodeID, trails [][]maze.NodeID) string {
	onPath := make(map[maze.NodeID]bool, len(path))
	for _, n := range path {
		onPath[n] = true
	}
	walked := make(map[maze.NodeID]bool)
	for _, trail := range trails {
		for _, n := range trail {
			walked[n] = true
		}
	}

	var sb strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			node := grid.Node(row, col)
			switch cell := grid.Cell(row, col); {
			case cell == maze.CellWall:
				sb.WriteString(r.wall.Render(GlyphWall))
			case cell == maze.CellStart:
				sb.WriteString(r.mark.Render(GlyphStart))
			case cell == maze.CellGoal:
				sb.WriteString(r.mark.Render(GlyphGoal))
			case onPath[node]:
				sb.WriteString(r.path.Render(GlyphPath))
			case walked[node]:
				sb.WriteString(r.trail.Render(GlyphTrail))
			default:
				sb.WriteString(GlyphOpen)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatDuration formats a duration in a user-friendly way
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
