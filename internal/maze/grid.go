package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	solvererrors "github.com/maxkimambo/amaze/internal/errors"
)

// Grid cell markers.
const (
	CellWall  = '#'
	CellOpen  = '.'
	CellSpace = ' '
	CellStart = '*'
	CellGoal  = '$'
)

// Grid is a rectangular maze whose open cells are graph nodes connected to
// their open orthogonal neighbors. Node ids are row*cols+col.
type Grid struct {
	*Graph
	rows  int
	cols  int
	cells [][]rune
}

// ParseGrid reads a grid maze, one row per line. Short rows are padded with
// walls.
func ParseGrid(r io.Reader) (*Grid, error) {
	var lines [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" && len(lines) == 0 {
			continue
		}
		lines = append(lines, []rune(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, solvererrors.NewMazeUnreadableError("<reader>", err)
	}
	for len(lines) > 0 && strings.TrimSpace(string(lines[len(lines)-1])) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, solvererrors.NewMazeError(solvererrors.CodeMazeEmpty, "Maze has no rows", "Maze parsing")
	}

	cols := 0
	for _, l := range lines {
		if len(l) > cols {
			cols = len(l)
		}
	}

	grid := &Grid{rows: len(lines), cols: cols, cells: make([][]rune, len(lines))}
	var starts []NodeID
	for r, l := range lines {
		row := make([]rune, cols)
		for c := range row {
			row[c] = CellWall
			if c < len(l) {
				row[c] = l[c]
			}
			switch row[c] {
			case CellWall, CellOpen, CellSpace, CellGoal:
			case CellStart:
				starts = append(starts, grid.Node(r, c))
			default:
				return nil, solvererrors.NewMazeError(solvererrors.CodeMazeUnknownCell,
					fmt.Sprintf("Unknown cell %q at row %d, column %d", row[c], r+1, c+1),
					"Maze parsing").
					WithTroubleshooting("Use '#' for walls, '.' or ' ' for open cells, '*' for the start and '$' for goals")
			}
		}
		grid.cells[r] = row
	}

	switch len(starts) {
	case 0:
		return nil, solvererrors.NewMazeError(solvererrors.CodeMazeNoStart, "Maze has no start cell", "Maze parsing").
			WithContext("rows", grid.rows).
			WithContext("cols", grid.cols).
			WithTroubleshooting("Mark exactly one cell with '*'")
	case 1:
	default:
		return nil, solvererrors.NewMazeError(solvererrors.CodeMazeManyStarts, "Maze has more than one start cell", "Maze parsing").
			WithContext("starts", len(starts)).
			WithTroubleshooting("Mark exactly one cell with '*'")
	}

	grid.Graph = NewGraph(starts[0])
	for r := 0; r < grid.rows; r++ {
		for c := 0; c < grid.cols; c++ {
			if grid.cells[r][c] == CellWall {
				continue
			}
			node := grid.Node(r, c)
			grid.AddNode(node)
			if grid.cells[r][c] == CellGoal {
				grid.AddGoal(node)
			}
			if c+1 < grid.cols && grid.cells[r][c+1] != CellWall {
				grid.AddEdge(node, grid.Node(r, c+1))
			}
			if r+1 < grid.rows && grid.cells[r+1][c] != CellWall {
				grid.AddEdge(node, grid.Node(r+1, c))
			}
		}
	}
	return grid, nil
}

// MustParseGrid parses rows joined by newlines and panics on error. It is
// meant for fixtures.
func MustParseGrid(rows ...string) *Grid {
	grid, err := ParseGrid(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		panic(err)
	}
	return grid
}

// Rows returns the grid height.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width.
func (g *Grid) Cols() int { return g.cols }

// Node returns the node id of the cell at row, col.
func (g *Grid) Node(row, col int) NodeID {
	return NodeID(row*g.cols + col)
}

// Coord returns the row and column of node.
func (g *Grid) Coord(node NodeID) (row, col int) {
	return int(node) / g.cols, int(node) % g.cols
}

// Cell returns the marker of the cell at row, col.
func (g *Grid) Cell(row, col int) rune {
	return g.cells[row][col]
}
