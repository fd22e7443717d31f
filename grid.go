package wallbreak

import (
	"fmt"
	"strings"
)

const (
	markerFree = 0
	markerWall = 1
)

// Cell is a (row, column) coordinate in a grid.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// directions lists the four orthogonal moves: up, down, left, right.
var directions = [4]Cell{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

// Grid is an immutable rectangular maze of free and wall cells.
// Cells are stored row-major in a flat slice and adjacency is computed from coordinates.
type Grid struct {
	rows  int
	cols  int
	walls []bool
}

// NewGrid builds a Grid from rows of markers, 0 for free and 1 for wall.
// The input is copied, so later changes to rows do not affect the grid.
func NewGrid(rows [][]int) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &InvalidShapeError{Row: -1, Reason: "no rows"}
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, &InvalidShapeError{Row: 0, Reason: "no columns"}
	}

	walls := make([]bool, 0, len(rows)*cols)
	for rowIndex, row := range rows {
		if len(row) != cols {
			return nil, &InvalidShapeError{
				Row:    rowIndex,
				Reason: fmt.Sprintf("has %d cells, want %d", len(row), cols),
			}
		}
		for colIndex, marker := range row {
			switch marker {
			case markerFree:
				walls = append(walls, false)
			case markerWall:
				walls = append(walls, true)
			default:
				return nil, &InvalidShapeError{
					Row:    rowIndex,
					Reason: fmt.Sprintf("column %d: unknown marker %d", colIndex, marker),
				}
			}
		}
	}

	return &Grid{rows: len(rows), cols: cols, walls: walls}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Contains reports whether c lies inside the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

func (g *Grid) index(c Cell) int { return c.Row*g.cols + c.Col }

func (g *Grid) checkBounds(c Cell) error {
	if !g.Contains(c) {
		return &OutOfBoundsError{Cell: c, Rows: g.rows, Cols: g.cols}
	}
	return nil
}

// IsWall reports whether c is a wall cell.
func (g *Grid) IsWall(c Cell) (bool, error) {
	if err := g.checkBounds(c); err != nil {
		return false, err
	}
	return g.walls[g.index(c)], nil
}

// isWall skips the bounds check; callers must pass a contained cell.
func (g *Grid) isWall(c Cell) bool { return g.walls[g.index(c)] }

// Neighbors returns the up to four orthogonal neighbors of c that lie inside the grid.
func (g *Grid) Neighbors(c Cell) []Cell {
	neighbors := make([]Cell, 0, len(directions))
	for _, delta := range directions {
		neighbor := Cell{Row: c.Row + delta.Row, Col: c.Col + delta.Col}
		if g.Contains(neighbor) {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

// DefaultStart is the top-left cell.
func (g *Grid) DefaultStart() Cell { return Cell{} }

// DefaultGoal is the bottom-right cell.
func (g *Grid) DefaultGoal() Cell { return Cell{Row: g.rows - 1, Col: g.cols - 1} }

// Walls lists every wall cell in row-major order.
func (g *Grid) Walls() []Cell {
	var walls []Cell
	for i, wall := range g.walls {
		if wall {
			walls = append(walls, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return walls
}

// WithFree returns a copy of the grid with c reclassified as free.
// The receiver is left untouched.
func (g *Grid) WithFree(c Cell) (*Grid, error) {
	if err := g.checkBounds(c); err != nil {
		return nil, err
	}
	walls := make([]bool, len(g.walls))
	copy(walls, g.walls)
	walls[g.index(c)] = false
	return &Grid{rows: g.rows, cols: g.cols, walls: walls}, nil
}

// Markers returns the grid as fresh rows of 0/1 markers.
func (g *Grid) Markers() [][]int {
	rows := make([][]int, g.rows)
	for r := range rows {
		rows[r] = make([]int, g.cols)
		for c := range rows[r] {
			if g.walls[r*g.cols+c] {
				rows[r][c] = markerWall
			}
		}
	}
	return rows
}

// String renders the grid with '.' for free cells and '#' for walls.
func (g *Grid) String() string {
	var output strings.Builder
	output.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.walls[r*g.cols+c] {
				output.WriteByte('#')
			} else {
				output.WriteByte('.')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
