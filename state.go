package wallbreak

import "fmt"

// State is a search node: a cell plus the number of wall crossings still allowed.
// Two states on the same cell with different budgets are different nodes.
type State struct {
	Cell   Cell
	Budget int
}

func (s State) String() string { return fmt.Sprintf("%s/%d", s.Cell, s.Budget) }

// StateGraph is the implicit graph over (cell, budget) states.
// Edges are derived from the grid when asked for and never stored.
type StateGraph struct {
	grid   *Grid
	budget int
	levels int
}

// NewStateGraph returns the state graph of grid for a maximum budget of k crossings.
func NewStateGraph(grid *Grid, k int) (*StateGraph, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if k < 0 {
		return nil, ErrNegativeBudget
	}
	return &StateGraph{grid: grid, budget: k, levels: k + 1}, nil
}

// Budget returns the maximum number of crossings K.
func (sg *StateGraph) Budget() int { return sg.budget }

// Size is the number of states, cells x (K+1).
func (sg *StateGraph) Size() int { return sg.grid.rows * sg.grid.cols * sg.levels }

// Successors appends to buf the states reachable from s in one move and returns it.
// Moving onto a free cell keeps the budget; moving onto a wall spends one
// crossing and is impossible once the budget is exhausted.
func (sg *StateGraph) Successors(s State, buf []State) []State {
	for _, delta := range directions {
		next := Cell{Row: s.Cell.Row + delta.Row, Col: s.Cell.Col + delta.Col}
		if !sg.grid.Contains(next) {
			continue
		}
		if !sg.grid.isWall(next) {
			buf = append(buf, State{Cell: next, Budget: s.Budget})
		} else if s.Budget > 0 {
			buf = append(buf, State{Cell: next, Budget: s.Budget - 1})
		}
	}
	return buf
}

// index maps a state to its dense slot in per-search tables.
func (sg *StateGraph) index(s State) int {
	return sg.grid.index(s.Cell)*sg.levels + s.Budget
}
