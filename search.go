package wallbreak

import "fmt"

const unreached = -1

// search holds the tables of one query. It is owned by a single Solve call or
// Stepper and never shared.
type search struct {
	graph    *StateGraph
	goal     Cell
	frontier frontier

	// distance is the distance table, indexed by StateGraph.index.
	distance []int
	settled  []bool

	goalLevelsSettled int
	bestGoalDistance  int
	bestGoalBudget    int

	expanded      int
	maxExpansions int
	successors    []State

	done   bool
	result Result
}

func newSearch(grid *Grid, start, goal Cell, budget int, searchOptions Options) (*search, error) {
	graph, err := NewStateGraph(grid, budget)
	if err != nil {
		return nil, err
	}
	if err := grid.checkBounds(start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := grid.checkBounds(goal); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}

	s := &search{
		graph:            graph,
		goal:             goal,
		bestGoalDistance: unreached,
		maxExpansions:    searchOptions.MaxExpansions,
		successors:       make([]State, 0, len(directions)),
	}
	if start == goal {
		s.done = true
		s.result = Result{Outcome: Reached}
		return s, nil
	}

	s.frontier = newFrontier(searchOptions.Frontier)
	s.distance = make([]int, graph.Size())
	for i := range s.distance {
		s.distance[i] = unreached
	}
	s.settled = make([]bool, graph.Size())

	startState := State{Cell: start, Budget: budget}
	startSlot := graph.index(startState)
	s.distance[startSlot] = 0
	s.frontier.push(startState, startSlot, 0)
	return s, nil
}

// step settles at most one state. It returns false once the search is done,
// and s.result is then final.
func (s *search) step() (State, int, bool) {
	for !s.done {
		switch {
		case s.goalLevelsSettled == s.graph.levels,
			s.frontier.Len() == 0,
			s.bestGoalDistance != unreached && s.frontier.peekDistance() > s.bestGoalDistance:
			s.finish(false)
			continue
		case s.maxExpansions > 0 && s.expanded >= s.maxExpansions:
			s.finish(true)
			continue
		}

		current, distance := s.frontier.pop()
		slot := s.graph.index(current)
		if s.settled[slot] {
			continue
		}
		s.settled[slot] = true
		s.expanded++

		if current.Cell == s.goal {
			s.settleGoal(current, distance)
		}
		s.relax(current, distance)
		return current, distance, true
	}
	return State{}, 0, false
}

func (s *search) relax(from State, distance int) {
	next := distance + 1
	s.successors = s.graph.Successors(from, s.successors[:0])
	for _, to := range s.successors {
		slot := s.graph.index(to)
		if s.settled[slot] {
			continue
		}
		if known := s.distance[slot]; known != unreached && known <= next {
			continue
		}
		s.distance[slot] = next
		s.frontier.push(to, slot, next)
	}
}

func (s *search) settleGoal(state State, distance int) {
	s.goalLevelsSettled++
	switch {
	case s.bestGoalDistance == unreached, distance < s.bestGoalDistance:
		s.bestGoalDistance = distance
		s.bestGoalBudget = state.Budget
	case distance == s.bestGoalDistance && state.Budget > s.bestGoalBudget:
		s.bestGoalBudget = state.Budget
	}
}

func (s *search) finish(exhausted bool) {
	s.done = true
	s.result = Result{ExpandedStates: s.expanded}
	switch {
	case exhausted:
		s.result.Outcome = ResourceExhausted
	case s.bestGoalDistance == unreached:
		s.result.Outcome = Unreachable
	default:
		s.result.Outcome = Reached
		s.result.Distance = s.bestGoalDistance
		s.result.WallsCrossed = s.graph.budget - s.bestGoalBudget
	}
}

// distanceTo reports the best known distance of state so far.
func (s *search) distanceTo(state State) (int, bool) {
	if s.distance == nil || !s.graph.grid.Contains(state.Cell) || state.Budget < 0 || state.Budget > s.graph.budget {
		return 0, false
	}
	d := s.distance[s.graph.index(state)]
	return d, d != unreached
}

func (s *search) frontierSize() int {
	if s.frontier == nil {
		return 0
	}
	return s.frontier.Len()
}
