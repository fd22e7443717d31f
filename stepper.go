package wallbreak

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot struct {
	// Current is the state settled by this step; zero when the step only finished the search.
	Current      State
	Distance     int
	FrontierSize int
	Settled      int
	StepIndex    int
	Done         bool
	// Result is final once Done is set.
	Result Result
}

// Stepper runs the same search as Solve, one settled state per Step call.
// A Stepper is not safe for concurrent use.
type Stepper struct {
	search    *search
	start     State
	stepCount int
}

// NewStepper validates the query exactly like Solve and returns a Stepper
// positioned before the first expansion.
func NewStepper(grid *Grid, start, goal Cell, budget int, options ...Option) (*Stepper, error) {
	s, err := newSearch(grid, start, goal, budget, applyOptions(options))
	if err != nil {
		return nil, err
	}
	return &Stepper{search: s, start: State{Cell: start, Budget: budget}}, nil
}

// Done reports whether the search has finished.
func (st *Stepper) Done() bool { return st.search.done }

// Step advances the search by one settled state and returns a snapshot.
// Calls after the search is done return the final snapshot again.
func (st *Stepper) Step() StepSnapshot {
	if st.search.done {
		return st.snapshot(State{}, 0)
	}
	current, distance, ok := st.search.step()
	if ok {
		st.stepCount++
	}
	return st.snapshot(current, distance)
}

// Run steps until the search is done and returns its Result.
func (st *Stepper) Run() Result {
	for !st.search.done {
		st.Step()
	}
	return st.search.result
}

// DistanceTo returns the best distance known so far for state.
func (st *Stepper) DistanceTo(state State) (int, bool) {
	if state == st.start {
		return 0, true
	}
	return st.search.distanceTo(state)
}

func (st *Stepper) snapshot(current State, distance int) StepSnapshot {
	snapshot := StepSnapshot{
		Current:      current,
		Distance:     distance,
		FrontierSize: st.search.frontierSize(),
		Settled:      st.search.expanded,
		StepIndex:    st.stepCount,
		Done:         st.search.done,
	}
	if snapshot.Done {
		snapshot.Result = st.search.result
	}
	return snapshot
}
