package wallbreak

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_MatchesSolve(t *testing.T) {
	grid := mustGrid(t, sampleMaze)
	start, goal := grid.DefaultStart(), grid.DefaultGoal()

	for _, frontier := range frontiers {
		t.Run(frontier.String(), func(t *testing.T) {
			want, err := Solve(context.Background(), grid, start, goal, 1, WithFrontier(frontier))
			require.NoError(t, err)

			stepper, err := NewStepper(grid, start, goal, 1, WithFrontier(frontier))
			require.NoError(t, err)

			first := stepper.Step()
			assert.Equal(t, State{Cell: start, Budget: 1}, first.Current)
			assert.Equal(t, 0, first.Distance)
			assert.Equal(t, 1, first.StepIndex)
			assert.False(t, first.Done)

			lastDistance := 0
			var snapshot StepSnapshot
			for !stepper.Done() {
				snapshot = stepper.Step()
				if snapshot.Done {
					break
				}
				require.GreaterOrEqual(t, snapshot.Distance, lastDistance, "states settle in distance order")
				lastDistance = snapshot.Distance
				d, ok := stepper.DistanceTo(snapshot.Current)
				require.True(t, ok)
				require.Equal(t, snapshot.Distance, d)
			}

			require.True(t, snapshot.Done)
			assert.Equal(t, want, snapshot.Result)
			assert.Equal(t, want.ExpandedStates, snapshot.StepIndex)
			assert.Equal(t, want.ExpandedStates, snapshot.Settled)

			// further steps repeat the final snapshot
			again := stepper.Step()
			assert.True(t, again.Done)
			assert.Equal(t, want, again.Result)
			assert.Equal(t, want, stepper.Run())
		})
	}
}

func TestStepper_Run(t *testing.T) {
	grid := mustGrid(t, [][]int{{0, 1}, {1, 0}})

	stepper, err := NewStepper(grid, Cell{0, 0}, Cell{1, 1}, 0)
	require.NoError(t, err)
	result := stepper.Run()
	assert.Equal(t, Unreachable, result.Outcome)
	assert.Equal(t, 1, result.ExpandedStates)

	d, ok := stepper.DistanceTo(State{Cell: Cell{0, 0}, Budget: 0})
	assert.True(t, ok)
	assert.Equal(t, 0, d)
	_, ok = stepper.DistanceTo(State{Cell: Cell{1, 1}, Budget: 0})
	assert.False(t, ok)
	_, ok = stepper.DistanceTo(State{Cell: Cell{9, 9}, Budget: 0})
	assert.False(t, ok)
}

func TestStepper_StartIsGoal(t *testing.T) {
	grid := mustGrid(t, [][]int{{1}})

	stepper, err := NewStepper(grid, Cell{}, Cell{}, 0)
	require.NoError(t, err)
	assert.True(t, stepper.Done())

	snapshot := stepper.Step()
	assert.True(t, snapshot.Done)
	assert.Equal(t, Reached, snapshot.Result.Outcome)
	assert.Equal(t, 0, snapshot.Result.Distance)
	assert.Zero(t, snapshot.FrontierSize)
}

func TestNewStepper_Errors(t *testing.T) {
	grid := mustGrid(t, [][]int{{0}})

	_, err := NewStepper(grid, Cell{1, 0}, Cell{}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = NewStepper(grid, Cell{}, Cell{}, -2)
	assert.ErrorIs(t, err, ErrNegativeBudget)
}
