package wallbreak

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateGraph_Validation(t *testing.T) {
	_, err := NewStateGraph(nil, 1)
	assert.ErrorIs(t, err, ErrNilGrid)

	grid, err := NewGrid([][]int{{0}})
	require.NoError(t, err)
	_, err = NewStateGraph(grid, -1)
	assert.ErrorIs(t, err, ErrNegativeBudget)
}

func TestStateGraph_Successors(t *testing.T) {
	// . # .
	// # . .
	grid, err := NewGrid([][]int{{0, 1, 0}, {1, 0, 0}})
	require.NoError(t, err)
	graph, err := NewStateGraph(grid, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, graph.Budget())
	assert.Equal(t, 18, graph.Size())

	tests := []struct {
		name string
		from State
		want []State
	}{
		{
			name: "walls spend budget",
			from: State{Cell{0, 0}, 2},
			want: []State{{Cell{1, 0}, 1}, {Cell{0, 1}, 1}},
		},
		{
			name: "no budget blocks walls",
			from: State{Cell{0, 0}, 0},
			want: nil,
		},
		{
			name: "free cells keep budget",
			from: State{Cell{1, 1}, 0},
			want: []State{{Cell{1, 2}, 0}},
		},
		{
			name: "mixed",
			from: State{Cell{1, 1}, 1},
			want: []State{{Cell{0, 1}, 0}, {Cell{1, 0}, 0}, {Cell{1, 2}, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.Successors(tt.from, nil)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Successors(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestStateGraph_IndexIsDense(t *testing.T) {
	grid, err := NewGrid([][]int{{0, 1, 0}, {1, 0, 0}})
	require.NoError(t, err)
	graph, err := NewStateGraph(grid, 1)
	require.NoError(t, err)

	seen := make(map[int]State)
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			for b := 0; b <= graph.Budget(); b++ {
				s := State{Cell{r, c}, b}
				slot := graph.index(s)
				require.GreaterOrEqual(t, slot, 0)
				require.Less(t, slot, graph.Size())
				other, dup := seen[slot]
				require.False(t, dup, "%s and %s share slot %d", s, other, slot)
				seen[slot] = s
			}
		}
	}
	assert.Len(t, seen, graph.Size())
}
