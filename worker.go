package wallbreak

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// probeTask asks a worker to solve the grid with one wall removed.
type probeTask struct {
	Index int
	Wall  Cell
}

// WallProbe is a worker's answer for one removed wall.
type WallProbe struct {
	Wall   Cell
	Result Result
}

// runProbes solves every task on at most numberOfWorkers goroutines. Each task
// builds its own grid variant, so workers share nothing but the read-only grid.
func runProbes(
	ctx context.Context,
	grid *Grid,
	tasks []probeTask,
	numberOfWorkers int,
	options []Option,
) ([]WallProbe, error) {
	probes := make([]WallProbe, len(tasks))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(numberOfWorkers)

	for _, task := range tasks {
		task := task
		group.Go(func() error {
			variant, err := grid.WithFree(task.Wall)
			if err != nil {
				return err
			}
			result, err := Solve(groupCtx, variant, variant.DefaultStart(), variant.DefaultGoal(), 0, options...)
			if err != nil {
				return err
			}
			probes[task.Index] = WallProbe{Wall: task.Wall, Result: result}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return probes, nil
}
