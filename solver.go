package wallbreak

import (
	"context"
	"fmt"
)

// SolveBidirectional solves the default corner-to-corner query in both
// directions and returns the better result. The runs agree unless exactly one
// corner is a wall, since standing on the start is free but entering the goal
// is not.
func SolveBidirectional(ctx context.Context, grid *Grid, budget int, options ...Option) (Result, error) {
	if grid == nil {
		return Result{}, ErrNilGrid
	}
	forward, err := Solve(ctx, grid, grid.DefaultStart(), grid.DefaultGoal(), budget, options...)
	if err != nil {
		return Result{}, fmt.Errorf("forward: %w", err)
	}
	backward, err := Solve(ctx, grid, grid.DefaultGoal(), grid.DefaultStart(), budget, options...)
	if err != nil {
		return Result{}, fmt.Errorf("backward: %w", err)
	}
	return better(forward, backward), nil
}

// better prefers a reached result, then the shorter distance, then fewer crossings.
func better(a, b Result) Result {
	switch {
	case a.Outcome == Reached && b.Outcome == Reached:
		if b.Distance < a.Distance || (b.Distance == a.Distance && b.WallsCrossed < a.WallsCrossed) {
			return b
		}
		return a
	case b.Outcome == Reached:
		return b
	case a.Outcome == Reached:
		return a
	case b.Outcome == ResourceExhausted:
		return b
	default:
		return a
	}
}

// ProbeReport is the outcome of ProbeWalls.
type ProbeReport struct {
	// Best is the minimum over all probes, the first wall in row-major order
	// winning ties. Without walls it is the unmodified grid's result.
	Best Result
	// BestWall is the wall whose removal gives Best; nil when no probe reached the goal.
	BestWall *Cell
	Probes   []WallProbe
}

// ProbeWalls removes each wall in turn and solves the corner-to-corner query
// with no crossings allowed. Probes run concurrently on the configured number
// of workers and are reported in row-major wall order.
func ProbeWalls(ctx context.Context, grid *Grid, options ...Option) (ProbeReport, error) {
	if grid == nil {
		return ProbeReport{}, ErrNilGrid
	}
	searchOptions := applyOptions(options)
	logger := searchOptions.Logger

	walls := grid.Walls()
	if len(walls) == 0 {
		result, err := Solve(ctx, grid, grid.DefaultStart(), grid.DefaultGoal(), 0, options...)
		if err != nil {
			return ProbeReport{}, err
		}
		logger.Debug("No walls to probe, solved grid as is.", "outcome", result.Outcome.String())
		return ProbeReport{Best: result}, nil
	}

	tasks := make([]probeTask, len(walls))
	for i, wall := range walls {
		tasks[i] = probeTask{Index: i, Wall: wall}
	}
	logger.Debug("Probing walls.", "walls", len(walls), "workers", searchOptions.NumberOfWorkers)

	probes, err := runProbes(ctx, grid, tasks, searchOptions.NumberOfWorkers, options)
	if err != nil {
		return ProbeReport{}, err
	}

	report := ProbeReport{Best: Result{Outcome: Unreachable}, Probes: probes}
	for i := range probes {
		result := probes[i].Result
		switch {
		case result.Outcome == Reached:
			if report.BestWall == nil || result.Distance < report.Best.Distance {
				report.Best = result
				report.BestWall = &probes[i].Wall
			}
		case result.Outcome == ResourceExhausted && report.BestWall == nil:
			report.Best = result
		}
	}
	logger.Debug("Probing finished.", "outcome", report.Best.Outcome.String(), "distance", report.Best.Distance)
	return report, nil
}
