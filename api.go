package wallbreak

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
)

// Outcome tells how a search ended.
type Outcome int

const (
	// Reached means the goal was reached within budget; Result.Distance is valid.
	Reached Outcome = iota
	// Unreachable means no path to the goal crosses at most K walls.
	Unreachable
	// ResourceExhausted means the expansion bound ran out before the search finished.
	ResourceExhausted
)

func (o Outcome) String() string {
	switch o {
	case Reached:
		return "reached"
	case Unreachable:
		return "unreachable"
	case ResourceExhausted:
		return "resource_exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result contains the outcome of a search
type Result struct {
	Outcome Outcome
	// Distance is the number of moves on a shortest path. Only meaningful when Outcome is Reached.
	Distance int
	// WallsCrossed is the fewest crossings among shortest paths.
	WallsCrossed   int
	ExpandedStates int
}

// Reachable reports whether the goal was reached.
func (r Result) Reachable() bool { return r.Outcome == Reached }

// PathCells counts the cells on a shortest path including both ends.
// It is zero unless the goal was reached.
func (r Result) PathCells() int {
	if r.Outcome != Reached {
		return 0
	}
	return r.Distance + 1
}

func (r Result) String() string {
	if r.Outcome != Reached {
		return r.Outcome.String()
	}
	return fmt.Sprintf("distance %d (%d walls crossed)", r.Distance, r.WallsCrossed)
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Frontier        Frontier
	// MaxExpansions bounds settled states per search; 0 means unbounded.
	MaxExpansions int
	Logger        *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many goroutines ProbeWalls runs searches on.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithFrontier picks the frontier data structure.
func WithFrontier(frontier Frontier) Option {
	return func(options *Options) { options.Frontier = frontier }
}

// WithMaxExpansions stops a search with ResourceExhausted after n settled states.
func WithMaxExpansions(n int) Option {
	return func(options *Options) { options.MaxExpansions = n }
}

// WithLogger sets the logger used for debug output. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		Frontier:        FrontierQueue,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return searchOptions
}

// ctxCheckInterval is how many expansions pass between context checks.
const ctxCheckInterval = 1024

// Solve returns the shortest distance from start to goal crossing at most budget walls.
//
// Standing on start is free even when start is a wall. An unreachable goal is
// reported through Result.Outcome, not as an error; errors are reserved for
// malformed queries (ErrNilGrid, ErrNegativeBudget, ErrOutOfBounds) and for
// context cancellation.
func Solve(
	ctx context.Context,
	grid *Grid,
	start Cell,
	goal Cell,
	budget int,
	options ...Option,
) (Result, error) {
	searchOptions := applyOptions(options)

	s, err := newSearch(grid, start, goal, budget, searchOptions)
	if err != nil {
		return Result{}, err
	}

	for !s.done {
		if s.expanded%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		s.step()
	}

	searchOptions.Logger.Debug("Search finished.",
		"start", start.String(),
		"goal", goal.String(),
		"budget", budget,
		"frontier", searchOptions.Frontier.String(),
		"outcome", s.result.Outcome.String(),
		"distance", s.result.Distance,
		"expanded", s.result.ExpandedStates,
	)
	return s.result, nil
}
