package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pdrpinto/wallbreak"
	"github.com/pdrpinto/wallbreak/internal/cli"
	"github.com/pdrpinto/wallbreak/internal/config"
	"github.com/pdrpinto/wallbreak/internal/mazeio"
)

// main is the entrypoint for the wallbreak command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	defaults, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:], defaults); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

type output struct {
	Mode         string  `json:"mode"`
	Outcome      string  `json:"outcome"`
	Distance     *int    `json:"distance,omitempty"`
	PathCells    *int    `json:"path_cells,omitempty"`
	WallsCrossed *int    `json:"walls_crossed,omitempty"`
	RemovedWall  *[2]int `json:"removed_wall,omitempty"`
	Expanded     int     `json:"expanded_states"`
}

// run encapsulates the command logic for easier testing and error handling.
func run(
	ctx context.Context,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	args []string,
	defaults config.Config,
) error {
	options, shouldExit, err := cli.Parse(args, stdout, defaults)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(options, stderr)

	rows, err := readMaze(options.MazePath, stdin)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	grid, err := wallbreak.NewGrid(rows)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: err.Error()}
	}
	logger.Debug("Maze loaded.", "rows", grid.Rows(), "cols", grid.Cols(), "walls", len(grid.Walls()))

	solveOptions := []wallbreak.Option{
		wallbreak.WithFrontier(options.Frontier),
		wallbreak.WithMaxExpansions(options.MaxExpansions),
		wallbreak.WithLogger(logger),
	}
	if options.Workers > 0 {
		solveOptions = append(solveOptions, wallbreak.WithWorkers(options.Workers))
	}

	out := output{Mode: string(options.Mode)}
	var result wallbreak.Result
	switch options.Mode {
	case cli.ModeBidirectional:
		result, err = wallbreak.SolveBidirectional(ctx, grid, options.Budget, solveOptions...)
	case cli.ModeProbe:
		var report wallbreak.ProbeReport
		report, err = wallbreak.ProbeWalls(ctx, grid, solveOptions...)
		result = report.Best
		if report.BestWall != nil {
			out.RemovedWall = &[2]int{report.BestWall.Row, report.BestWall.Col}
		}
	default:
		start, goal := grid.DefaultStart(), grid.DefaultGoal()
		if options.Start != nil {
			start = *options.Start
		}
		if options.Goal != nil {
			goal = *options.Goal
		}
		result, err = wallbreak.Solve(ctx, grid, start, goal, options.Budget, solveOptions...)
	}
	if err != nil {
		if errors.Is(err, wallbreak.ErrOutOfBounds) {
			return &cli.ExitError{Code: 2, Message: err.Error()}
		}
		return err
	}

	out.Outcome = result.Outcome.String()
	out.Expanded = result.ExpandedStates
	if result.Reachable() {
		distance, cells, crossed := result.Distance, result.PathCells(), result.WallsCrossed
		out.Distance, out.PathCells, out.WallsCrossed = &distance, &cells, &crossed
	}

	if options.JSON {
		encoder := json.NewEncoder(stdout)
		return encoder.Encode(out)
	}
	return writeText(stdout, out)
}

func readMaze(path string, stdin io.Reader) ([][]int, error) {
	if path == "" || path == "-" {
		return mazeio.Parse(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open maze: %w", err)
	}
	defer file.Close()
	return mazeio.Parse(file)
}

func writeText(w io.Writer, out output) error {
	if out.Distance == nil {
		_, err := fmt.Fprintln(w, out.Outcome)
		return err
	}
	line := fmt.Sprintf("distance=%d path_cells=%d walls_crossed=%d", *out.Distance, *out.PathCells, *out.WallsCrossed)
	if out.RemovedWall != nil {
		line += fmt.Sprintf(" removed_wall=%d,%d", out.RemovedWall[0], out.RemovedWall[1])
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
