// Package cli parses the wallbreak command line on top of environment defaults.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pdrpinto/wallbreak"
	"github.com/pdrpinto/wallbreak/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Mode selects which query the CLI runs.
type Mode string

const (
	ModeSolve         Mode = "solve"
	ModeBidirectional Mode = "bidirectional"
	ModeProbe         Mode = "probe"
)

// Options is the fully validated command line.
type Options struct {
	MazePath      string // "-" or empty reads stdin
	Mode          Mode
	Budget        int
	Start         *wallbreak.Cell // nil means the grid's default start
	Goal          *wallbreak.Cell // nil means the grid's default goal
	Workers       int
	MaxExpansions int
	Frontier      wallbreak.Frontier
	LogLevel      slog.Level
	LogFormat     string
	JSON          bool
}

// Parse processes command-line arguments over defaults. It returns the
// options, a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, defaults config.Config) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("wallbreak", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
wallbreak - shortest paths through a grid maze that may break through walls.

Usage:
  wallbreak [options] [MAZE_PATH]

Arguments:
  MAZE_PATH
    File holding the maze as 0/1 rows or a JSON matrix. Reads stdin when omitted or "-".

Options:
`)
		flagSet.PrintDefaults()
	}

	modeFlag := flagSet.String("mode", string(ModeSolve), "Query to run: 'solve', 'bidirectional' or 'probe'.")
	budgetFlag := flagSet.Int("budget", defaults.Budget, "Maximum number of walls a path may cross.")
	kFlag := flagSet.Int("k", -1, "Maximum number of walls a path may cross (shorthand).")
	startFlag := flagSet.String("start", "", "Start cell as 'row,col'. Defaults to the top-left cell.")
	goalFlag := flagSet.String("goal", "", "Goal cell as 'row,col'. Defaults to the bottom-right cell.")
	workersFlag := flagSet.Int("workers", defaults.Workers, "Concurrent searches for probe mode. 0 means one per CPU.")
	maxExpansionsFlag := flagSet.Int("max-expansions", defaults.MaxExpansions, "Stop a search after this many settled states. 0 is unbounded.")
	frontierFlag := flagSet.String("frontier", defaults.Frontier, "Frontier structure: 'queue' or 'heap'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	jsonFlag := flagSet.Bool("json", false, "Print the result as JSON.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one maze path may be given"}
	}

	options := &Options{
		MazePath:      flagSet.Arg(0),
		Budget:        *budgetFlag,
		Workers:       *workersFlag,
		MaxExpansions: *maxExpansionsFlag,
		JSON:          *jsonFlag,
	}
	if *kFlag >= 0 {
		options.Budget = *kFlag
	}
	if options.Budget < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid budget: must not be negative"}
	}
	if options.Workers < 0 || options.MaxExpansions < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers or max-expansions: must not be negative"}
	}

	switch mode := Mode(strings.ToLower(*modeFlag)); mode {
	case ModeSolve, ModeBidirectional, ModeProbe:
		options.Mode = mode
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid mode: must be 'solve', 'bidirectional' or 'probe'"}
	}

	var err error
	if options.Start, err = parseCell(*startFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid start: " + err.Error()}
	}
	if options.Goal, err = parseCell(*goalFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid goal: " + err.Error()}
	}
	if options.Mode != ModeSolve && (options.Start != nil || options.Goal != nil) {
		return nil, false, &ExitError{Code: 2, Message: "start and goal only apply to solve mode"}
	}

	if options.Frontier, err = wallbreak.ParseFrontier(*frontierFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	options.LogFormat = strings.ToLower(*logFormatFlag)
	if options.LogFormat != "text" && options.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	if err := options.LogLevel.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	return options, false, nil
}

// parseCell reads "row,col"; an empty string yields nil.
func parseCell(value string) (*wallbreak.Cell, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	rowStr, colStr, found := strings.Cut(value, ",")
	if !found {
		return nil, fmt.Errorf("%q is not 'row,col'", value)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return nil, fmt.Errorf("row: %w", err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return nil, fmt.Errorf("col: %w", err)
	}
	return &wallbreak.Cell{Row: row, Col: col}, nil
}

// NewLogger builds the process logger from the parsed options.
func NewLogger(options *Options, output io.Writer) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{Level: options.LogLevel}
	if options.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(output, handlerOptions))
	}
	return slog.New(slog.NewTextHandler(output, handlerOptions))
}
