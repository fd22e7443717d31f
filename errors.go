package wallbreak

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is matched by every *InvalidShapeError.
	ErrInvalidShape = errors.New("invalid grid shape")
	// ErrOutOfBounds is matched by every *OutOfBoundsError.
	ErrOutOfBounds = errors.New("cell out of bounds")

	ErrNegativeBudget = errors.New("wall budget must not be negative")
	ErrNilGrid        = errors.New("grid is nil")
)

// InvalidShapeError reports a grid that is empty, ragged or holds an unknown marker.
type InvalidShapeError struct {
	Row    int // offending row, -1 when the grid itself is empty
	Reason string
}

func (e *InvalidShapeError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: %s", ErrInvalidShape, e.Reason)
	}
	return fmt.Sprintf("%s: row %d: %s", ErrInvalidShape, e.Row, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidShape) match.
func (e *InvalidShapeError) Is(target error) bool { return target == ErrInvalidShape }

// OutOfBoundsError reports a cell outside a rows x cols grid.
type OutOfBoundsError struct {
	Cell Cell
	Rows int
	Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: %s not in %dx%d grid", ErrOutOfBounds, e.Cell, e.Rows, e.Cols)
}

// Is lets errors.Is(err, ErrOutOfBounds) match.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }
