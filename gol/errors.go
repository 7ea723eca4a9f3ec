package gol

import (
	"errors"
	"fmt"
)

// Configuration errors are returned before any turn is evaluated.
var (
	ErrInvalidSize    = errors.New("gol: grid size must be positive")
	ErrInvalidThreads = errors.New("gol: thread count must be positive")
	ErrInvalidTurns   = errors.New("gol: turn count must not be negative")
	ErrSizeMismatch   = errors.New("gol: grids differ in size")
	ErrMalformedBoard = errors.New("gol: malformed board")
)

// ErrGridTooLarge is returned when the cell storage of a grid cannot be represented.
var ErrGridTooLarge = errors.New("gol: grid too large")

// ErrWorkerFailed matches any *WorkerError with errors.Is.
var ErrWorkerFailed = errors.New("gol: worker failed")

// WorkerError reports a worker routine that terminated abnormally.
// The turn it belonged to is discarded as a whole.
type WorkerError struct {
	Worker int
	Cause  interface{} // Value recovered from the panic
}

func (err *WorkerError) Error() string {
	return fmt.Sprintf("gol: worker %d failed: %v", err.Worker, err.Cause)
}

func (err *WorkerError) Is(target error) bool {
	return target == ErrWorkerFailed
}

// ErrSharedBuffer is returned when a turn would read from and write to the same grid.
var ErrSharedBuffer = errors.New("gol: current and next grid must be distinct")
