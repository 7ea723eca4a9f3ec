package gol

import "fmt"

// Result is the outcome of a completed run.
type Result struct {
	Final *Grid       // Board after the last turn
	Steps []StepStats // Statistics of every turn in order
	Total StepStats   // Sum of Steps
}

func checkThreads(threads int) error {
	if threads < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreads, threads)
	}
	return nil
}

// Step evaluates a single turn from current into next using up to threads
// workers. current is left untouched and every cell of next is overwritten.
// Swapping the roles of the two grids is up to the caller.
func Step(current, next *Grid, threads int) (StepStats, error) {
	if err := checkThreads(threads); err != nil {
		return StepStats{}, err
	}
	if current.size != next.size {
		return StepStats{}, fmt.Errorf("%w: %d and %d", ErrSizeMismatch, current.size, next.size)
	}
	if current == next {
		return StepStats{}, ErrSharedBuffer
	}
	pl := startPool(Partition(current.size, threads), false)
	defer pl.close()
	stats, _, err := pl.step(current, next)
	return stats, err
}

// Simulate evaluates turns generations of initial with up to threads workers.
// initial is not modified. Two grids are allocated for the whole run and
// swap roles after every turn.
func Simulate(initial *Grid, turns, threads int) (Result, error) {
	if err := checkThreads(threads); err != nil {
		return Result{}, err
	}
	if turns < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrInvalidTurns, turns)
	}
	current := initial.Clone()
	next, err := NewGrid(initial.size)
	if err != nil {
		return Result{}, err
	}

	pl := startPool(Partition(initial.size, threads), false)
	defer pl.close()

	var total StepStats
	steps := make([]StepStats, 0, turns)
	for turn := 0; turn != turns; turn++ {
		stats, _, err := pl.step(current, next)
		if err != nil {
			return Result{}, fmt.Errorf("turn %d: %w", turn+1, err)
		}
		steps = append(steps, stats)
		total = total.Add(stats)
		current, next = next, current
	}
	return Result{Final: current, Steps: steps, Total: total}, nil
}
