package gol

import (
	"sync"

	"uk.ac.bris.cs/stridelife/util"
)

type workerResult struct {
	stats   StepStats
	flipped []util.Cell // Cells whose state changed, nil unless the pool tracks flips
	err     error
}

// pool is a set of worker routines that live across turns. Workers park on
// cond between turns; step publishes the buffers of the next turn, wakes
// every worker and collects exactly one result from each of them.
type pool struct {
	assignments []WorkAssignment
	track       bool // Collect flipped cells for CellsFlipped events
	cond        *sync.Cond
	running     bool // Workers exit when set to false (protected by cond.L)
	turn        int  // Incremented for every published turn (protected by cond.L)
	current     *Grid
	next        *Grid
	result_chan chan workerResult
}

// startPool creates one worker routine per assignment.
func startPool(assignments []WorkAssignment, track bool) *pool {
	pl := &pool{
		assignments: assignments,
		track:       track,
		cond:        sync.NewCond(new(sync.Mutex)),
		running:     true,
		result_chan: make(chan workerResult, len(assignments)),
	}
	for _, assignment := range assignments {
		go pl.worker(assignment)
	}
	return pl
}

// step evaluates one turn from current into next and blocks until every
// worker reported back. If any worker failed the whole turn is discarded.
func (pl *pool) step(current, next *Grid) (StepStats, []util.Cell, error) {
	pl.cond.L.Lock()
	pl.current = current
	pl.next = next
	pl.turn++
	pl.cond.Broadcast()
	pl.cond.L.Unlock()

	var total StepStats
	var flipped []util.Cell
	var err error
	for range pl.assignments {
		result := <-pl.result_chan
		if result.err != nil {
			if err == nil {
				err = result.err
			}
			continue
		}
		total = total.Add(result.stats)
		if pl.track {
			flipped = append(flipped, result.flipped...)
		}
	}
	if err != nil {
		return StepStats{}, nil, err
	}
	return total, flipped, nil
}

// close stops all worker routines. The pool must be idle.
func (pl *pool) close() {
	pl.cond.L.Lock()
	pl.running = false
	pl.cond.Broadcast()
	pl.cond.L.Unlock()
}

func (pl *pool) worker(assignment WorkAssignment) {
	var flipping_buffer *[]util.Cell
	if pl.track {
		buffer := make([]util.Cell, 0, 64)
		flipping_buffer = &buffer
	}
	turn := 0
	pl.cond.L.Lock()
	for {
		for pl.running && pl.turn == turn {
			pl.cond.Wait()
		}
		if !pl.running {
			pl.cond.L.Unlock()
			return
		}
		turn = pl.turn
		current, next := pl.current, pl.next
		pl.cond.L.Unlock()

		// The previous contents were consumed by step before this turn was published
		if flipping_buffer != nil {
			*flipping_buffer = (*flipping_buffer)[0:0]
		}
		pl.result_chan <- runWorker(assignment, current, next, flipping_buffer)

		pl.cond.L.Lock()
	}
}

// runWorker turns a panic inside evaluate into a WorkerError.
func runWorker(assignment WorkAssignment, current, next *Grid, flipping_buffer *[]util.Cell) (result workerResult) {
	defer func() {
		if cause := recover(); cause != nil {
			result = workerResult{err: &WorkerError{Worker: assignment.Worker, Cause: cause}}
		}
	}()
	result.stats = evaluate(assignment, current, next, flipping_buffer)
	if flipping_buffer != nil {
		result.flipped = *flipping_buffer
	}
	return result
}

// evaluate computes the next state of every cell in the assignment.
// It only reads current and only writes the assigned cells of next, so
// workers never contend with each other.
func evaluate(assignment WorkAssignment, current, next *Grid, flipping_buffer *[]util.Cell) StepStats {
	var stats StepStats
	cells := assignment.Size * assignment.Size
	for index := assignment.Start; index < cells; index += assignment.Stride {
		x := index % assignment.Size
		y := index / assignment.Size
		alive := current.Alive(x, y)
		next_alive, outcome := Transition(alive, current.Neighbours(x, y))
		next.Set(x, y, next_alive)
		stats.Record(outcome)
		if flipping_buffer != nil && next_alive != alive {
			*flipping_buffer = append(*flipping_buffer, util.Cell{X: x, Y: y})
		}
	}
	return stats
}
