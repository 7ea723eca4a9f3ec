package gol

import (
	"fmt"
	"log"
	"time"
)

type distributorChannels struct {
	events     chan<- Event
	keyPresses <-chan rune
}

// distributor loads the board, drives the worker pool turn by turn and
// interacts with the other goroutines.
func distributor(p Params, io *ioState, c distributorChannels) {

	// Close the channel to stop the consumer gracefully. Removing may cause deadlock.
	defer close(c.events)
	defer io.quit()

	turn := 0
	fail := func(err error) {
		log.Printf("Run failed at turn %d: %v", turn, err)
		c.events <- RunFailed{turn, err}
	}

	if err := checkThreads(p.Threads); err != nil {
		fail(err)
		return
	}

	// Read file
	operation := ioOperation{
		command:  ioInput,
		filename: p.Board,
	}
	io.sendIoRequest(&operation)
	if err := io.waitIoRequest(); err != nil {
		fail(err)
		return
	}
	turns := p.Turns
	if turns < 0 {
		turns = operation.steps
	}

	// Both buffers live for the whole run and swap roles after every turn
	matrix := operation.grid
	next_matrix, err := NewGrid(matrix.Size())
	if err != nil {
		fail(err)
		return
	}
	size := matrix.Size()
	count := matrix.AliveCount()
	loaded := BoardLoaded{CompletedTurns: turn, Size: size, Turns: turns}
	if p.Debug {
		loaded.Board = matrix.Clone()
	}
	c.events <- loaded
	c.events <- CellsFlipped{turn, matrix.AliveCells()}

	// Create worker routines
	assignments := Partition(size, p.Threads)
	pl := startPool(assignments, true)
	defer pl.close()
	log.Printf("Run: %dx%dx%d-%d (%d workers)", size, size, turns, p.Threads, len(assignments))

	// Write file function
	write := func() error {
		operation := &ioOperation{
			command:  ioOutput,
			filename: fmt.Sprintf("%dx%dx%d.txt", size, size, turn),
			grid:     matrix,
			steps:    turns - turn,
		}
		io.sendIoRequest(operation)
		if err := io.waitIoRequest(); err != nil {
			return err
		}
		c.events <- BoardOutputComplete{turn, operation.filename}
		return nil
	}

	// Alive timer
	ticker := time.NewTicker(time.Second * 2)
	defer ticker.Stop()

	paused := false
	quit := false
	react := func(key rune) error {
		switch key {
		case 's':
			return write()
		case 'q':
			quit = true
		case 'p':
			paused = !paused
			if paused {
				c.events <- StateChange{turn, Paused}
			} else {
				c.events <- StateChange{turn, Executing}
			}
		}
		return nil
	}

	// Evaluate each turn
	var total StepStats
	c.events <- StateChange{turn, Executing}
	for turn != turns && !quit {
		stats, flipped, err := pl.step(matrix, next_matrix)
		if err != nil {
			fail(err)
			return
		}
		// Swap current and next matrix
		matrix, next_matrix = next_matrix, matrix
		total = total.Add(stats)
		count = stats.Alive()
		// Turn completed
		turn++
		c.events <- CellsFlipped{turn, flipped}
		complete := TurnComplete{CompletedTurns: turn, Stats: stats}
		if p.Debug {
			complete.Board = matrix.Clone()
		}
		c.events <- complete

		// Handle events
		select {
		case <-ticker.C:
			c.events <- AliveCellsCount{turn, count}
		case key := <-c.keyPresses:
			err = react(key)
		default:
		}
		for err == nil && paused && !quit {
			err = react(<-c.keyPresses)
		}
		if err != nil {
			fail(err)
			return
		}
	}

	c.events <- FinalTurnComplete{
		CompletedTurns: turn,
		Alive:          matrix.AliveCells(),
		Board:          matrix,
		Total:          total,
	}

	// Write file
	if err := write(); err != nil {
		fail(err)
		return
	}
	log.Printf("Run complete: %d turns, %d cells alive", turn, count)

	c.events <- StateChange{turn, Quitting}
}
