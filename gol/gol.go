package gol

import "sync"

// Params provides the details of how to run the Game of Life and which board to load.
type Params struct {
	Turns   int    // Turns to evaluate, negative to use the step count stored in the board
	Threads int    // Requested worker count, clamped to the number of cells
	Board   string // Path of the board to load
	OutDir  string // Directory for saved boards
	Debug   bool   // Attach a copy of every generation to TurnComplete
}

// Run starts the processing of Game of Life. It loads the board, evaluates
// the turns and reports progress on events, which is closed on return.
// keyPresses accepts 's' (save), 'p' (pause/resume) and 'q' (quit) and may be nil.
func Run(p Params, events chan<- Event, keyPresses <-chan rune) {

	io := &ioState{
		params: p,
		cond:   sync.NewCond(new(sync.Mutex)),
	}
	io.cond.L.Lock()
	go startIo(io) // transfer ownership of lock to startIo

	distributorChannels := distributorChannels{
		events:     events,
		keyPresses: keyPresses,
	}
	distributor(p, io, distributorChannels)
}
