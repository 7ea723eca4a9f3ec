package gol

import (
	"fmt"

	"uk.ac.bris.cs/stridelife/util"
)

// Event is sent by Run to report progress of the game.
type Event interface {
	fmt.Stringer

	// GetCompletedTurns returns the number of turns evaluated when the event was sent.
	GetCompletedTurns() int
}

// State describes the execution state of Run.
type State int

const (
	Paused State = iota
	Executing
	Quitting
)

func (state State) String() string {
	switch state {
	case Paused:
		return "Paused"
	case Executing:
		return "Executing"
	case Quitting:
		return "Quitting"
	default:
		return "Incorrect State"
	}
}

// AliveCellsCount is sent every two seconds while the game is executing.
type AliveCellsCount struct {
	CompletedTurns int
	CellsCount     int
}

// BoardOutputComplete is sent once a board has been saved to disk.
type BoardOutputComplete struct {
	CompletedTurns int
	Filename       string
}

// StateChange is sent whenever the execution state changes.
type StateChange struct {
	CompletedTurns int
	NewState       State
}

// CellsFlipped lists the cells whose state changed during a turn.
// The initial live cells are sent with CompletedTurns 0.
type CellsFlipped struct {
	CompletedTurns int
	Cells          []util.Cell
}

// TurnComplete is sent after every turn. Board is a copy of the new
// generation and is only filled in when Params.Debug is set.
type TurnComplete struct {
	CompletedTurns int
	Stats          StepStats
	Board          *Grid
}

// FinalTurnComplete is sent once the last turn has been evaluated, or when
// the game was quit early.
type FinalTurnComplete struct {
	CompletedTurns int
	Alive          []util.Cell
	Board          *Grid
	Total          StepStats
}

// RunFailed is sent instead of FinalTurnComplete when the game cannot continue.
type RunFailed struct {
	CompletedTurns int
	Err            error
}

func (event AliveCellsCount) String() string {
	return fmt.Sprintf("Alive Cells %v", event.CellsCount)
}

func (event AliveCellsCount) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event BoardOutputComplete) String() string {
	return fmt.Sprintf("File %v Output Done", event.Filename)
}

func (event BoardOutputComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event StateChange) String() string {
	return fmt.Sprintf("%v", event.NewState)
}

func (event StateChange) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event CellsFlipped) String() string {
	return fmt.Sprintf("%d Cells Flipped", len(event.Cells))
}

func (event CellsFlipped) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event TurnComplete) String() string {
	return fmt.Sprintf("Turn %d Complete", event.CompletedTurns)
}

func (event TurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event FinalTurnComplete) String() string {
	return fmt.Sprintf("Final Turn %d Complete, %d Alive", event.CompletedTurns, len(event.Alive))
}

func (event FinalTurnComplete) GetCompletedTurns() int {
	return event.CompletedTurns
}

func (event RunFailed) String() string {
	return fmt.Sprintf("Failed: %v", event.Err)
}

func (event RunFailed) GetCompletedTurns() int {
	return event.CompletedTurns
}

// BoardLoaded is sent once the board has been read, before any other event.
// Board is a copy of the initial generation, only filled in when Params.Debug is set.
type BoardLoaded struct {
	CompletedTurns int
	Size           int
	Turns          int // Turns that will be evaluated unless quit early
	Board          *Grid
}

func (event BoardLoaded) String() string {
	return fmt.Sprintf("Board %dx%d Loaded, %d Turns", event.Size, event.Size, event.Turns)
}

func (event BoardLoaded) GetCompletedTurns() int {
	return event.CompletedTurns
}
