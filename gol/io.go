package gol

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

// ioState is the internal ioState of the io goroutine.
type ioState struct {
	params    Params
	operation *ioOperation
	cond      *sync.Cond
}

// ioCommand allows requesting behaviour from the io goroutine.
type ioCommand uint8

const (
	ioOutput ioCommand = iota
	ioInput
	ioQuit
)

type ioOperation struct {
	command   ioCommand
	filename  string // Board to read for ioInput, file name inside OutDir for ioOutput
	grid      *Grid  // Read result for ioInput, board to save for ioOutput
	steps     int    // Step count stored in the header
	err       error
	completed bool
}

// writeBoard saves the board of the current operation into the output directory.
func (io *ioState) writeBoard() {
	operation := io.operation
	if operation.err = os.MkdirAll(io.params.OutDir, os.ModePerm); operation.err != nil {
		return
	}
	path := filepath.Join(io.params.OutDir, operation.filename)
	file, err := os.Create(path)
	if err != nil {
		operation.err = err
		return
	}
	defer file.Close()

	if operation.err = SaveBoard(file, operation.grid, operation.steps); operation.err != nil {
		return
	}
	if operation.err = file.Sync(); operation.err != nil {
		return
	}
	operation.filename = path
	log.Printf("Board %s output done", path)
}

// readBoard loads the board named by the current operation.
func (io *ioState) readBoard() {
	operation := io.operation
	file, err := os.Open(operation.filename)
	if err != nil {
		operation.err = err
		return
	}
	defer file.Close()

	operation.grid, operation.steps, operation.err = ReadBoard(file)
	if operation.err == nil {
		log.Printf("Board %s input done: %dx%d, %d steps",
			operation.filename, operation.grid.size, operation.grid.size, operation.steps)
	}
}

// startIo should be the entrypoint of the io goroutine.
// The caller must hold io.cond.L, ownership of the lock passes to this goroutine.
func startIo(io *ioState) {

	for {
		io.cond.Wait()
		switch io.operation.command {
		case ioInput:
			io.readBoard()
		case ioOutput:
			io.writeBoard()
		case ioQuit:
			io.cond.L.Unlock()
			return
		}
		io.operation.completed = true
		io.cond.Signal()
	}
}

// Initiate an IO request
func (io *ioState) sendIoRequest(operation *ioOperation) {
	io.cond.L.Lock()
	io.operation = operation
	io.cond.Signal()
	io.cond.L.Unlock()
}

// Wait until last IO operation completed
func (io *ioState) waitIoRequest() error {

	io.cond.L.Lock()
	for !io.operation.completed {
		io.cond.Wait()
	}
	err := io.operation.err
	io.cond.L.Unlock()
	return err
}

// Send a signal to IO thread to quit
func (io *ioState) quit() {
	io.cond.L.Lock()
	io.operation = &ioOperation{command: ioQuit}
	io.cond.Signal()
	io.cond.L.Unlock()
}
