package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"uk.ac.bris.cs/stridelife/gol"
	"uk.ac.bris.cs/stridelife/sdl"
)

// main is the function called when starting Game of Life with 'go run .'
func main() {
	runtime.LockOSThread()

	var params gol.Params

	flag.IntVar(
		&params.Threads,
		"t",
		8,
		"Specify the number of worker threads to use. Defaults to 8.")

	flag.StringVar(
		&params.Board,
		"board",
		"",
		"Board file to load. May also be given as the first argument.")

	flag.IntVar(
		&params.Turns,
		"turns",
		-1,
		"Specify the number of turns to process. Defaults to the step count stored in the board.")

	flag.StringVar(
		&params.OutDir,
		"out",
		"out",
		"Directory where boards are saved.")

	flag.BoolVar(
		&params.Debug,
		"debug",
		false,
		"Print every generation with its statistics. Only applies with -noVis.")

	noVis := flag.Bool(
		"noVis",
		false,
		"Disables the SDL window, so there is no visualisation during the tests.")

	flag.Parse()

	if params.Board == "" && flag.NArg() > 0 {
		params.Board = flag.Arg(0)
	}
	if params.Board == "" {
		log.Fatal("No board given, use -board <file>")
	}
	if params.Threads < 1 {
		log.Fatalf("Thread count must be greater than 0, got %d", params.Threads)
	}

	fmt.Println("Board:", params.Board)
	fmt.Println("Threads:", params.Threads)

	keyPresses := make(chan rune, 10)
	events := make(chan gol.Event, 1000)

	go gol.Run(params, events, keyPresses)
	if !(*noVis) {
		sdl.Run(events, keyPresses)
		return
	}
	if err := report(os.Stdout, events); err != nil {
		log.Fatal(err)
	}
}

var errNoResult = errors.New("game ended without a final turn")

// report prints the generations carried by events and the final board with
// the statistics of the whole run. It returns the failure reported by the
// game, if any.
func report(w io.Writer, events <-chan gol.Event) error {
	var failure error
	finished := false
	for event := range events {
		switch e := event.(type) {
		case gol.BoardLoaded:
			if e.Board != nil {
				fmt.Fprintln(w, "Initial:")
				if err := printGeneration(w, e.Board, gol.StepStats{}); err != nil {
					return err
				}
			}
		case gol.TurnComplete:
			if e.Board != nil {
				fmt.Fprintf(w, "Step %d ----------\n", e.CompletedTurns)
				if err := printGeneration(w, e.Board, e.Stats); err != nil {
					return err
				}
			}
		case gol.FinalTurnComplete:
			finished = true
			fmt.Fprintln(w, "Final:")
			if err := printGeneration(w, e.Board, e.Total); err != nil {
				return err
			}
		case gol.RunFailed:
			failure = e.Err
		case gol.CellsFlipped:
		default:
			log.Printf("Completed Turns %-8v%v", event.GetCompletedTurns(), event)
		}
	}
	if failure == nil && !finished {
		failure = errNoResult
	}
	return failure
}

func printGeneration(w io.Writer, board *gol.Grid, stats gol.StepStats) error {
	if err := gol.WriteBoard(w, board); err != nil {
		return err
	}
	return gol.WriteStats(w, stats)
}
