package gol

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeBoardFile saves grid in a temporary directory and returns its path.
func writeBoardFile(t *testing.T, grid *Grid, steps int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := SaveBoard(file, grid, steps); err != nil {
		t.Fatal(err)
	}
	return path
}

// runGame runs the game to completion and returns every event it sent.
func runGame(p Params, keys ...rune) []Event {
	events := make(chan Event, 1000)
	keyPresses := make(chan rune, len(keys)+1)
	for _, key := range keys {
		keyPresses <- key
	}
	go Run(p, events, keyPresses)
	var received []Event
	for event := range events {
		received = append(received, event)
	}
	return received
}

func finalTurn(t *testing.T, events []Event) FinalTurnComplete {
	t.Helper()
	for _, event := range events {
		if final, ok := event.(FinalTurnComplete); ok {
			return final
		}
		if failed, ok := event.(RunFailed); ok {
			t.Fatalf("run failed: %v", failed.Err)
		}
	}
	t.Fatal("no FinalTurnComplete event")
	return FinalTurnComplete{}
}

func TestRunMatchesSimulate(t *testing.T) {
	initial := randomGrid(t, 16, 11)
	want, err := Simulate(initial, 20, 1)
	if err != nil {
		t.Fatal(err)
	}
	p := Params{Turns: -1, Threads: 6, Board: writeBoardFile(t, initial, 20), OutDir: t.TempDir()}
	events := runGame(p)

	loaded, ok := events[0].(BoardLoaded)
	if !ok || loaded.Size != 16 || loaded.Turns != 20 {
		t.Fatalf("first event = %v, want BoardLoaded 16x16 with 20 turns", events[0])
	}

	final := finalTurn(t, events)
	if final.CompletedTurns != 20 {
		t.Errorf("final turn = %d, want 20", final.CompletedTurns)
	}
	if !final.Board.Equal(want.Final) {
		t.Error("final board differs from Simulate")
	}
	if final.Total != want.Total {
		t.Errorf("total = %+v, want %+v", final.Total, want.Total)
	}
	if len(final.Alive) != want.Final.AliveCount() {
		t.Errorf("%d alive cells reported, want %d", len(final.Alive), want.Final.AliveCount())
	}

	// Replaying the flipped cells on the initial board reproduces the final board
	replay := initial.Clone()
	turns := 0
	for _, event := range events {
		switch e := event.(type) {
		case CellsFlipped:
			if e.CompletedTurns == 0 {
				continue
			}
			for _, cell := range e.Cells {
				replay.Set(cell.X, cell.Y, !replay.Alive(cell.X, cell.Y))
			}
		case TurnComplete:
			turns++
			if e.Stats != want.Steps[e.CompletedTurns-1] {
				t.Errorf("turn %d: stats = %+v, want %+v", e.CompletedTurns, e.Stats, want.Steps[e.CompletedTurns-1])
			}
			if e.Board != nil {
				t.Error("board attached without Debug")
			}
		}
	}
	if turns != 20 {
		t.Errorf("%d TurnComplete events, want 20", turns)
	}
	if !replay.Equal(want.Final) {
		t.Error("flipped cells do not reproduce the final board")
	}

	last, ok := events[len(events)-1].(StateChange)
	if !ok || last.NewState != Quitting {
		t.Errorf("last event = %v, want Quitting", events[len(events)-1])
	}
	if _, err := os.Stat(filepath.Join(p.OutDir, "16x16x20.txt")); err != nil {
		t.Errorf("final board not saved: %v", err)
	}
}

func TestRunTurnsOverride(t *testing.T) {
	initial := randomGrid(t, 5, 2)
	p := Params{Turns: 3, Threads: 2, Board: writeBoardFile(t, initial, 50), OutDir: t.TempDir()}
	final := finalTurn(t, runGame(p))
	if final.CompletedTurns != 3 {
		t.Errorf("final turn = %d, want 3", final.CompletedTurns)
	}
}

func TestRunDebugAttachesBoards(t *testing.T) {
	initial := gridFromRows(t, [][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	})
	p := Params{Turns: 2, Threads: 1, Board: writeBoardFile(t, initial, 2), OutDir: t.TempDir(), Debug: true}
	events := runGame(p)
	loaded := events[0].(BoardLoaded)
	if loaded.Board == nil || !loaded.Board.Equal(initial) {
		t.Error("BoardLoaded does not carry the initial board")
	}
	for _, event := range events {
		if e, ok := event.(TurnComplete); ok {
			if e.Board == nil {
				t.Fatalf("turn %d: no board attached", e.CompletedTurns)
			}
			// A blinker alternates between its two phases
			want_horizontal := e.CompletedTurns%2 == 1
			if e.Board.Alive(0, 1) != want_horizontal || e.Board.Alive(1, 0) == want_horizontal {
				t.Errorf("turn %d: unexpected blinker phase", e.CompletedTurns)
			}
		}
	}
}

func TestRunKeyPresses(t *testing.T) {
	initial := randomGrid(t, 8, 5)
	out := t.TempDir()
	p := Params{Turns: 1000, Threads: 4, Board: writeBoardFile(t, initial, 1000), OutDir: out}
	events := runGame(p, 'p', 's', 'p', 'q')

	var states []State
	saved := false
	for _, event := range events {
		switch e := event.(type) {
		case StateChange:
			states = append(states, e.NewState)
		case BoardOutputComplete:
			if e.CompletedTurns == 1 {
				saved = true
				if _, err := os.Stat(e.Filename); err != nil {
					t.Errorf("saved board missing: %v", err)
				}
			}
		}
	}
	want := []State{Executing, Paused, Executing, Quitting}
	if len(states) != len(want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("states = %v, want %v", states, want)
			break
		}
	}
	if !saved {
		t.Error("'s' did not save the board")
	}
	final := finalTurn(t, events)
	if final.CompletedTurns >= 1000 {
		t.Errorf("'q' did not stop the game early (turn %d)", final.CompletedTurns)
	}
}

func TestRunFailures(t *testing.T) {
	grid, _ := NewGrid(3)
	board := writeBoardFile(t, grid, 1)
	tests := map[string]struct {
		p    Params
		want error
	}{
		"missing board": {Params{Turns: 1, Threads: 1, Board: filepath.Join(t.TempDir(), "none.txt")}, os.ErrNotExist},
		"no threads":    {Params{Turns: 1, Threads: 0, Board: board}, ErrInvalidThreads},
	}
	for name, test := range tests {
		events := runGame(test.p)
		if len(events) != 1 {
			t.Errorf("%s: got %d events, want only RunFailed", name, len(events))
			continue
		}
		failed, ok := events[0].(RunFailed)
		if !ok || !errors.Is(failed.Err, test.want) {
			t.Errorf("%s: event = %v, want failure matching %v", name, events[0], test.want)
		}
	}
}
