package sdl

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"uk.ac.bris.cs/stridelife/gol"
)

// Run shows the game until events is closed, forwarding key presses to keyPresses.
// It must be called from the main goroutine with the OS thread locked.
func Run(events <-chan gol.Event, keyPresses chan<- rune) {
	var w *Window
	defer func() {
		if w != nil {
			w.Destroy()
		}
	}()

	// Key presses are dropped rather than blocking the window once the game stops reading them
	send := func(key rune) {
		select {
		case keyPresses <- key:
		default:
		}
	}

	for {
		var event gol.Event
		ok := true
		if w == nil {
			// Nothing to draw on before the board is loaded
			event, ok = <-events
		} else {
			switch e := w.PollEvent().(type) {
			case *sdl.QuitEvent:
				send('q')
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN {
					switch e.Keysym.Sym {
					case sdl.K_p:
						send('p')
					case sdl.K_s:
						send('s')
					case sdl.K_q:
						send('q')
					}
				}
			}
			select {
			case event, ok = <-events:
			default:
				continue
			}
		}
		if !ok {
			return
		}

		switch e := event.(type) {
		case gol.BoardLoaded:
			w = NewWindow(int32(e.Size), int32(e.Size))
			fmt.Printf("Completed Turns %-8v%v\n", e.CompletedTurns, e)
		case gol.CellsFlipped:
			for _, cell := range e.Cells {
				w.FlipPixel(cell.X, cell.Y)
			}
			if e.CompletedTurns == 0 {
				w.RenderFrame()
			}
		case gol.TurnComplete:
			w.RenderFrame()
		case gol.AliveCellsCount, gol.BoardOutputComplete, gol.StateChange, gol.FinalTurnComplete, gol.RunFailed:
			fmt.Printf("Completed Turns %-8v%v\n", event.GetCompletedTurns(), event)
		}
	}
}
