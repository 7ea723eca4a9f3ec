package gol

import (
	"bufio"
	"fmt"
	"io"
)

// ReadBoard parses a board in the text format
//
//	<size> <steps>
//	<row 0>
//	...
//	<row size-1>
//
// where character i of a row is column i and 'x' marks a live cell. Any other
// character is dead, and rows shorter than size are padded with dead cells.
func ReadBoard(r io.Reader) (*Grid, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<30)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, 0, err
		}
		return nil, 0, fmt.Errorf("%w: missing header", ErrMalformedBoard)
	}
	var size, steps int
	if _, err := fmt.Sscan(scanner.Text(), &size, &steps); err != nil {
		return nil, 0, fmt.Errorf("%w: header %q: %v", ErrMalformedBoard, scanner.Text(), err)
	}
	if steps < 0 {
		return nil, 0, fmt.Errorf("%w: negative step count %d", ErrMalformedBoard, steps)
	}
	grid, err := NewGrid(size)
	if err != nil {
		return nil, 0, err
	}

	for y := 0; y != size; y++ {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, 0, err
			}
			return nil, 0, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedBoard, size, y)
		}
		row := scanner.Bytes()
		for x := 0; x != size && x != len(row); x++ {
			if row[x] == 'x' {
				grid.rows[y][x] = 1
			}
		}
	}
	return grid, steps, nil
}

// WriteBoard prints one line per row, 'x' for a live cell and ' ' for a dead one.
func WriteBoard(w io.Writer, grid *Grid) error {
	writer := bufio.NewWriter(w)
	line := make([]byte, grid.size+1)
	line[grid.size] = '\n'
	for y := 0; y != grid.size; y++ {
		for x, cell := range grid.rows[y] {
			if cell != 0 {
				line[x] = 'x'
			} else {
				line[x] = ' '
			}
		}
		if _, err := writer.Write(line); err != nil {
			return err
		}
	}
	return writer.Flush()
}

// SaveBoard writes the header line followed by the board, so that the output
// can be read back with ReadBoard.
func SaveBoard(w io.Writer, grid *Grid, steps int) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", grid.size, steps); err != nil {
		return err
	}
	return WriteBoard(w, grid)
}

// WriteStats prints the statistics block of a turn or of a whole run.
func WriteStats(w io.Writer, stats StepStats) error {
	_, err := fmt.Fprintf(w, "Statistics:\n"+
		"\tBorns..............: %d\n"+
		"\tSurvivals..........: %d\n"+
		"\tLoneliness deaths..: %d\n"+
		"\tOvercrowding deaths: %d\n\n",
		stats.Born, stats.Survived, stats.Loneliness, stats.Overcrowding)
	return err
}
