package gol

import (
	"fmt"
	"math"

	"uk.ac.bris.cs/stridelife/util"
)

// Grid is a square board of cells backed by a single contiguous slice.
// Each row is a view into the backing slice so cells can be addressed either
// by coordinate or by linear index (y*size + x).
type Grid struct {
	size  int
	cells []uint8   // 1 = alive, 0 = dead
	rows  [][]uint8 // Row views over cells
}

// NewGrid makes a grid with every cell dead
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if size > math.MaxInt/size {
		return nil, fmt.Errorf("%w: %d x %d cells", ErrGridTooLarge, size, size)
	}
	grid := &Grid{
		size:  size,
		cells: make([]uint8, size*size),
		rows:  make([][]uint8, size),
	}
	cell_data := grid.cells
	for y := 0; y != size; y++ {
		grid.rows[y] = cell_data[0:size:size]
		cell_data = cell_data[size:]
	}
	return grid, nil
}

// Size returns the side length of the board.
func (grid *Grid) Size() int {
	return grid.size
}

func (grid *Grid) checkBounds(x, y int) {
	if x < 0 || y < 0 || x >= grid.size || y >= grid.size {
		panic(fmt.Sprintf("gol: cell (%d, %d) outside %dx%d grid", x, y, grid.size, grid.size))
	}
}

// Alive reports whether the cell at (x, y) is alive.
func (grid *Grid) Alive(x, y int) bool {
	grid.checkBounds(x, y)
	return grid.rows[y][x] != 0
}

// Set changes the state of the cell at (x, y).
func (grid *Grid) Set(x, y int, alive bool) {
	grid.checkBounds(x, y)
	if alive {
		grid.rows[y][x] = 1
	} else {
		grid.rows[y][x] = 0
	}
}

// Index converts a coordinate to its linear index.
func (grid *Grid) Index(x, y int) int {
	grid.checkBounds(x, y)
	return y*grid.size + x
}

// Coord converts a linear index back to a coordinate.
func (grid *Grid) Coord(index int) util.Cell {
	if index < 0 || index >= len(grid.cells) {
		panic(fmt.Sprintf("gol: index %d outside %dx%d grid", index, grid.size, grid.size))
	}
	return util.Cell{X: index % grid.size, Y: index / grid.size}
}

// Neighbours counts the live cells among the eight surrounding (x, y).
// The 3x3 block is clamped to the board, cells past an edge do not wrap.
func (grid *Grid) Neighbours(x, y int) int {
	grid.checkBounds(x, y)
	start_x, end_x := x, x
	start_y, end_y := y, y
	if x > 0 {
		start_x--
	}
	if x+1 < grid.size {
		end_x++
	}
	if y > 0 {
		start_y--
	}
	if y+1 < grid.size {
		end_y++
	}
	count := 0
	for j := start_y; j <= end_y; j++ {
		row := grid.rows[j]
		for i := start_x; i <= end_x; i++ {
			count += int(row[i])
		}
	}
	return count - int(grid.rows[y][x])
}

// AliveCells lists live cells in row-major order.
func (grid *Grid) AliveCells() []util.Cell {
	cells := make([]util.Cell, 0, grid.AliveCount())
	for y := 0; y != grid.size; y++ {
		for x := 0; x != grid.size; x++ {
			if grid.rows[y][x] != 0 {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

func (grid *Grid) AliveCount() int {
	count := 0
	for _, cell := range grid.cells {
		count += int(cell)
	}
	return count
}

// Clone makes a deep copy with its own backing storage.
func (grid *Grid) Clone() *Grid {
	clone, _ := NewGrid(grid.size) // size already validated
	copy(clone.cells, grid.cells)
	return clone
}

func (grid *Grid) Equal(other *Grid) bool {
	if grid.size != other.size {
		return false
	}
	for i := range grid.cells {
		if grid.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
