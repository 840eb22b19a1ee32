// Package board provides tile geometry and constrained random placement for the grid.
package board

import "fmt"

// Tile is one cell coordinate on the board grid.
type Tile struct {
	X, Y int
}

// Add returns the tile offset by the given direction.
func (t Tile) Add(d Direction) Tile {
	return Tile{X: t.X + d.X, Y: t.Y + d.Y}
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}

// Board holds the grid dimensions in cells.
type Board struct {
	width, height int
}

// New creates a board of the given size in cells.
func New(cellsWide, cellsHigh int) (Board, error) {
	if cellsWide <= 0 || cellsHigh <= 0 {
		return Board{}, fmt.Errorf("board dimensions must be positive, got %dx%d", cellsWide, cellsHigh)
	}
	return Board{width: cellsWide, height: cellsHigh}, nil
}

// FromPixels derives a board from pixel dimensions and a cell size.
// Partial cells at the right and bottom edges are dropped.
func FromPixels(pixelWidth, pixelHeight, cellSize int) (Board, error) {
	if cellSize <= 0 {
		return Board{}, fmt.Errorf("cell size must be positive, got %d", cellSize)
	}
	return New(pixelWidth/cellSize, pixelHeight/cellSize)
}

// CellsWide returns the board width in cells.
func (b Board) CellsWide() int { return b.width }

// CellsHigh returns the board height in cells.
func (b Board) CellsHigh() int { return b.height }

// Area returns the total number of cells.
func (b Board) Area() int { return b.width * b.height }

// Contains reports whether t lies inside [0,width) x [0,height).
func (b Board) Contains(t Tile) bool {
	return t.X >= 0 && t.X < b.width && t.Y >= 0 && t.Y < b.height
}
