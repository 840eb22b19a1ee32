// Package renderer draws the board scene with raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/scene"
)

// Palette maps each cell kind to its fill color.
type Palette struct {
	Background rl.Color
	Grid       rl.Color
	Cells      [components.NumKinds]rl.Color
}

// DefaultPalette returns the classic colors: red food, green snake, gray
// obstacles on black.
func DefaultPalette() Palette {
	var p Palette
	p.Background = rl.Black
	p.Grid = rl.Color{R: 40, G: 40, B: 40, A: 255}
	p.Cells[components.KindObstacle] = rl.Gray
	p.Cells[components.KindFood] = rl.Red
	p.Cells[components.KindBody] = rl.Green
	p.Cells[components.KindHead] = rl.Green
	return p
}

// BoardRenderer draws the grid and every occupied cell.
type BoardRenderer struct {
	cellSize  int32
	cellsWide int32
	cellsHigh int32
	palette   Palette
}

// NewBoardRenderer creates a renderer for a board of the given cell size.
func NewBoardRenderer(cellSize, cellsWide, cellsHigh int) *BoardRenderer {
	return &BoardRenderer{
		cellSize:  int32(cellSize),
		cellsWide: int32(cellsWide),
		cellsHigh: int32(cellsHigh),
		palette:   DefaultPalette(),
	}
}

// Draw renders the scene. Must be called between BeginDrawing and EndDrawing.
func (r *BoardRenderer) Draw(sc *scene.Scene) {
	rl.ClearBackground(r.palette.Background)
	r.drawGrid()
	for _, kind := range scene.Layers {
		color := r.palette.Cells[kind]
		sc.Each(kind, func(c components.Cell, _ components.Sprite) {
			r.drawCell(int32(c.X), int32(c.Y), color)
		})
	}
}

func (r *BoardRenderer) drawGrid() {
	w := r.cellsWide * r.cellSize
	h := r.cellsHigh * r.cellSize
	for i := int32(0); i <= r.cellsWide; i++ {
		rl.DrawLine(i*r.cellSize, 0, i*r.cellSize, h, r.palette.Grid)
	}
	for j := int32(0); j <= r.cellsHigh; j++ {
		rl.DrawLine(0, j*r.cellSize, w, j*r.cellSize, r.palette.Grid)
	}
}

// drawCell fills a cell with a raised bevel.
func (r *BoardRenderer) drawCell(x, y int32, color rl.Color) {
	px, py, s := x*r.cellSize, y*r.cellSize, r.cellSize
	rl.DrawRectangle(px, py, s, s, color)

	light := rl.ColorBrightness(color, 0.35)
	dark := rl.ColorBrightness(color, -0.35)
	rl.DrawLine(px, py, px+s-1, py, light)
	rl.DrawLine(px, py, px, py+s-1, light)
	rl.DrawLine(px, py+s-1, px+s-1, py+s-1, dark)
	rl.DrawLine(px+s-1, py, px+s-1, py+s-1, dark)
}
