package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/snake"
)

// HUD draws the status line in the top-left corner, one cell in from the
// edges.
type HUD struct {
	theme  Theme
	offset int32
}

// NewHUD creates a HUD inset by one cell.
func NewHUD(theme Theme, cellSize int) *HUD {
	return &HUD{theme: theme, offset: int32(cellSize)}
}

// Draw renders the status line for the snapshot.
func (h *HUD) Draw(snap snake.Snapshot) {
	rl.DrawText(snap.StatusLine(), h.offset, h.offset, h.theme.FontSize, h.theme.Text)
}
