package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/snake"
)

// Overlay draws the centered paused and game-over panels.
type Overlay struct {
	theme          Theme
	screenW        int32
	screenH        int32
	panelW, panelH int32
}

// NewOverlay creates an overlay centered on a screen of the given size.
func NewOverlay(theme Theme, screenW, screenH int) *Overlay {
	return &Overlay{
		theme:   theme,
		screenW: int32(screenW),
		screenH: int32(screenH),
		panelW:  300,
		panelH:  150,
	}
}

// Draw renders the overlay for the snapshot's status. It reports whether the
// player clicked "Play again".
func (o *Overlay) Draw(snap snake.Snapshot) bool {
	switch snap.Status {
	case snake.StatusPaused:
		x, y := o.panel()
		o.title(x, y, "Paused")
		rl.DrawText("Press P to resume", x+o.theme.Padding, y+o.theme.Padding+o.theme.TitleSize+8, o.theme.FontSize, o.theme.Text)
		return false
	case snake.StatusGameOver:
		x, y := o.panel()
		o.title(x, y, "Game Over")
		detail := fmt.Sprintf("Score %d  Level %d", snap.Score, snap.Level)
		if snap.Cause != snake.CauseNone {
			detail += fmt.Sprintf("  (%s)", snap.Cause)
		}
		rl.DrawText(detail, x+o.theme.Padding, y+o.theme.Padding+o.theme.TitleSize+8, o.theme.FontSize, o.theme.Text)

		bounds := rl.Rectangle{
			X:      float32(x) + (float32(o.panelW)-o.theme.ButtonW)/2,
			Y:      float32(y+o.panelH) - o.theme.ButtonH - float32(o.theme.Padding),
			Width:  o.theme.ButtonW,
			Height: o.theme.ButtonH,
		}
		return gui.Button(bounds, "Play again")
	}
	return false
}

// panel draws the background and returns its top-left corner.
func (o *Overlay) panel() (int32, int32) {
	x := (o.screenW - o.panelW) / 2
	y := (o.screenH - o.panelH) / 2
	rl.DrawRectangle(x, y, o.panelW, o.panelH, o.theme.PanelBg)
	rl.DrawRectangleLines(x, y, o.panelW, o.panelH, o.theme.PanelBorder)
	return x, y
}

func (o *Overlay) title(x, y int32, text string) {
	w := rl.MeasureText(text, o.theme.TitleSize)
	rl.DrawText(text, x+(o.panelW-w)/2, y+o.theme.Padding, o.theme.TitleSize, o.theme.Accent)
}
