// Package term renders the board in a terminal with tcell and reads keys
// into the command queue.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/snake/components"
	"github.com/pthm-cable/snake/scene"
)

// Each board cell is two terminal columns wide so cells look square.
const cellCols = 2

var cellStyles = [components.NumKinds]tcell.Style{
	components.KindObstacle: tcell.StyleDefault.Background(tcell.ColorGray),
	components.KindFood:     tcell.StyleDefault.Background(tcell.ColorRed),
	components.KindBody:     tcell.StyleDefault.Background(tcell.ColorGreen),
	components.KindHead:     tcell.StyleDefault.Background(tcell.ColorLime),
}

// Screen draws scenes on a tcell screen.
type Screen struct {
	screen tcell.Screen
	border tcell.Style
	text   tcell.Style
}

// New initializes the terminal screen.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen wraps an existing screen and initializes it.
func NewWithScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	s.HideCursor()
	s.Clear()
	return &Screen{
		screen: s,
		border: tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
		text:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}, nil
}

// Close restores the terminal.
func (t *Screen) Close() { t.screen.Fini() }

// Draw renders the board with a border and the status line below it.
func (t *Screen) Draw(sc *scene.Scene) {
	snap := sc.Snapshot()
	t.screen.Clear()

	w := snap.CellsWide*cellCols + 2
	h := snap.CellsHigh + 2
	t.box(w, h)

	for _, kind := range scene.Layers {
		style := cellStyles[kind]
		sc.Each(kind, func(c components.Cell, _ components.Sprite) {
			for i := 0; i < cellCols; i++ {
				t.screen.SetContent(1+c.X*cellCols+i, 1+c.Y, ' ', nil, style)
			}
		})
	}

	t.print(0, h, snap.StatusLine(), t.text)
	t.print(0, h+1, "arrows/wasd move  p pause  enter new game  q quit", t.border)
	t.screen.Show()
}

func (t *Screen) box(w, h int) {
	for x := 1; x < w-1; x++ {
		t.screen.SetContent(x, 0, tcell.RuneHLine, nil, t.border)
		t.screen.SetContent(x, h-1, tcell.RuneHLine, nil, t.border)
	}
	for y := 1; y < h-1; y++ {
		t.screen.SetContent(0, y, tcell.RuneVLine, nil, t.border)
		t.screen.SetContent(w-1, y, tcell.RuneVLine, nil, t.border)
	}
	t.screen.SetContent(0, 0, tcell.RuneULCorner, nil, t.border)
	t.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, t.border)
	t.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, t.border)
	t.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, t.border)
}

func (t *Screen) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
