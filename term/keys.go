package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/snake/input"
)

var keyCommands = map[tcell.Key]input.Command{
	tcell.KeyUp:     input.Up,
	tcell.KeyDown:   input.Down,
	tcell.KeyLeft:   input.Left,
	tcell.KeyRight:  input.Right,
	tcell.KeyEnter:  input.Reset,
	tcell.KeyEscape: input.Quit,
	tcell.KeyCtrlC:  input.Quit,
}

var runeCommands = map[rune]input.Command{
	'w': input.Up,
	's': input.Down,
	'a': input.Left,
	'd': input.Right,
	'p': input.TogglePause,
	'q': input.Quit,
}

// KeyCommand maps a key event to a command.
func KeyCommand(ev *tcell.EventKey) (input.Command, bool) {
	if ev.Key() == tcell.KeyRune {
		c, ok := runeCommands[ev.Rune()|0x20] // fold ASCII case
		return c, ok
	}
	c, ok := keyCommands[ev.Key()]
	return c, ok
}

// ReadKeys pushes commands for key events until the screen is closed or a
// Quit command is read. Run it on its own goroutine.
func (t *Screen) ReadKeys(q *input.Queue) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			c, ok := KeyCommand(ev)
			if !ok {
				continue
			}
			q.Push(c)
			if c == input.Quit {
				return
			}
		}
	}
}
