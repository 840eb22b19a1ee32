// Package input defines player commands and the queue that carries them from
// input sources to the game driver.
package input

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/snake/board"
)

// Command is a player intent.
type Command uint8

const (
	None Command = iota
	Up
	Down
	Left
	Right
	TogglePause
	Reset
	Quit
	// Step is a no-op that lets a lock-step script advance one tick.
	Step
)

var commandNames = [...]string{
	None:        "none",
	Up:          "up",
	Down:        "down",
	Left:        "left",
	Right:       "right",
	TogglePause: "pause",
	Reset:       "reset",
	Quit:        "quit",
	Step:        "step",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("command(%d)", c)
}

// Direction returns the board direction for a movement command.
func (c Command) Direction() (board.Direction, bool) {
	switch c {
	case Up:
		return board.Up, true
	case Down:
		return board.Down, true
	case Left:
		return board.Left, true
	case Right:
		return board.Right, true
	}
	return board.Direction{}, false
}

// ParseCommand reads a command from a line of text, ignoring case and
// surrounding space. "p", "r", "q" and "." are accepted as short forms.
func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "p":
		return TogglePause, nil
	case "r":
		return Reset, nil
	case "q", "exit":
		return Quit, nil
	case ".", "tick":
		return Step, nil
	}
	for i, name := range commandNames {
		if Command(i) != None && name == s {
			return Command(i), nil
		}
	}
	return None, fmt.Errorf("unknown command %q", s)
}
