package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/snake/input"
)

// keyBindings maps window keys to commands.
var keyBindings = []struct {
	key int32
	cmd input.Command
}{
	{rl.KeyUp, input.Up},
	{rl.KeyDown, input.Down},
	{rl.KeyLeft, input.Left},
	{rl.KeyRight, input.Right},
	{rl.KeyP, input.TogglePause},
	{rl.KeyEnter, input.Reset},
	{rl.KeyQ, input.Quit},
	{rl.KeyEscape, input.Quit},
}

// PollKeys pushes a command for every bound key pressed this frame.
func PollKeys(q *input.Queue) {
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			q.Push(b.cmd)
		}
	}
}
