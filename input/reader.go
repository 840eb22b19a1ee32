package input

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// ReadCommands parses one command per line from r and hands each to send
// until r is exhausted or send returns false. Unknown lines are logged and
// skipped.
func ReadCommands(r io.Reader, send func(Command) bool) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		c, err := ParseCommand(line)
		if err != nil {
			slog.Warn("ignoring input", "error", err)
			continue
		}
		if !send(c) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}
