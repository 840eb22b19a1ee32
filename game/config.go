package game

import (
	"fmt"

	"github.com/pthm-cable/snake/board"
	"github.com/pthm-cable/snake/config"
	"github.com/pthm-cable/snake/snake"
)

// RulesFromConfig builds the game rules from the game section.
func RulesFromConfig(cfg *config.Config) snake.Rules {
	return snake.Rules{
		Start:             board.Tile{X: cfg.Game.StartX, Y: cfg.Game.StartY},
		FoodScore:         cfg.Game.FoodScore,
		LevelScore:        cfg.Game.LevelScore,
		ObstaclesPerLevel: cfg.Game.ObstaclesPerLevel,
		BaseInterval:      cfg.Derived.BaseInterval,
		IntervalStep:      cfg.Derived.IntervalStep,
		MinInterval:       cfg.Derived.MinInterval,
	}
}

// BoardFromConfig sizes the board from the screen section.
func BoardFromConfig(cfg *config.Config) (board.Board, error) {
	b, err := board.FromPixels(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.CellSize)
	if err != nil {
		return board.Board{}, fmt.Errorf("sizing board: %w", err)
	}
	return b, nil
}
