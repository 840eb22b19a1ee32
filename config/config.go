// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Game      GameConfig      `yaml:"game"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Input     InputConfig     `yaml:"input"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The board is the screen area divided
// into square cells of CellSize pixels.
type ScreenConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	CellSize    int `yaml:"cell_size"`
	TargetFPS   int `yaml:"target_fps"`
	HUDFontSize int `yaml:"hud_font_size"`
}

// GameConfig holds scoring, leveling and timing rules.
type GameConfig struct {
	StartX            int `yaml:"start_x"`
	StartY            int `yaml:"start_y"`
	FoodScore         int `yaml:"food_score"`
	LevelScore        int `yaml:"level_score"`         // level up when score is a multiple of this
	ObstaclesPerLevel int `yaml:"obstacles_per_level"` // obstacle count = level * this
	BaseIntervalMS    int `yaml:"base_interval_ms"`    // tick interval at level 1
	IntervalStepMS    int `yaml:"interval_step_ms"`    // reduction per level up
	MinIntervalMS     int `yaml:"min_interval_ms"`     // floor
	PlacementAttempts int `yaml:"placement_attempts"`  // random samples before scanning free tiles
}

// TelemetryConfig holds telemetry and perf settings.
type TelemetryConfig struct {
	PerfWindow int  `yaml:"perf_window"` // samples kept per phase
	LogStats   bool `yaml:"log_stats"`
}

// InputConfig holds command queue settings.
type InputConfig struct {
	QueueSize int `yaml:"queue_size"`
}

// DerivedConfig holds values computed from the loaded config.
type DerivedConfig struct {
	CellsWide    int
	CellsHigh    int
	BaseInterval time.Duration
	IntervalStep time.Duration
	MinInterval  time.Duration
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) computeDerived() {
	if c.Screen.CellSize > 0 {
		c.Derived.CellsWide = c.Screen.Width / c.Screen.CellSize
		c.Derived.CellsHigh = c.Screen.Height / c.Screen.CellSize
	}
	c.Derived.BaseInterval = time.Duration(c.Game.BaseIntervalMS) * time.Millisecond
	c.Derived.IntervalStep = time.Duration(c.Game.IntervalStepMS) * time.Millisecond
	c.Derived.MinInterval = time.Duration(c.Game.MinIntervalMS) * time.Millisecond
}

// Validate reports every problem found in the configuration.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("cell_size must be positive, got %d", c.Screen.CellSize))
	} else if c.Derived.CellsWide <= 0 || c.Derived.CellsHigh <= 0 {
		errs = append(errs, fmt.Errorf("screen %dx%d holds no %dpx cells", c.Screen.Width, c.Screen.Height, c.Screen.CellSize))
	} else if c.Game.StartX < 0 || c.Game.StartX >= c.Derived.CellsWide ||
		c.Game.StartY < 0 || c.Game.StartY >= c.Derived.CellsHigh {
		errs = append(errs, fmt.Errorf("start tile (%d,%d) outside %dx%d board",
			c.Game.StartX, c.Game.StartY, c.Derived.CellsWide, c.Derived.CellsHigh))
	}
	if c.Game.FoodScore <= 0 || c.Game.LevelScore <= 0 {
		errs = append(errs, errors.New("food_score and level_score must be positive"))
	}
	if c.Game.ObstaclesPerLevel < 0 {
		errs = append(errs, errors.New("obstacles_per_level must not be negative"))
	}
	if c.Game.MinIntervalMS <= 0 || c.Game.IntervalStepMS < 0 {
		errs = append(errs, errors.New("min_interval_ms must be positive and interval_step_ms not negative"))
	}
	if c.Game.MinIntervalMS > c.Game.BaseIntervalMS {
		errs = append(errs, fmt.Errorf("min_interval_ms %d above base_interval_ms %d", c.Game.MinIntervalMS, c.Game.BaseIntervalMS))
	}
	if c.Input.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("queue_size must be positive, got %d", c.Input.QueueSize))
	}
	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
