// Package config provides YAML-based maze configuration loading with
// environment overrides and size presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

// MazeConfig contains all configuration for the maze game.
type MazeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the maze dimensions in cells.
type GridConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// DisplayConfig defines presentation parameters.
type DisplayConfig struct {
	TickRate int  `yaml:"tick_rate"` // HUD refreshes per second
	ShowHint bool `yaml:"show_hint"` // Start with the shortest path visible
}

// DifficultyConfig names a size preset. An empty or "custom" preset keeps
// the explicit grid size.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate checks that every numeric setting is usable.
// Returns a *maze.ConfigError naming the first bad field.
func (c MazeConfig) Validate() error {
	if err := maze.ValidateSize(c.Grid.Columns, c.Grid.Rows); err != nil {
		return err
	}
	if c.Display.TickRate < 1 {
		return &maze.ConfigError{Field: "tick_rate", Value: c.Display.TickRate}
	}
	if !c.Difficulty.Preset.Known() {
		return fmt.Errorf("config: unknown difficulty preset %q", c.Difficulty.Preset)
	}
	return nil
}
