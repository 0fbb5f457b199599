package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultMazeConfig returns the built-in configuration. It matches the
// embedded defaults/maze.yaml.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Grid: GridConfig{
			Columns: 24,
			Rows:    10,
		},
		Display: DisplayConfig{
			TickRate: 10,
			ShowHint: false,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyCustom,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultMazeYAML
}
