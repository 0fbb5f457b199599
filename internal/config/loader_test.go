package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg := DefaultMazeConfig()
	var fromYAML MazeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if fromYAML != cfg {
		t.Errorf("embedded YAML = %+v, expected %+v", fromYAML, cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "maze.yaml", "grid:\n  columns: 40\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Grid.Columns != 40 {
		t.Errorf("Columns = %d, expected 40", cfg.Grid.Columns)
	}
	// Unset keys keep their defaults
	if cfg.Grid.Rows != 10 || cfg.Display.TickRate != 10 {
		t.Errorf("partial file should keep defaults, got %+v", cfg)
	}
}

func TestLoadPreset(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "maze.yaml", "grid:\n  columns: 99\ndifficulty:\n  preset: hard\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want, _ := GridForPreset(DifficultyHard)
	if cfg.Grid != want {
		t.Errorf("Grid = %+v, expected preset size %+v", cfg.Grid, want)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() with missing custom file should fail")
	}

	bad := writeFile(t, dir, "bad.yaml", "grid: [1, 2\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*MazeConfig)
		field string
	}{
		{"zero columns", func(c *MazeConfig) { c.Grid.Columns = 0 }, "columns"},
		{"negative rows", func(c *MazeConfig) { c.Grid.Rows = -2 }, "rows"},
		{"oversized rows", func(c *MazeConfig) { c.Grid.Rows = maze.MaxDimension + 1 }, "rows"},
		{"zero tick rate", func(c *MazeConfig) { c.Display.TickRate = 0 }, "tick_rate"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tc.edit(&cfg)

			var cfgErr *maze.ConfigError
			if err := cfg.Validate(); !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, expected *maze.ConfigError", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", cfgErr.Field, tc.field)
			}
		})
	}

	cfg := DefaultMazeConfig()
	cfg.Difficulty.Preset = "impossible"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject unknown presets")
	}
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, ".env", "MAZE_COLUMNS=30\nMAZE_ROWS=12\nMAZE_SHOW_HINT=true\n")

	// Process environment wins over the file
	t.Setenv(EnvRows, "15")

	cfg := DefaultMazeConfig()
	if err := ApplyEnv(&cfg, envFile); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	if cfg.Grid.Columns != 30 {
		t.Errorf("Columns = %d, expected 30", cfg.Grid.Columns)
	}
	if cfg.Grid.Rows != 15 {
		t.Errorf("Rows = %d, expected 15", cfg.Grid.Rows)
	}
	if !cfg.Display.ShowHint {
		t.Error("ShowHint should be true")
	}
	if cfg.Display.TickRate != 10 {
		t.Errorf("TickRate = %d, expected unchanged 10", cfg.Display.TickRate)
	}
}

func TestApplyEnvPresetThenSize(t *testing.T) {
	t.Setenv(EnvPreset, "easy")
	t.Setenv(EnvColumns, "20")

	cfg := DefaultMazeConfig()
	if err := ApplyEnv(&cfg, writeFile(t, t.TempDir(), "empty.env", "")); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}
	easy, _ := GridForPreset(DifficultyEasy)
	if cfg.Grid.Columns != 20 || cfg.Grid.Rows != easy.Rows {
		t.Errorf("Grid = %+v, expected 20x%d", cfg.Grid, easy.Rows)
	}
}

func TestApplyEnvErrors(t *testing.T) {
	cfg := DefaultMazeConfig()
	if err := ApplyEnv(&cfg, filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Error("ApplyEnv() with a missing named file should fail")
	}

	t.Setenv(EnvColumns, "wide")
	if err := ApplyEnv(&cfg, writeFile(t, t.TempDir(), "empty.env", "")); err == nil {
		t.Error("ApplyEnv() with a non-integer size should fail")
	}
}

func TestPresets(t *testing.T) {
	prev := 0
	for _, p := range Presets() {
		grid, ok := GridForPreset(p)
		if !ok {
			t.Fatalf("GridForPreset(%q) not found", p)
		}
		if grid.Columns*grid.Rows <= prev {
			t.Errorf("preset %q should be larger than the previous one", p)
		}
		prev = grid.Columns * grid.Rows
	}

	if _, ok := GridForPreset(DifficultyCustom); ok {
		t.Error("custom preset should have no fixed size")
	}

	cfg := DefaultMazeConfig()
	ApplyPreset(&cfg, DifficultyCustom)
	if cfg.Grid != DefaultMazeConfig().Grid {
		t.Error("custom preset should keep the grid size")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "maze.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() of written default error = %v", err)
	}
	if cfg != DefaultMazeConfig() {
		t.Errorf("written default = %+v, expected %+v", cfg, DefaultMazeConfig())
	}
	if err := WriteDefault(path); err == nil {
		t.Error("WriteDefault() should refuse to overwrite")
	}
}
