package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file configuration.
const (
	EnvColumns  = "MAZE_COLUMNS"
	EnvRows     = "MAZE_ROWS"
	EnvTickRate = "MAZE_TICK_RATE"
	EnvShowHint = "MAZE_SHOW_HINT"
	EnvPreset   = "MAZE_PRESET"
)

// ApplyEnv overrides cfg from environment variables. Values are read from
// the given dotenv files first (default ".env" when it exists) and then from
// the process environment, which wins. A missing default .env is not an
// error; a missing named file is.
func ApplyEnv(cfg *MazeConfig, envFiles ...string) error {
	values := map[string]string{}

	files := envFiles
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err == nil {
			files = []string{".env"}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to stat .env: %w", err)
		}
	}
	if len(files) > 0 {
		fromFiles, err := godotenv.Read(files...)
		if err != nil {
			return fmt.Errorf("failed to read env files: %w", err)
		}
		values = fromFiles
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}

	// Preset first so explicit sizes can refine it.
	if v, ok := lookup(EnvPreset); ok {
		ApplyPreset(cfg, DifficultyPreset(v))
	}
	if err := envInt(lookup, EnvColumns, &cfg.Grid.Columns); err != nil {
		return err
	}
	if err := envInt(lookup, EnvRows, &cfg.Grid.Rows); err != nil {
		return err
	}
	if err := envInt(lookup, EnvTickRate, &cfg.Display.TickRate); err != nil {
		return err
	}
	if v, ok := lookup(EnvShowHint); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("environment variable %s must be a boolean: %w", EnvShowHint, err)
		}
		cfg.Display.ShowHint = b
	}
	return nil
}

func envInt(lookup func(string) (string, bool), key string, dst *int) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}
