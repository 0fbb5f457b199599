// maze is a terminal maze game: every board is a freshly generated perfect
// maze walked from the top-left corner to the bottom-right one.
//
// Usage:
//
//	maze play                - Play a maze at the configured size
//	maze menu                - Pick a board size interactively
//	maze serve               - Start SSH server for remote play
//	maze scores              - Show best sessions and recent solves
//	maze generate            - Print a maze as ASCII art
//	maze list                - List available games
//
// Global flags:
//
//	--fps <rate>          - HUD refresh rate (default: from config, 10)
//	--seed <value>        - RNG seed for reproducible boards
//	--db <path>           - Database path (default: ~/.maze/scores.db)
//	--config <path>       - Config YAML path
//	--columns, --rows     - Board size in cells
//	--preset <name>       - Size preset: easy, normal, hard, huge, custom
//	--hint                - Show the shortest path from the start
//	--log-file <path>     - Write session logs to a file
//	--log-level <level>   - Log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/platform/tui"

	// Import games to register them
	_ "github.com/vovakirdan/tui-maze/internal/games/maze"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagColumns  int
	flagRows     int
	flagPreset   string
	flagHint     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze",
	Short: "Maze - walk generated mazes in your terminal",
	Long: `Maze generates a new perfect maze for every board: exactly one path
joins any two cells. Walk from the top-left corner to the bottom-right
one with the arrow keys, WASD, HJKL or by dragging the mouse.

Available commands:
  play      - Play a maze directly
  menu      - Interactive board size picker
  serve     - Start SSH server for remote play
  scores    - View best sessions and recent solves
  generate  - Print a maze as ASCII art
  list      - Show all available games

Examples:
  maze play
  maze play --preset hard
  maze play --columns 40 --rows 15 --seed 42
  maze menu
  maze serve --ssh :2222
  maze generate --columns 8 --rows 4 --solve`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "HUD refresh rate per second (0 = from config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.maze/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom maze config YAML")
	pf.IntVar(&flagColumns, "columns", 0, "Maze width in cells (0 = from config)")
	pf.IntVar(&flagRows, "rows", 0, "Maze height in cells (0 = from config)")
	pf.StringVar(&flagPreset, "preset", "", "Size preset: easy, normal, hard, huge, custom")
	pf.BoolVar(&flagHint, "hint", false, "Show the shortest path from the start")
	pf.StringVar(&flagLogFile, "log-file", "", "Write session logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(initConfigCmd)
}

// loadMazeConfig resolves settings in order: config file, environment
// (.env included), then command line flags.
func loadMazeConfig(cmd *cobra.Command) (config.MazeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("preset") {
		config.ApplyPreset(&cfg, config.DifficultyPreset(flagPreset))
	}
	if flags.Changed("columns") {
		cfg.Grid.Columns = flagColumns
		cfg.Difficulty.Preset = config.DifficultyCustom
	}
	if flags.Changed("rows") {
		cfg.Grid.Rows = flagRows
		cfg.Difficulty.Preset = config.DifficultyCustom
	}
	if flags.Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	if flags.Changed("hint") {
		cfg.Display.ShowHint = flagHint
	}

	return cfg, cfg.Validate()
}

// runtimeConfig builds the game config for the local terminal.
func runtimeConfig(cmd *cobra.Command) (core.RuntimeConfig, error) {
	mc, err := loadMazeConfig(cmd)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: mc.Display.TickRate,
		Seed:     flagSeed,
		Columns:  mc.Grid.Columns,
		Rows:     mc.Grid.Rows,
		ShowHint: mc.Display.ShowHint,
	}, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// sessionLogger opens the logger selected by --log-file and --log-level.
func sessionLogger() (*log.Logger, io.Closer, error) {
	return tui.NewLogger(expandHome(flagLogFile), flagLogLevel)
}

// expandHome replaces a leading ~/ with the home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}
