package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/config"
)

var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write the default config file",
	Long: `Write the default maze.yaml so it can be edited.

Without a path the file goes to ~/.maze/configs/maze.yaml, which is
picked up automatically on the next run.

Examples:
  maze init-config
  maze init-config ./configs/maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInitConfig,
}

func runInitConfig(_ *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".maze", "configs", "maze.yaml")
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
