package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/maze"
)

var (
	flagGenSolve bool
	flagGenCheck bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a generated maze as ASCII art",
	Long: `Generate one maze and print it. S marks the start corner and E the exit.

The board size comes from --columns/--rows, --preset or the config file.
With the same --seed the same maze is printed every time.

Examples:
  maze generate
  maze generate --preset easy --solve
  maze generate --columns 10 --rows 5 --seed 7 --check`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&flagGenSolve, "solve", false, "Mark the shortest path from start to exit")
	generateCmd.Flags().BoolVar(&flagGenCheck, "check", false, "Verify the maze is a perfect maze")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	mc, err := loadMazeConfig(cmd)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := maze.NewGrid(mc.Grid.Columns, mc.Grid.Rows)
	if err != nil {
		return err
	}
	start, exit := maze.NewGenerator(rand.New(rand.NewSource(seed))).Generate(grid)

	var path []maze.Coord
	if flagGenSolve {
		path = maze.Solve(grid, start, exit)
	}
	fmt.Print(grid.Render(path))

	if flagGenSolve {
		fmt.Printf("Shortest path: %d moves\n", len(path)-1)
	}
	if flagGenCheck {
		if err := maze.CheckSymmetry(grid); err != nil {
			return err
		}
		if err := maze.CheckPerfect(grid); err != nil {
			return err
		}
		fmt.Printf("Perfect maze: %d cells, %d passages\n", grid.Size(), len(grid.OpenEdges()))
	}
	fmt.Printf("Seed: %d\n", seed)
	return nil
}
