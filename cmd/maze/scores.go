package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best sessions and recent solves",
	Long: `Display the sessions that solved the most mazes, the most recent
solves and, with --columns/--rows, the fastest solves at that size.

Examples:
  maze scores
  maze scores --limit 20
  maze scores --columns 24 --rows 10
  maze scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries per table")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show aggregate statistics")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded sessions and solves")
}

// clearScores wipes every maze session and solve from store.
func clearScores(store *storage.Store, w io.Writer) error {
	if err := store.ClearScores(maze.ID); err != nil {
		return fmt.Errorf("clearing scores: %w", err)
	}
	fmt.Fprintln(w, "All maze scores cleared.")
	return nil
}

func runScores(cmd *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		return clearScores(store, os.Stdout)
	}

	scores, err := store.TopScores(maze.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("Top sessions")
	fmt.Println()
	if len(scores) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println("Play 'maze play' and solve a board to get on the list!")
	} else {
		// Print header
		fmt.Printf("  %-4s  %-7s  %s\n", "Rank", "Solved", "Date")
		fmt.Printf("  %-4s  %-7s  %s\n", "----", "------", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-7d  %s\n", i+1, entry.Score, dateStr)
		}
	}

	var solves []storage.SolveEntry
	title := "Recent solves"
	if cmd.Flags().Changed("columns") || cmd.Flags().Changed("rows") {
		mc, cfgErr := loadMazeConfig(cmd)
		if cfgErr != nil {
			return cfgErr
		}
		title = fmt.Sprintf("Fastest solves at %dx%d", mc.Grid.Columns, mc.Grid.Rows)
		solves, err = store.FastestSolves(maze.ID, mc.Grid.Columns, mc.Grid.Rows, flagScoresLimit)
	} else {
		solves, err = store.RecentSolves(maze.ID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving solves: %w", err)
	}

	fmt.Println()
	fmt.Println(title)
	fmt.Println()
	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
	} else {
		fmt.Printf("  %-7s  %-6s  %-8s  %-10s  %s\n", "Size", "Moves", "Optimal", "Time", "Date")
		fmt.Printf("  %-7s  %-6s  %-8s  %-10s  %s\n", "----", "-----", "-------", "----", "----")
		for _, s := range solves {
			fmt.Printf("  %-7s  %-6d  %-8d  %-10s  %s\n",
				s.Size(), s.Moves, s.Optimal, s.Duration.Round(100*time.Millisecond), s.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if flagScoresStats {
		stats, statsErr := store.GetGameStats(maze.ID)
		if statsErr != nil {
			return fmt.Errorf("retrieving stats: %w", statsErr)
		}
		fmt.Println()
		fmt.Printf("Sessions: %d  Best: %d  Solves: %d  Moves: %d  Efficiency: %.0f%%\n",
			stats.SessionsCount, stats.HighScore, stats.SolvesCount, stats.TotalMoves, stats.AvgEfficiency*100)
		if stats.FastestSolve > 0 {
			fmt.Printf("Fastest: %s  Last played: %s\n",
				stats.FastestSolve, stats.LastPlayed.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
