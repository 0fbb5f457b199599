package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/games/maze"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

func TestClearScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	session := storage.NewSessionID()
	store.SaveScore(maze.ID, session, 3)
	store.SaveSolve(session, core.Solve{GameID: maze.ID, Columns: 4, Rows: 4, Moves: 8, Optimal: 6})

	var out bytes.Buffer
	if err := clearScores(store, &out); err != nil {
		t.Fatalf("clearScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "cleared") {
		t.Errorf("output = %q, expected a confirmation", out.String())
	}

	scores, _ := store.TopScores(maze.ID, 10)
	if len(scores) != 0 {
		t.Errorf("TopScores() returned %d entries after clear, expected 0", len(scores))
	}
	solves, _ := store.SessionSolves(session)
	if len(solves) != 0 {
		t.Errorf("SessionSolves() returned %d entries after clear, expected 0", len(solves))
	}
}
