// Package storage provides SQLite-based persistence for session scores and
// individual maze solves. Mazes themselves are never stored.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-maze/internal/core"
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is the number of mazes solved in one session.
type ScoreEntry struct {
	ID        int64
	GameID    string
	SessionID string
	Score     int
	CreatedAt time.Time
}

// SolveEntry is one completed maze.
type SolveEntry struct {
	ID        int64
	GameID    string
	SessionID string
	Columns   int
	Rows      int
	Moves     int
	Optimal   int
	Duration  time.Duration
	CreatedAt time.Time
}

// Size returns the grid size as "CxR".
func (e SolveEntry) Size() string {
	return fmt.Sprintf("%dx%d", e.Columns, e.Rows)
}

// Efficiency returns Optimal/Moves, or 1 when no moves were needed.
func (e SolveEntry) Efficiency() float64 {
	return core.Solve{Moves: e.Moves, Optimal: e.Optimal}.Efficiency()
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			session_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			session_id TEXT NOT NULL,
			grid_columns INTEGER NOT NULL,
			grid_rows INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			optimal INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_game_id ON solves(game_id);
		CREATE INDEX IF NOT EXISTS idx_solves_session ON solves(session_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records how many mazes a session solved.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, sessionID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, session_id, score) VALUES (?, ?, ?)",
		gameID, sessionID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N session scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, session_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.SessionID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest session score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores and solves for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM solves WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// SaveSolve records one completed maze for a session.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(sessionID string, solve core.Solve) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO solves
		 (game_id, session_id, grid_columns, grid_rows, moves, optimal, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		solve.GameID,
		sessionID,
		solve.Columns,
		solve.Rows,
		solve.Moves,
		solve.Optimal,
		solve.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const solveColumns = `id, game_id, session_id, grid_columns, grid_rows, moves, optimal, duration_ms, created_at`

// RecentSolves retrieves the most recent solves for the given game.
func (s *Store) RecentSolves(gameID string, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// FastestSolves retrieves the quickest solves of a given grid size.
func (s *Store) FastestSolves(gameID string, columns, rows, limit int) ([]SolveEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	result, err := s.db.Query(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE game_id = ? AND grid_columns = ? AND grid_rows = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		gameID, columns, rows, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(result)
}

// SessionSolves retrieves every solve of one session, oldest first.
func (s *Store) SessionSolves(sessionID string) ([]SolveEntry, error) {
	rows, err := s.db.Query(
		`SELECT `+solveColumns+`
		 FROM solves
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session solves: %w", err)
	}
	return scanSolves(rows)
}

func scanSolves(rows *sql.Rows) ([]SolveEntry, error) {
	defer rows.Close()

	var results []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var durationMS int64
		var createdAt any

		if err := rows.Scan(
			&e.ID,
			&e.GameID,
			&e.SessionID,
			&e.Columns,
			&e.Rows,
			&e.Moves,
			&e.Optimal,
			&durationMS,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		results = append(results, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID        string
	SessionsCount int
	HighScore     int
	SolvesCount   int
	TotalMoves    int64
	AvgEfficiency float64
	FastestSolve  time.Duration
	LastPlayed    time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.SessionsCount, &stats.HighScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var fastestMS int64
	err = s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(moves), 0),
		        COALESCE(AVG(CASE WHEN moves > 0 THEN CAST(optimal AS REAL) / moves ELSE 1.0 END), 0),
		        COALESCE(MIN(duration_ms), 0)
		 FROM solves WHERE game_id = ?`,
		gameID,
	).Scan(&stats.SolvesCount, &stats.TotalMoves, &stats.AvgEfficiency, &fastestMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get solve stats: %w", err)
	}
	stats.FastestSolve = time.Duration(fastestMS) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE game_id = ? ORDER BY id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime values from SQLite.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
