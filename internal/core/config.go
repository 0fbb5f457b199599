package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic generation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // HUD refresh ticks per second
	Seed     int64 // RNG seed, 0 means seed from the clock
	Columns  int   // Maze columns, 0 means the game default
	Rows     int   // Maze rows, 0 means the game default
	ShowHint bool  // Start with the shortest path overlay visible
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Mazes solved this session
	GameOver bool // Whether the session has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State   GameState
	Changed bool // Whether the board needs redrawing
}

// Solve describes one maze the player completed.
type Solve struct {
	GameID   string
	Columns  int
	Rows     int
	Moves    int           // Legal moves taken
	Optimal  int           // Shortest possible path length in moves
	Duration time.Duration // Time from generation to reaching the exit
}

// Efficiency returns Optimal/Moves in the range (0, 1], or 1 when no moves
// were needed.
func (s Solve) Efficiency() float64 {
	if s.Moves <= 0 {
		return 1
	}
	return float64(s.Optimal) / float64(s.Moves)
}
