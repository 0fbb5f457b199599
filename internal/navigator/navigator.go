// Package navigator tracks the player's position inside a maze, applies
// directional moves against the wall state and regenerates the maze when the
// exit is reached.
//
// A Navigator is single-threaded: callers must serialize Move, Regenerate and
// View, typically by owning it from one event loop.
package navigator

import (
	"github.com/vovakirdan/tui-maze/internal/maze"
)

// Outcome classifies what a move request did.
type Outcome int

const (
	// Blocked means a wall stood in the way; nothing changed.
	Blocked Outcome = iota
	// Moved means the player stepped into the neighbouring cell.
	Moved
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Blocked:
		return "Blocked"
	case Moved:
		return "Moved"
	default:
		return "Unknown"
	}
}

// Result is returned by Move.
type Result struct {
	Outcome Outcome
	// Position is the player's cell after the move, including any reset to
	// the new start after a win.
	Position maze.Coord
	// Won is set when the move reached the exit and a new maze was generated.
	Won bool
	// Finished is the exit cell that was reached. Valid only when Won is set.
	Finished maze.Coord
	// Moves is the number of legal moves it took to solve the finished maze.
	// Valid only when Won is set.
	Moves int
}

// Navigator is the movement state machine over a generated maze.
type Navigator struct {
	grid       *maze.Grid
	gen        *maze.Generator
	start      maze.Coord
	exit       maze.Coord
	current    maze.Coord
	moves      int
	wins       int
	generation int
}

// New builds a columns x rows grid, generates the first maze and places the
// player on its start cell. Returns a *maze.ConfigError for invalid sizes.
func New(columns, rows int, rng maze.Rand) (*Navigator, error) {
	grid, err := maze.NewGrid(columns, rows)
	if err != nil {
		return nil, err
	}
	n := &Navigator{
		grid: grid,
		gen:  maze.NewGenerator(rng),
	}
	n.Regenerate()
	return n, nil
}

// Regenerate carves a brand-new maze over the same grid and resets the
// player to its start.
func (n *Navigator) Regenerate() {
	n.start, n.exit = n.gen.Generate(n.grid)
	n.current = n.start
	n.moves = 0
	n.generation++
}

// Move attempts one step in direction d.
// A wall in the way, or an invalid direction, is a silent no-op.
func (n *Navigator) Move(d maze.Dir) Result {
	if !d.Valid() || n.grid.HasWall(n.current, d) {
		return Result{Outcome: Blocked, Position: n.current}
	}

	next := n.current.Step(d)
	if !n.grid.InBounds(next) {
		// Boundary walls are never carved, so an open wall facing outside
		// means the grid was corrupted.
		return Result{Outcome: Blocked, Position: n.current}
	}

	n.current = next
	n.moves++
	res := Result{Outcome: Moved, Position: n.current}

	if n.current == n.exit {
		res.Won = true
		res.Finished = n.current
		res.Moves = n.moves
		n.wins++
		n.Regenerate()
		res.Position = n.current
	}
	return res
}

// Position returns the player's current cell.
func (n *Navigator) Position() maze.Coord {
	return n.current
}

// Start returns the start cell of the current maze.
func (n *Navigator) Start() maze.Coord {
	return n.start
}

// Exit returns the exit cell of the current maze.
func (n *Navigator) Exit() maze.Coord {
	return n.exit
}

// Moves returns the number of legal moves made in the current maze.
func (n *Navigator) Moves() int {
	return n.moves
}

// Wins returns the number of mazes solved.
func (n *Navigator) Wins() int {
	return n.wins
}

// Generation returns how many mazes have been generated, starting at 1.
func (n *Navigator) Generation() int {
	return n.generation
}

// Trace returns the passages carved for the current maze, in order.
func (n *Navigator) Trace() []maze.Edge {
	return n.gen.Trace()
}

// SolutionFromHere returns the shortest path from the current cell to the
// exit, both ends included.
func (n *Navigator) SolutionFromHere() []maze.Coord {
	return maze.Solve(n.grid, n.current, n.exit)
}

// ExitDistance returns the number of moves on the shortest path from the
// start cell to the exit.
func (n *Navigator) ExitDistance() int {
	return maze.Distance(n.grid, n.start, n.exit)
}

// View returns a read-only snapshot handle of the current maze.
func (n *Navigator) View() View {
	return View{
		grid:    n.grid,
		Start:   n.start,
		Exit:    n.exit,
		Current: n.current,
	}
}
