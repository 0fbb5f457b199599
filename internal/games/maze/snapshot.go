package maze

// StateType represents what the board is currently showing.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StatePausedSmall StateType = "paused_small_window"
	StateInvalid     StateType = "invalid_config"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Columns    int
	Rows       int
	Generation int
	Solved     int
	Moves      int
	Optimal    int
	PlayerX    int
	PlayerY    int
	ExitX      int
	ExitY      int
	ShowHint   bool
	Maze       string // ASCII rendering of the walls
	State      StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Columns:  g.cfg.Columns,
		Rows:     g.cfg.Rows,
		Optimal:  g.optimal,
		ShowHint: g.showHint,
		State:    StatePlaying,
	}

	switch {
	case g.nav == nil:
		snap.State = StateInvalid
		return snap
	case !g.layout.Fits:
		snap.State = StatePausedSmall
	case g.paused:
		snap.State = StatePaused
	}

	v := g.nav.View()
	snap.Generation = g.nav.Generation()
	snap.Solved = g.nav.Wins()
	snap.Moves = g.nav.Moves()
	snap.PlayerX, snap.PlayerY = v.Current.X, v.Current.Y
	snap.ExitX, snap.ExitY = v.Exit.X, v.Exit.Y
	snap.Maze = v.String()
	return snap
}
