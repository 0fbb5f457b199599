// Package maze is the playable maze board: it owns a navigator, maps
// semantic input to moves and draws the walls into a core.Screen.
package maze

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/gesture"
	mz "github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/navigator"
	"github.com/vovakirdan/tui-maze/internal/registry"
)

// ID is the registry identifier of the maze game.
const ID = "maze"

// Grid size used when the runtime config leaves it unset.
const (
	DefaultColumns = 24
	DefaultRows    = 10
)

const (
	hudHeight    = 2 // Status line plus separator
	footerHeight = 1
)

var moveActions = []struct {
	action core.Action
	dir    mz.Dir
}{
	{core.ActionUp, mz.DirUp},
	{core.ActionDown, mz.DirDown},
	{core.ActionLeft, mz.DirLeft},
	{core.ActionRight, mz.DirRight},
}

// Game implements registry.Game for the maze.
type Game struct {
	cfg     core.RuntimeConfig
	rng     *rand.Rand
	nav     *navigator.Navigator
	layout  Layout
	tracker gesture.Tracker
	now     func() time.Time

	tick     uint64
	started  time.Time
	optimal  int
	showHint bool
	paused   bool
	err      error

	solves    []core.Solve
	lastSolve *core.Solve
}

// New creates a maze game. Call Reset before use.
func New() *Game {
	return &Game{now: time.Now}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Maze"
}

// Reset builds a fresh navigator from cfg and generates the first maze.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.Columns == 0 {
		cfg.Columns = DefaultColumns
	}
	if cfg.Rows == 0 {
		cfg.Rows = DefaultRows
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.showHint = cfg.ShowHint
	g.paused = false
	g.tracker.Release()
	g.solves = nil
	g.lastSolve = nil

	g.nav, g.err = navigator.New(cfg.Columns, cfg.Rows, g.rng)
	if g.err != nil {
		g.nav = nil
		return
	}
	g.relayout()
	g.beginMaze()
}

// Err returns the configuration error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Resize relayouts the board for a new screen size without touching the maze.
func (g *Game) Resize(width, height int) {
	g.cfg.ScreenW = width
	g.cfg.ScreenH = height
	g.relayout()
}

func (g *Game) relayout() {
	area := core.NewRect(0, hudHeight, g.cfg.ScreenW, g.cfg.ScreenH-hudHeight-footerHeight)
	g.layout = FitLayout(area, g.cfg.Columns, g.cfg.Rows)
}

// Layout returns the current screen layout of the board.
func (g *Game) Layout() Layout {
	return g.layout
}

// beginMaze stamps the clock and shortest path for a freshly generated maze.
func (g *Game) beginMaze() {
	g.started = g.now()
	g.optimal = g.nav.ExitDistance()
}

// Step applies one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.nav == nil {
		return core.StepResult{State: g.State()}
	}

	changed := false
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		changed = true
	}
	if in.Has(core.ActionHint) {
		g.showHint = !g.showHint
		changed = true
	}
	if in.Has(core.ActionRestart) {
		g.nav.Regenerate()
		g.beginMaze()
		g.lastSolve = nil
		return core.StepResult{State: g.State(), Changed: true}
	}

	if g.paused || !g.layout.Fits {
		return core.StepResult{State: g.State(), Changed: changed}
	}

	for _, m := range moveActions {
		if in.Has(m.action) && g.move(m.dir) {
			changed = true
		}
	}
	return core.StepResult{State: g.State(), Changed: changed}
}

// Pointer feeds a mouse event through the gesture tracker. Each motion while
// the button is held moves one cell towards the pointer.
func (g *Game) Pointer(ev core.PointerEvent) core.StepResult {
	switch ev.Kind {
	case core.PointerPress:
		g.tracker.Press()
	case core.PointerRelease:
		g.tracker.Release()
	case core.PointerMotion:
		if g.nav == nil || g.paused || !g.layout.Fits {
			break
		}
		cx, cy := g.layout.CellCenter(g.nav.Position())
		dx := float64(ev.X-cx) * g.layout.Aspect()
		dy := float64(ev.Y - cy)
		if d, ok := g.tracker.Motion(dx, dy, 0, 0); ok && g.move(d) {
			return core.StepResult{State: g.State(), Changed: true}
		}
	}
	return core.StepResult{State: g.State()}
}

// move applies one navigator move and records a solve on a win.
// Returns true if the player changed cell.
func (g *Game) move(d mz.Dir) bool {
	res := g.nav.Move(d)
	if res.Outcome == navigator.Blocked {
		return false
	}
	g.lastSolve = nil
	if res.Won {
		s := core.Solve{
			GameID:   ID,
			Columns:  g.cfg.Columns,
			Rows:     g.cfg.Rows,
			Moves:    res.Moves,
			Optimal:  g.optimal,
			Duration: g.now().Sub(g.started),
		}
		g.solves = append(g.solves, s)
		g.lastSolve = &s
		g.beginMaze()
	}
	return true
}

// DrainSolves returns the mazes solved since the previous call.
func (g *Game) DrainSolves() []core.Solve {
	out := g.solves
	g.solves = nil
	return out
}

// Elapsed returns the time spent on the current maze.
func (g *Game) Elapsed() time.Duration {
	if g.nav == nil {
		return 0
	}
	return g.now().Sub(g.started)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.nav != nil {
		st.Score = g.nav.Wins()
	}
	return st
}
