package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// GameModel runs one game inside Bubble Tea. Key and mouse input reach the
// game as soon as they arrive; the tick only refreshes the HUD clock.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	sessionID  string
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a game model. A nil store disables persistence and a
// nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, sessionID string) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		logger:    logger.With("game", game.ID(), "session", sessionID),
		config:    cfg,
		sessionID: sessionID,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"columns", m.config.Columns,
		"rows", m.config.Rows,
		"seed", m.config.Seed,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.afterStep(m.game.Step(core.NewInputFrame()))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.finish()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case action == core.ActionRestart:
		m.logger.Debug("maze regenerated by player")
	}

	if action != core.ActionNone {
		m.afterStep(m.game.Step(core.FrameOf(action)))
	}
	return m, nil
}

// handleMouse forwards left-button drags to games that accept pointer input.
func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p, ok := m.game.(registry.PointerInput)
	if !ok {
		return m, nil
	}
	ev, ok := m.keyMapper.MapMouse(msg)
	if !ok {
		return m, nil
	}
	m.afterStep(p.Pointer(ev))
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}
	return m, nil
}

// afterStep records the new state and persists any completed boards.
func (m *GameModel) afterStep(res core.StepResult) {
	m.gameState = res.State

	src, ok := m.game.(registry.SolveSource)
	if !ok {
		return
	}
	for _, s := range src.DrainSolves() {
		m.logger.Info("maze solved",
			"size", fmt.Sprintf("%dx%d", s.Columns, s.Rows),
			"moves", s.Moves,
			"optimal", s.Optimal,
			"duration", s.Duration.Round(time.Millisecond),
		)
		if m.store == nil {
			continue
		}
		if _, err := m.store.SaveSolve(m.sessionID, s); err != nil {
			m.logger.Warn("could not save solve", "error", err)
		}
	}
}

// finish saves the session score once when the player leaves the game.
func (m *GameModel) finish() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	m.gameState = m.game.State()

	m.logger.Info("game ended", "solved", m.gameState.Score)
	if m.store == nil || m.gameState.Score == 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.sessionID, m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".maze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the local terminal until the player quits.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, logger, cfg, storage.NewSessionID())
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
