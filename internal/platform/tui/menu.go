package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// MenuItem represents a selectable game and board size in the menu.
type MenuItem struct {
	GameID  string
	Title   string
	Preset  config.DifficultyPreset
	Columns int
	Rows    int
}

// Label returns the menu line for the item.
func (it MenuItem) Label() string {
	name := string(it.Preset)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("%s - %s (%dx%d)", it.Title, name, it.Columns, it.Rows)
}

// MenuModel is the Bubble Tea model for the board picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	highScore      int
	sessionSolved  int
	quitting       bool
	selected       *MenuItem // Set when user selects a board
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. Every registered game is offered
// at each size preset plus the configured custom size from cfg.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)*(len(config.Presets())+1))

	for _, g := range games {
		for _, p := range config.Presets() {
			grid, _ := config.GridForPreset(p)
			items = append(items, MenuItem{
				GameID:  g.ID,
				Title:   g.Title,
				Preset:  p,
				Columns: grid.Columns,
				Rows:    grid.Rows,
			})
		}
		if cfg.Columns > 0 && cfg.Rows > 0 {
			items = append(items, MenuItem{
				GameID:  g.ID,
				Title:   g.Title,
				Preset:  config.DifficultyCustom,
				Columns: cfg.Columns,
				Rows:    cfg.Rows,
			})
		}
	}

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	m.cursor = m.defaultCursor()

	if store != nil && len(games) > 0 {
		if high, err := store.HighScore(games[0].ID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// defaultCursor points at the item matching the configured size, if any.
func (m MenuModel) defaultCursor() int {
	for i, it := range m.items {
		if it.Columns == m.config.Columns && it.Rows == m.config.Rows {
			return i
		}
	}
	return 0
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  M A Z E  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pick a maze size", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Label()
		if i == m.cursor {
			line = cursorStyle.Render("> " + item.Label())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.highScore > 0 || m.sessionSolved > 0 {
		b.WriteString("\n")
	}
	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("Best session: %d mazes", m.highScore), m.width))
		b.WriteString("\n")
	}
	if m.sessionSolved > 0 {
		b.WriteString(centerText(fmt.Sprintf("Solved this session: %d", m.sessionSolved), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Items returns the menu entries.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config for the selection, including any
// resize seen while the menu was open.
func (m MenuModel) Config() core.RuntimeConfig {
	cfg := m.config
	if m.selected != nil {
		cfg.Columns = m.selected.Columns
		cfg.Rows = m.selected.Rows
	}
	return cfg
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result summarizes what the user chose when the menu exited.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
