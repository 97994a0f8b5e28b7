package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	factory   GameFactory
	config    core.RuntimeConfig
	username  string
	renderer  *lipgloss.Renderer
	palette   Palette
	menu      MenuModel
	gameModel *GameModel
	inGame    bool
	plays     int // Games started this session
	quitting  bool
	err       error
}

// NewSessionModel creates a new session model. r may be nil for the local
// terminal; SSH sessions pass the client's renderer.
func NewSessionModel(factory GameFactory, cfg core.RuntimeConfig, username string, r *lipgloss.Renderer) SessionModel {
	palette := defaultPalette
	if r != nil {
		palette = NewPalette(r)
	}

	return SessionModel{
		factory:  factory,
		config:   cfg,
		username: username,
		renderer: r,
		palette:  palette,
	}.withMenu()
}

// withMenu replaces the menu with a fresh one sized to the current config.
func (m SessionModel) withMenu() SessionModel {
	m.menu = NewMenuModel("Tetris", m.config, m.renderer)
	if m.username != "" {
		m.menu = m.menu.WithSubtitle("Playing as " + m.username)
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.Play() {
		game, err := m.factory()
		if err != nil {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}

		m.config = m.menu.Config() // Get possibly updated config from resize
		cfg := m.config
		if cfg.Seed != 0 {
			// A fixed seed still gives each game of the session its own sequence.
			cfg.Seed += int64(m.plays)
		}
		m.plays++

		gameModel := NewGameModel(game, cfg, true).WithPalette(m.palette)
		m.gameModel = &gameModel
		m.inGame = true

		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m = m.withMenu()
		return m, m.menu.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// RunSession runs the menu and game flow in the local terminal.
func RunSession(factory GameFactory, cfg core.RuntimeConfig) error {
	model := NewSessionModel(factory, cfg, "", nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(SessionModel); ok {
		return m.Err()
	}
	return nil
}
