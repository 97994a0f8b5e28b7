package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// MenuItem is one entry of the title menu.
type MenuItem int

const (
	MenuPlay MenuItem = iota
	MenuControls
	MenuQuit
)

// String returns the label shown in the menu.
func (i MenuItem) String() string {
	switch i {
	case MenuPlay:
		return "Play"
	case MenuControls:
		return "Controls"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

var menuItems = []MenuItem{MenuPlay, MenuControls, MenuQuit}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	title        string
	subtitle     string
	cursor       int
	width        int
	height       int
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	help         help.Model
	titleStyle   lipgloss.Style
	cursorStyle  lipgloss.Style
	showControls bool
	quitting     bool
	play         bool // Set when user selects Play
}

// NewMenuModel creates a new menu model. r may be nil for the local terminal.
func NewMenuModel(title string, cfg core.RuntimeConfig, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		title:       title,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		config:      cfg,
		keyMapper:   NewKeyMapper(),
		help:        h,
		titleStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		cursorStyle: r.NewStyle().Foreground(lipgloss.Color("11")),
	}
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
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.showControls {
		switch action {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionSelect:
			m.showControls = false
		}
		return m, nil
	}

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch menuItems[m.cursor] {
		case MenuPlay:
			m.play = true
			return m, tea.Quit // Exit menu to start game
		case MenuControls:
			m.showControls = true
		case MenuQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.titleStyle.Render(spaced(m.title)), len(spaced(m.title)), m.width))
	b.WriteString("\n\n")
	if m.subtitle != "" {
		b.WriteString(centerText(m.subtitle, len(m.subtitle), m.width))
		b.WriteString("\n\n")
	}

	if m.showControls {
		b.WriteString(centerText("Controls", len("Controls"), m.width))
		b.WriteString("\n\n")
		full := m.help
		full.ShowAll = true
		full.Width = 0 // Show every column
		b.WriteString(full.View(m.keyMapper.Game))
		b.WriteString("\n\n")
		b.WriteString(centerText("Esc: Back", len("Esc: Back"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	for i, item := range menuItems {
		line := "  " + item.String()
		rendered := line
		if i == m.cursor {
			line = "> " + item.String()
			rendered = m.cursorStyle.Render(line)
		}
		b.WriteString(centerText(rendered, len(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMapper.Menu))
	b.WriteString("\n")

	return b.String()
}

// WithSubtitle returns a copy of the menu with a line shown under the title.
func (m MenuModel) WithSubtitle(subtitle string) MenuModel {
	m.subtitle = subtitle
	return m
}

// Play returns true if user selected Play.
func (m MenuModel) Play() bool {
	return m.play
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// spaced puts a space between letters: "TETRIS" -> "T E T R I S".
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// centerText centers text of the given visible width within width columns.
func centerText(text string, textWidth, width int) string {
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
