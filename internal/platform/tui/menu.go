package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ztapz/internal/core"
	"github.com/vovakirdan/ztapz/internal/registry"
)

const (
	warningText = "Warning: Bright Flashing Lights!"
	howToText   = "Press Quick Minute to tap the moving heart as many times as you can in one minute."
)

// menuLabels renames games on the intro screen.
var menuLabels = map[string]string{
	"ztapz": "Quick Minute",
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("213")).
			Padding(0, 4)
	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))
	howToStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuItem represents a selectable game on the intro screen.
type MenuItem struct {
	GameID string
	Label  string
}

// MenuModel is the intro screen: title, warning, how-to text and game list.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	showWarning    bool
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates the intro screen for the registered games.
func NewMenuModel(cfg core.RuntimeConfig, showWarning bool) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		label, ok := menuLabels[g.ID]
		if !ok {
			label = g.Title
		}
		items = append(items, MenuItem{GameID: g.ID, Label: label})
	}

	return MenuModel{
		items:       items,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		config:      cfg,
		showWarning: showWarning,
		keyMapper:   NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu. The owner checks Selected,
// WantsScoreboard and IsQuitting after each update.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
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
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// View renders the intro screen.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{titleStyle.Render("Z T A P Z"), ""}

	if m.showWarning {
		lines = append(lines, warningStyle.Render(warningText), "")
	}

	wrap := max(min(m.width-4, 60), 20)
	lines = append(lines, howToStyle.Width(wrap).Align(lipgloss.Center).Render(howToText), "")

	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("> "+item.Label))
		} else {
			lines = append(lines, itemStyle.Render("  "+item.Label))
		}
	}

	lines = append(lines, "", footerStyle.Render(fmt.Sprintf(
		"%s  |  %s  |  %s  |  %s",
		"Up/Down: Navigate", "Enter: Play", "Tab: Scores", "Q: Quit",
	)))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
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

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
