package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ztapz/internal/core"
	"github.com/vovakirdan/ztapz/internal/registry"
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScoreboard
)

// SessionModel manages the full flow: intro -> game -> intro, with the
// scoreboard one Tab away. Local menu runs and SSH sessions both use it.
type SessionModel struct {
	services   Services
	config     core.RuntimeConfig
	view       sessionView
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session starting on the intro screen.
func NewSessionModel(services Services, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		services: services,
		config:   cfg,
		menu:     NewMenuModel(cfg, services.ShowWarning),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.services.Store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		m.view = viewScoreboard
		return m, sb.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			m.services.logger().Error("cannot create game", "error", err)
			m.menu = NewMenuModel(m.config, m.services.ShowWarning)
			return m, nil
		}
		gm := NewGameModel(game, m.services, m.config)
		m.gameModel = &gm
		m.view = viewGame
		return m, gm.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	switch {
	case m.gameModel.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.gameModel.BackToMenu():
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.scoreboard.IsGoingBack():
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.view = viewMenu
	m.gameModel = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.config, m.services.ShowWarning)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.gameModel.View()
	case viewScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the intro/game/scoreboard loop until the player quits.
func RunSession(services Services, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(services, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
