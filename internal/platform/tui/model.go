package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ztapz/internal/audio"
	"github.com/vovakirdan/ztapz/internal/core"
	"github.com/vovakirdan/ztapz/internal/registry"
	"github.com/vovakirdan/ztapz/internal/storage"
)

// chromeHeight is the rows below the game screen: time bar and help line.
const chromeHeight = 2

// Services are the collaborators a play session reports to.
// Any of them may be nil.
type Services struct {
	Store       *storage.Store
	Audio       audio.Player
	Logger      *log.Logger
	Player      string // Name recorded with scores
	ShowWarning bool   // Show the flashing lights warning on the intro screen
}

func (s Services) logger() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

func (s Services) player() string {
	if s.Player == "" {
		return "player"
	}
	return s.Player
}

// timedGame is implemented by games with a countdown, for the time bar.
type timedGame interface {
	SecondsRemaining() int
	Duration() int
}

// resizableGame keeps its state on resize instead of being reset.
type resizableGame interface {
	Resize(w, h int)
}

// GameModel runs one registry.Game inside Bubble Tea.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	services   Services
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	timeBar    progress.Model
	help       help.Model
	width      int
	best       int // Player's best this session, shown after a round
	quitting   bool
	backToMenu bool
	quitOnBack bool // Standalone play exits instead of returning to a menu
}

// NewGameModel creates a game model. cfg.ScreenW/H is the full terminal.
func NewGameModel(game registry.Game, services Services, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	width := cfg.ScreenW
	cfg.ScreenH = max(cfg.ScreenH-chromeHeight, 0)

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = barWidth(width)

	h := help.New()
	h.Width = width

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		services:   services,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		timeBar:    bar,
		help:       h,
		width:      width,
	}
}

// barWidth leaves room for the indent and the "Best: N" label.
func barWidth(screenW int) int {
	return max(screenW-16, 10)
}

// Init resets the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.services.logger().Debug("game started", "game", m.game.ID(), "player", m.services.player())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the round going when the game supports it.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-chromeHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.timeBar.Width = barWidth(msg.Width)
	m.help.Width = msg.Width

	if g, ok := m.game.(resizableGame); ok {
		g.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one frame and reacts to its events.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		switch ev {
		case core.EventPop:
			if m.services.Audio != nil {
				m.services.Audio.Pop()
			}
		case core.EventRoundOver:
			m.best = m.saveScore(result.State.Score)
		}
	}

	if result.State.Back {
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished round and returns the player's best score
// so far. Failures are logged, never fatal.
func (m GameModel) saveScore(score int) int {
	logger := m.services.logger()
	logger.Info("round over", "game", m.game.ID(), "player", m.services.player(), "score", score)

	best := max(m.best, score)
	if m.services.Store == nil {
		return best
	}
	if _, err := m.services.Store.SaveScore(m.game.ID(), m.services.player(), score); err != nil {
		logger.Warn("could not save score", "error", err)
		return best
	}
	stored, err := m.services.Store.PlayerBest(m.game.ID(), m.services.player())
	if err != nil {
		logger.Warn("could not load best score", "error", err)
		return best
	}
	return max(best, stored)
}

// saveScreenshot writes the current screen as plain text.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ztapz", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.services.logger().Warn("could not create screenshot directory", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.services.logger().Warn("could not save screenshot", "error", err)
	}
}

// View renders the game screen, the time bar and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(m.timeBar.ViewAs(m.timeFraction()))
	if m.gameState.GameOver && m.best > 0 {
		b.WriteString(fmt.Sprintf("  Best: %d", m.best))
	}
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// timeFraction is the share of the round left, or a full bar for untimed games.
func (m GameModel) timeFraction() float64 {
	g, ok := m.game.(timedGame)
	if !ok || g.Duration() <= 0 {
		return 1
	}
	if !m.gameState.Running && !m.gameState.GameOver {
		return 1
	}
	return core.ClampF(float64(g.SecondsRemaining())/float64(g.Duration()), 0, 1)
}

// State returns the game state after the last frame.
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

// Run plays one game in its own program. Back quits instead of opening a menu.
func Run(game registry.Game, services Services, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, services, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
