// Package ztapz wraps the round controller as an arcade game: keyboard
// cursor, pointer hit testing, the heart speed slider and the 1 Hz timer
// derived from the platform frame rate.
package ztapz

import (
	"math/rand"

	"github.com/vovakirdan/ztapz/internal/config"
	"github.com/vovakirdan/ztapz/internal/core"
	"github.com/vovakirdan/ztapz/internal/grid"
	"github.com/vovakirdan/ztapz/internal/registry"
	"github.com/vovakirdan/ztapz/internal/round"
)

// ID is the registry key of the game.
const ID = "ztapz"

// popFlashSeconds is how long a hit cell stays lit.
const popFlashSeconds = 0.5

// Game implements the ZTapz tapping game.
type Game struct {
	cfg    config.ZTapzConfig
	rng    *rand.Rand
	ctrl   *round.Controller
	speed  *config.SpeedSlider
	layout Layout

	tick     uint64
	tickRate int
	frames   int // Frames since the last 1 Hz tick

	cursor  int
	flashes map[int]int // Cell index -> frames left
	pending []core.Event

	screenW int
	screenH int
	back    bool
}

// Package-level settings, applied on the next Reset.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	speedOverride    float64
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the starting speed preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetSpeed overrides the initial heart speed. 0 keeps the configured value.
func SetSpeed(speed float64) {
	speedOverride = speed
}

// New creates a game using the package-level settings.
func New() *Game {
	cfg, err := config.LoadZTapz(configPath)
	if err != nil {
		cfg = config.DefaultZTapzConfig()
	}
	config.ApplyZTapzPreset(&cfg, difficultyPreset)
	if speedOverride > 0 {
		cfg.Speed.Initial = speedOverride
		cfg.Normalize()
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a game with an explicit config. The game is usable
// at once on a default screen; platforms call Reset with their own size.
func NewWithConfig(cfg config.ZTapzConfig) *Game {
	cfg.Normalize()
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

func init() {
	registry.Register(ID, "Tap the moving heart as many times as you can in one minute", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "ZTapz"
}

// Config returns the effective game config.
func (g *Game) Config() config.ZTapzConfig {
	return g.cfg
}

// Reset returns to the idle screen. No round runs until the player starts one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.ctrl = round.New(g.rng)
	g.ctrl.Subscribe(g.onRoundEvent)
	g.speed = config.NewSpeedSlider(g.cfg.Speed)

	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0
	g.frames = 0
	g.cursor = 0
	g.flashes = make(map[int]int)
	g.pending = nil
	g.back = false

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = NewLayout(w, h)
}

// onRoundEvent turns controller events into platform events.
func (g *Game) onRoundEvent(ev round.Event, _ round.Snapshot) {
	switch ev {
	case round.EventPop:
		g.pending = append(g.pending, core.EventPop)
	case round.EventRoundOver:
		g.pending = append(g.pending, core.EventRoundOver)
	}
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.pending = g.pending[:0]
	g.ageFlashes()

	if in.Has(core.ActionBack) {
		g.ctrl.Stop()
		g.back = true
		return g.result()
	}

	// The timer holds while the window is too small to play
	if g.layout.TooSmall {
		return g.result()
	}

	if in.Has(core.ActionSpeedUp) {
		g.speed.Up()
	}
	if in.Has(core.ActionSpeedDown) {
		g.speed.Down()
	}
	g.moveCursor(in)

	switch g.ctrl.Phase() {
	case round.PhaseIdle:
		if in.Has(core.ActionConfirm) {
			g.start()
		}
	case round.PhaseGameOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.start()
		}
	}

	if in.Has(core.ActionTap) {
		g.tap(g.cursor)
	}
	for _, p := range in.Clicks {
		if idx, ok := g.layout.HitTest(p.X, p.Y); ok {
			g.cursor = idx
			g.tap(idx)
		}
	}
	for _, idx := range in.Taps {
		g.tap(idx)
	}

	if g.ctrl.Running() {
		g.frames++
		if g.frames >= g.tickRate {
			g.frames = 0
			g.ctrl.Tick()
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.pending) > 0 {
		res.Events = append([]core.Event(nil), g.pending...)
	}
	return res
}

func (g *Game) start() {
	g.frames = 0
	g.flashes = make(map[int]int)
	g.ctrl.Start(g.cfg.Round.DurationSecs)
}

func (g *Game) tap(index int) {
	if g.ctrl.Tap(index) {
		g.flashes[index] = g.flashFrames()
	}
}

func (g *Game) flashFrames() int {
	n := int(float64(g.tickRate) * popFlashSeconds)
	if n < 1 {
		n = 1
	}
	return n
}

func (g *Game) ageFlashes() {
	for idx, left := range g.flashes {
		if left <= 1 {
			delete(g.flashes, idx)
			continue
		}
		g.flashes[idx] = left - 1
	}
}

func (g *Game) moveCursor(in core.InputFrame) {
	row, col := grid.Position(g.cursor)
	switch {
	case in.Has(core.ActionUp):
		row--
	case in.Has(core.ActionDown):
		row++
	case in.Has(core.ActionLeft):
		col--
	case in.Has(core.ActionRight):
		col++
	}
	row = core.Clamp(row, 0, grid.Rows-1)
	col = core.Clamp(col, 0, grid.Cols-1)
	g.cursor = grid.Index(row, col)
}

// Speed returns the heart speed slider.
func (g *Game) Speed() *config.SpeedSlider {
	return g.speed
}

// Phase returns the round phase.
func (g *Game) Phase() round.Phase {
	return g.ctrl.Phase()
}

// SecondsRemaining returns the countdown value.
func (g *Game) SecondsRemaining() int {
	return g.ctrl.SecondsRemaining()
}

// Duration returns the round length in seconds.
func (g *Game) Duration() int {
	return g.cfg.Round.DurationSecs
}

// ActiveIndex returns the target cell, meaningful while running.
func (g *Game) ActiveIndex() int {
	return g.ctrl.ActiveIndex()
}

// Cursor returns the keyboard cursor cell.
func (g *Game) Cursor() int {
	return g.cursor
}

// Flashing reports whether cell index is showing a pop flash.
func (g *Game) Flashing(index int) bool {
	return g.flashes[index] > 0
}

// PulseOn reports whether the active heart is in the bright half of its
// pulse. The pulse period follows the heart speed.
func (g *Game) PulseOn() bool {
	periodFrames := int(g.speed.PulsePeriod().Seconds() * float64(g.tickRate))
	if periodFrames < 2 {
		return true
	}
	return int(g.tick%uint64(periodFrames)) < periodFrames/2
}

// HueOffset rotates the circle palette once per second.
func (g *Game) HueOffset() int {
	if g.tickRate <= 0 {
		return 0
	}
	return int(g.tick / uint64(g.tickRate))
}

// HitTest maps a screen coordinate to a cell index.
func (g *Game) HitTest(x, y int) (int, bool) {
	return g.layout.HitTest(x, y)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{Back: g.back}
	}
	return core.GameState{
		Score:    g.ctrl.Score(),
		Running:  g.ctrl.Running(),
		GameOver: g.ctrl.Phase() == round.PhaseGameOver,
		Back:     g.back,
	}
}
