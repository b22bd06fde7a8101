// Package gfx is the graphical front end for phones and desktop windows.
// It resolves touches and clicks to circles and buttons, then drives the
// same game the terminal front end runs.
package gfx

import (
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/ztapz/internal/audio"
	"github.com/vovakirdan/ztapz/internal/core"
	"github.com/vovakirdan/ztapz/internal/games/ztapz"
	"github.com/vovakirdan/ztapz/internal/platform/gfx/layout"
	"github.com/vovakirdan/ztapz/internal/round"
	"github.com/vovakirdan/ztapz/internal/storage"
)

// TPS is the update rate. The game derives its 1 Hz timer from it.
const TPS = 60

type view int

const (
	viewIntro view = iota
	viewGame
)

// Options configures an App.
type Options struct {
	Audio       audio.Player
	Store       *storage.Store
	Logger      *log.Logger
	Player      string
	Seed        int64
	ShowWarning bool
}

// App implements ebiten.Game.
type App struct {
	game    *ztapz.Game
	opts    Options
	view    view
	frame   core.InputFrame
	touches []ebiten.TouchID
	best    int
}

// NewApp wraps game for the graphical front end.
func NewApp(game *ztapz.Game, opts Options) *App {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	a := &App{
		game:  game,
		opts:  opts,
		frame: core.NewInputFrame(),
	}
	a.resetGame()
	a.loadBest()
	return a
}

func (a *App) resetGame() {
	a.game.Reset(core.RuntimeConfig{
		ScreenW:  ztapz.MinWidth,
		ScreenH:  ztapz.MinHeight,
		TickRate: TPS,
		Seed:     a.opts.Seed,
	})
}

func (a *App) loadBest() {
	if a.opts.Store == nil {
		return
	}
	best, err := a.opts.Store.HighScore(ztapz.ID)
	if err != nil {
		a.opts.Logger.Warn("load high score", "error", err)
		return
	}
	a.best = best
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.frame.Clear()
	presses := a.presses()

	if a.view == viewIntro {
		return a.updateIntro(presses)
	}

	for _, p := range presses {
		if idx, ok := layout.HitCell(p.X, p.Y); ok {
			a.frame.Tap(idx)
			continue
		}
		a.pressButton(layout.HitButton(p.X, p.Y))
	}
	a.readKeys()

	res := a.game.Step(a.frame)
	for range res.Count(core.EventPop) {
		a.opts.Audio.Pop()
	}
	if res.Has(core.EventRoundOver) {
		a.saveScore(res.State.Score)
	}
	if res.State.Back {
		a.view = viewIntro
		a.resetGame()
	}
	return nil
}

func (a *App) updateIntro(presses []image.Point) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	start := inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	for _, p := range presses {
		if layout.HitIntro(p.X, p.Y) == layout.ButtonQuickMinute {
			start = true
		}
	}
	if start {
		a.view = viewGame
	}
	return nil
}

func (a *App) pressButton(b layout.Button) {
	switch b {
	case layout.ButtonStart:
		switch a.game.Phase() {
		case round.PhaseIdle:
			a.frame.Set(core.ActionConfirm)
		case round.PhaseGameOver:
			a.frame.Set(core.ActionRestart)
		}
	case layout.ButtonMenu:
		a.frame.Set(core.ActionBack)
	case layout.ButtonSpeedDown:
		a.frame.Set(core.ActionSpeedDown)
	case layout.ButtonSpeedUp:
		a.frame.Set(core.ActionSpeedUp)
	}
}

func (a *App) readKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.frame.Set(core.ActionConfirm)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.frame.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyB) {
		a.frame.Set(core.ActionBack)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		a.frame.Set(core.ActionSpeedUp)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		a.frame.Set(core.ActionSpeedDown)
	}
}

// presses returns this frame's new touches and left clicks in logical
// screen coordinates, in arrival order.
func (a *App) presses() []image.Point {
	var out []image.Point

	a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
	for _, id := range a.touches {
		x, y := ebiten.TouchPosition(id)
		out = append(out, image.Pt(x, y))
	}

	// Touch screens also synthesize a mouse press; only trust the mouse
	// when no finger went down this frame.
	if len(a.touches) == 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		out = append(out, image.Pt(ebiten.CursorPosition()))
	}
	return out
}

func (a *App) saveScore(score int) {
	a.opts.Logger.Info("round over", "score", score)
	if score > a.best {
		a.best = score
	}
	if a.opts.Store == nil {
		return
	}
	if _, err := a.opts.Store.SaveScore(ztapz.ID, a.opts.Player, score); err != nil {
		a.opts.Logger.Warn("save score", "error", err)
	}
}

// Layout implements ebiten.Game. The board is drawn on a fixed portrait
// canvas and ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return layout.ScreenW, layout.ScreenH
}

// Close releases the audio player.
func (a *App) Close() error {
	return a.opts.Audio.Close()
}
