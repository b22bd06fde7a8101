//go:build mobile

// Package mobile is the ebitenmobile binding for Android and iOS.
//
// Build with the mobile tag:
//
//	ebitenmobile bind -target android -tags mobile -javapkg dev.ztapz -o build/android/ztapz.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/ZTapz.xcframework ./mobile
package mobile

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/vovakirdan/ztapz/internal/games/ztapz"
	"github.com/vovakirdan/ztapz/internal/logging"
	"github.com/vovakirdan/ztapz/internal/platform/gfx"
	"github.com/vovakirdan/ztapz/internal/storage"
)

func init() {
	logger := logging.New(os.Stderr, "ztapz", log.InfoLevel)

	game := ztapz.New()
	cfg := game.Config()

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("scoreboard disabled", "error", err)
		store = nil
	}

	mobile.SetGame(gfx.NewApp(game, gfx.Options{
		Audio:       gfx.NewSound(cfg.Audio, false),
		Store:       store,
		Logger:      logger,
		ShowWarning: cfg.Intro.ShowWarning,
	}))
}

// Dummy is exported so ebitenmobile has a symbol to bind.
func Dummy() {}
