// ztapz-gfx runs ZTapz in a desktop window with mouse input.
//
// Usage:
//
//	ztapz-gfx [--seed N] [--config path] [--difficulty name] [--speed v] [--mute]
package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ztapz/internal/config"
	"github.com/vovakirdan/ztapz/internal/games/ztapz"
	"github.com/vovakirdan/ztapz/internal/logging"
	"github.com/vovakirdan/ztapz/internal/platform/gfx"
	"github.com/vovakirdan/ztapz/internal/platform/gfx/layout"
	"github.com/vovakirdan/ztapz/internal/storage"
)

var (
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagSpeed      float64
	flagMute       bool
	flagScale      float64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ztapz-gfx",
	Short: "ZTapz in a window",
	Long: `Play ZTapz in a desktop window. Click the moving heart as many times as
you can in one minute.

Examples:
  ztapz-gfx
  ztapz-gfx --difficulty hard --scale 1.5`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Starting heart speed preset: easy, normal, hard, fixed")
	rootCmd.Flags().Float64Var(&flagSpeed, "speed", 0, "Starting heart speed (0 = from config)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the pop sound")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func run(_ *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, "ztapz-gfx", level)

	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	ztapz.SetConfigPath(flagConfig)
	ztapz.SetDifficultyPreset(flagDifficulty)
	ztapz.SetSpeed(flagSpeed)
	game := ztapz.New()

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("scoreboard disabled", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := game.Config()
	app := gfx.NewApp(game, gfx.Options{
		Audio:       gfx.NewSound(cfg.Audio, flagMute),
		Store:       store,
		Logger:      logger,
		Seed:        flagSeed,
		ShowWarning: cfg.Intro.ShowWarning,
	})
	defer app.Close()

	scale := max(flagScale, 0.5)
	ebiten.SetWindowSize(int(layout.ScreenW*scale), int(layout.ScreenH*scale))
	ebiten.SetWindowTitle("ZTapz")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(gfx.TPS)

	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("ztapz-gfx: %w", err)
	}
	return nil
}
