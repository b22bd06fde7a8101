// ztapz is a one-minute tapping game: tap the moving heart on a 7x4 grid of
// circles as many times as you can before the timer runs out.
//
// Usage:
//
//	ztapz                   - Intro screen and session scoreboard
//	ztapz menu              - Same as above
//	ztapz play [game]       - Play a game directly (default: ztapz)
//	ztapz list              - List available games
//	ztapz serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Starting heart speed preset: easy, normal, hard, fixed
//	--speed <value>       - Starting heart speed (overrides --difficulty)
//	--mute                - Disable the pop sound
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ztapz/internal/audio"
	"github.com/vovakirdan/ztapz/internal/config"
	"github.com/vovakirdan/ztapz/internal/core"
	"github.com/vovakirdan/ztapz/internal/games/ztapz"
	"github.com/vovakirdan/ztapz/internal/logging"
	"github.com/vovakirdan/ztapz/internal/platform/tui"
	"github.com/vovakirdan/ztapz/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagSpeed      float64
	flagMute       bool
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ztapz",
	Short: "ZTapz - tap the moving heart for one minute",
	Long: `ZTapz is a reflex game for the terminal. A heart jumps around a 7x4
grid of circles; tap it as many times as you can in one minute.

Available commands:
  menu     - Intro screen with the session scoreboard (default)
  play     - Play a game directly
  list     - Show all available games
  serve    - Start SSH server for remote play

Examples:
  ztapz
  ztapz play --difficulty hard
  ztapz play --speed 2.5 --mute
  ztapz serve --ssh :2222`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting heart speed preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Float64Var(&flagSpeed, "speed", 0, "Starting heart speed (0 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the pop sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// applyGameFlags hands the config flags to the game package before any game
// is created.
func applyGameFlags() error {
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	ztapz.SetConfigPath(flagConfig)
	ztapz.SetDifficultyPreset(flagDifficulty)
	ztapz.SetSpeed(flagSpeed)
	return nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// localServices wires the logger, audio device and session scoreboard for a
// local terminal run. The returned closer releases all of them.
func localServices() (tui.Services, io.Closer, error) {
	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return tui.Services{}, nil, err
	}
	logger, logCloser, err := logging.Open(flagLogFile, "ztapz", level)
	if err != nil {
		return tui.Services{}, nil, err
	}

	gameCfg, err := config.LoadZTapz(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		gameCfg = config.DefaultZTapzConfig()
	}

	player, err := audio.New(gameCfg.Audio, flagMute)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}

	store, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("scoreboard disabled", "error", err)
		store = nil
	}

	services := tui.Services{
		Store:       store,
		Audio:       player,
		Logger:      logger,
		Player:      playerName(),
		ShowWarning: gameCfg.Intro.ShowWarning,
	}
	return services, closers{player, storeCloser{store}, logCloser}, nil
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

// closers closes each element in order and returns the first error.
type closers []io.Closer

func (c closers) Close() error {
	var first error
	for _, cl := range c {
		if cl == nil {
			continue
		}
		if err := cl.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type storeCloser struct{ s *storage.Store }

func (c storeCloser) Close() error {
	if c.s == nil {
		return nil
	}
	return c.s.Close()
}

// fatal prints err and exits, the way every command reports setup errors.
func fatal(logger *log.Logger, msg string, err error) {
	if logger != nil {
		logger.Error(msg, "error", err)
	}
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	os.Exit(1)
}
