package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ztapz/internal/games/ztapz"
	"github.com/vovakirdan/ztapz/internal/platform/tui"
	"github.com/vovakirdan/ztapz/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game, ztapz by default.

Controls:
  Enter          - Start the timer
  Click/Space    - Tap a circle (Space taps the one under the cursor)
  Arrows/hjkl    - Move the cursor
  +/-            - Heart speed
  R              - Play again (after game over)
  B/Esc          - Leave the game
  Q/Ctrl+C       - Quit

Difficulty options set the starting heart speed:
  easy   - Slowest pulse
  normal - Middle of the slider
  hard   - Fastest pulse
  fixed  - Initial speed from the config file

Examples:
  ztapz play
  ztapz play ztapz --difficulty hard
  ztapz play --config ./my-ztapz.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := ztapz.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ztapz list' to see available games.")
		os.Exit(1)
	}
	if err := applyGameFlags(); err != nil {
		fatal(nil, "invalid flags", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fatal(nil, "creating game", err)
	}

	services, closer, err := localServices()
	if err != nil {
		fatal(nil, "setup", err)
	}
	defer closer.Close()

	if err := tui.Run(game, services, runtimeConfig()); err != nil {
		closer.Close()
		fatal(services.Logger, "running game", err)
	}
}
