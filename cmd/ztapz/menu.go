package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ztapz/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the intro screen",
	Long: `Start ZTapz on the intro screen.

Pick "Quick Minute" to play a round. When you leave a round you return to
the intro screen, and Tab shows the scoreboard for this session.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  ztapz menu
  ztapz menu --fps 60
  ztapz menu --log-file ./ztapz.log`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fatal(nil, "invalid flags", err)
	}

	services, closer, err := localServices()
	if err != nil {
		fatal(nil, "setup", err)
	}
	defer closer.Close()

	services.Logger.Info("session start", "player", services.Player)
	if err := tui.RunSession(services, runtimeConfig()); err != nil {
		closer.Close()
		fatal(services.Logger, "running session", err)
	}
	services.Logger.Info("session end")
}
