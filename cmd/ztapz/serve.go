package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ztapz/internal/config"
	"github.com/vovakirdan/ztapz/internal/logging"
	"github.com/vovakirdan/ztapz/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagScoresDSN   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the ZTapz SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session starting on the intro screen.
Pops ring the terminal bell of the connected client. The scoreboard is
shared by every session and lives in memory until the server stops, unless
--persist-scores names a file to keep it in.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.ztapz/host_key

Examples:
  ztapz serve                           # Listen on :23234
  ztapz serve --ssh :2222               # Listen on port 2222
  ztapz serve --host-key ./my_host_key  # Use specific host key
  ztapz serve --persist-scores ./ssh.db # Keep the board across restarts

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagScoresDSN, "persist-scores", "", "Keep the scoreboard in this sqlite file across restarts (default: in memory, dropped on exit)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		fatal(nil, "invalid flags", err)
	}

	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		fatal(nil, "invalid flags", err)
	}
	logger := logging.New(os.Stderr, "ztapz-ssh", level)
	if flagLogFile != "" {
		fileLogger, closer, err := logging.Open(flagLogFile, "ztapz-ssh", level)
		if err != nil {
			fatal(logger, "opening log file", err)
		}
		defer closer.Close()
		logger = fileLogger
	}

	gameCfg, err := config.LoadZTapz(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
		gameCfg = config.DefaultZTapzConfig()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		ScoresDSN:   flagScoresDSN,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		ShowWarning: gameCfg.Intro.ShowWarning,
		Mute:        flagMute || !gameCfg.Audio.Enabled,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fatal(logger, "creating server", err)
	}

	fmt.Printf("Starting ZTapz SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal(logger, "server", err)
	}
}
