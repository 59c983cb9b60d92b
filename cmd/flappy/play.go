package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/events"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The game waits for the first flap.

Controls:
  Space/Up/W   - Flap (starts a new game when none is running)
  Left click   - Flap
  Enter/R      - Start or restart
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C     - Quit

Examples:
  flappy play
  flappy play --fps 30
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write session events to this file")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so events go to a file or nowhere
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger, err := events.NewLogger(out, "flappy", flagLogLevel)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Debug("starting", "width", width, "height", height, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(cfg, rt, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
