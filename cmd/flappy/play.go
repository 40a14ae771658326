package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

The play area is fixed from the terminal size at startup. Resizing the
terminal later stretches the same play area over the new size.

Controls:
  Space/Up      - Flap (also starts the run)
  R             - Try again (after a crash)
  Mouse click   - Tap: flap, or try again after a crash
  Ctrl+S        - Save a text screenshot to ~/.flappy/screenshots
  Q/Ctrl+C      - Quit

Examples:
  flappy play
  flappy play --fps 30
  flappy play --seed 42 --log-level debug`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOut, err := openLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer logOut.Close()
	logger := newLogger(logOut, cfg.Log, "flappy")

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickRate:     cfg.Display.FPS,
		Seed:         flagSeed,
		CellW:        cfg.Display.CellWidth,
		CellH:        cfg.Display.CellHeight,
		TouchPrimary: cfg.Input.TouchPrimary(os.Environ()),
	}

	if err := tui.Run(rc, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
