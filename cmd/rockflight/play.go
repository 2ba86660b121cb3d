package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rockflight/internal/logging"
	"github.com/vovakirdan/rockflight/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play in the current terminal.

Controls:
  Space/Up/W - Climb (start a flight, leave the game over screen)
  F          - Toggle the fullscreen flag (no effect in a terminal)
  Ctrl+S     - Save a text screenshot to ~/.rockflight/screenshots
  Q/Ctrl+C   - Quit

Logs are written to ~/.rockflight/rockflight.log while the game owns the
screen.

Examples:
  rockflight play
  rockflight play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.rockflight/rockflight.log)")
}

func runPlay(_ *cobra.Command, _ []string) {
	logFile, err := logging.OpenFile(flagLogFile)
	exitOnError(err)
	defer logFile.Close()

	e, err := setup(logFile, "rockflight")
	exitOnError(err)
	defer e.close()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		e.runtime.ScreenW = w
		e.runtime.ScreenH = h
	}

	exitOnError(tui.Run(tui.Options{
		Runtime:       e.runtime,
		Flight:        e.flight,
		AssetDir:      e.flight.Assets.Path,
		Logger:        e.logger,
		ConfigUpdates: e.updates(),
	}))
}
