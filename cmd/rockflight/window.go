package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockflight/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a window",
	Long: `Open the game window.

Controls:
  Click/Tap  - Climb (start a flight, leave the game over screen)
  Space      - Climb, on release
  F / button - Toggle fullscreen
  Q/Esc      - Quit

Images are read from the asset directory (default ./assets); anything
missing is replaced by generated placeholder art.`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	e, err := setup(os.Stderr, "rockflight")
	exitOnError(err)
	defer e.close()

	exitOnError(desktop.Run(desktop.Options{
		Runtime:       e.runtime,
		Flight:        e.flight,
		AssetDir:      e.flight.Assets.Path,
		Logger:        e.logger,
		ConfigUpdates: e.updates(),
	}))
}
