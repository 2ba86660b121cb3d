// rockflight is a side-scrolling flight game: keep the plane between the
// rocks for as long as you can.
//
// Usage:
//
//	rockflight window        - Play in a window
//	rockflight play          - Play in the terminal
//	rockflight serve         - Start SSH server for remote play
//	rockflight config        - Print the effective configuration
//	rockflight assets        - Write the built-in art to a directory
//
// Global flags:
//
//	--config <path>      - Tuning file (YAML or TOML)
//	--watch              - Reload --config on change, applied between flights
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible rock layouts
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagWatch    bool
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagAssets   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rockflight",
	Short: "Rockflight - fly a plane between the rocks",
	Long: `Rockflight is a one-button flight game. Tap or press space to climb,
let gravity do the rest, and pass as many rock pairs as you can.

Available commands:
  window   - Play in a window
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  assets   - Write the built-in art to a directory

Examples:
  rockflight window
  rockflight play --seed 42
  rockflight window --config ./flight.yaml --watch
  rockflight serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a flight config (YAML or TOML)")
	rootCmd.PersistentFlags().BoolVar(&flagWatch, "watch", false, "Reload --config when it changes")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (overrides assets.path)")

	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// exitOnError prints err the way every command reports failures.
func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
