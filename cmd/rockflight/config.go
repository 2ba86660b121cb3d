package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockflight/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The result merges --config (or the first file found in
~/.rockflight/configs and ./configs) over the built-in defaults. Redirect it
to a file to start a custom tuning:

  rockflight config > ~/.rockflight/configs/flight.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	exitOnError(err)
	if flagAssets != "" {
		cfg.Assets.Path = flagAssets
	}

	data, err := config.Marshal(cfg)
	exitOnError(err)
	_, err = os.Stdout.Write(data)
	exitOnError(err)
}
