package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rockflight/internal/assets"
)

var (
	flagAssetsOut   string
	flagAssetsForce bool
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Write the built-in art to a directory",
	Long: `Write the generated placeholder images and the collider outlines
(shapes.json) to a directory, as a starting point for custom art.

Existing files are left alone unless --force is given.

Examples:
  rockflight assets --out assets
  rockflight assets --out ./my-art --force`,
	Args: cobra.NoArgs,
	Run:  runAssets,
}

func init() {
	assetsCmd.Flags().StringVar(&flagAssetsOut, "out", assets.DefaultPath, "Directory to write to")
	assetsCmd.Flags().BoolVar(&flagAssetsForce, "force", false, "Overwrite existing files")
	rootCmd.AddCommand(assetsCmd)
}

func runAssets(_ *cobra.Command, _ []string) {
	written, err := assets.Export(flagAssetsOut, flagAssetsForce)
	exitOnError(err)
	for _, path := range written {
		fmt.Println(path)
	}
	if len(written) == 0 {
		fmt.Println("Nothing written; use --force to overwrite existing files.")
	}
}
