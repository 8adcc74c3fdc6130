package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "image-compose",
	Short: "Composite images into canvas regions with contain-fit scaling",
	Long: `image-compose scales a content image to fit a rectangular region of a
canvas while preserving aspect ratio, places it according to alignment and
padding, and writes the result as lossless PNG.

Canvas and content sources may be local files or http(s) URLs.`,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
