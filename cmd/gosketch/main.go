package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gosketch/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gosketch",
	Short: "A CLI tool for inspecting and measuring 2D parametric sketches",
	Long: `gosketch is a command-line tool for analyzing sketch files.
It reports entity statistics, measures distances and angles between
sketch geometry, and renders sketches with their dimensions to PNG.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
