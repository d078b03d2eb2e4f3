package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "circe",
	Short: "circe - schematic capture playground",
	Long: `circe is an interactive schematic editor built around a pan/zoom
viewport engine.

Examples:
  circe view                      # open an empty schematic
  circe view --free-aspect        # per-axis zoom clamping
  circe view --max-zoom 200       # allow zooming in further`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
