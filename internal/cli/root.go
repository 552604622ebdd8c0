package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tokenforge",
	Short: "Design token derivation engine and dashboard",
	Long: `tokenforge derives typographic scales and color palettes from a small
set of numeric and perceptual parameters.

Compute modular or distance-based type scales, generate OKLCH palettes with
WCAG contrast scoring, persist them per brand and platform, and export the
results as CSS, SCSS, JS or JSON tokens.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
