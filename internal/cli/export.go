package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge/internal/export"
	"github.com/tokenforge/tokenforge/internal/ports"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored tokens",
	Long: `Export persisted palettes as frontend-ready token files.

Examples:
  tokenforge export palette 7d9c... --format css
  tokenforge export palette 7d9c... --format scss --output _colors.scss
  tokenforge export palettes --format json`,
}

var exportPaletteCmd = &cobra.Command{
	Use:   "palette <id>",
	Short: "Export one palette by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportPalette,
}

var exportPalettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "Export every stored palette",
	RunE:  runExportPalettes,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportPaletteCmd)
	exportCmd.AddCommand(exportPalettesCmd)

	exportCmd.PersistentFlags().StringVarP(&exportFormat, "format", "f", "css", "Output format: css, scss, js, json")
	exportCmd.PersistentFlags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExportPalette(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	p, err := app.PaletteRepo.GetByID(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}
	if p == nil {
		return fmt.Errorf("no palette with ID %q", args[0])
	}

	out, err := export.Palette(p.Name, p.Steps, format)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

func runExportPalettes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	palettes, err := app.PaletteRepo.List(ctx, ports.ListPalettesOptions{})
	if err != nil {
		return fmt.Errorf("failed to list palettes: %w", err)
	}

	var combined string
	for _, p := range palettes {
		out, err := export.Palette(p.Name, p.Steps, format)
		if err != nil {
			return err
		}
		combined += out
	}
	return writeOutput(cmd, combined)
}

func writeOutput(cmd *cobra.Command, content string) error {
	if exportOutput == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(exportOutput, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", exportOutput)
	return nil
}
