package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge/internal/domain"
	"github.com/tokenforge/tokenforge/internal/engine/color"
	"github.com/tokenforge/tokenforge/internal/engine/palette"
	"github.com/tokenforge/tokenforge/internal/export"
	"github.com/tokenforge/tokenforge/internal/ports"
	"github.com/tokenforge/tokenforge/internal/util"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate a color palette",
	Long: `Generate an OKLCH palette around a base color, with WCAG contrast
scoring per step.

With --save the palette is persisted under the given name; otherwise it is
only printed.

Examples:
  tokenforge palette --base "#3264C8" --steps 9
  tokenforge palette --base "oklch(55% 0.15 240)" --steps 7 --lock-base
  tokenforge palette --base "#E11D48" --save "Brand Red" --core`,
	RunE: runPalette,
}

var (
	paletteBase         string
	paletteSteps        int
	paletteSaveName     string
	paletteBrandID      string
	paletteCore         bool
	paletteFormat       string
	paletteLightness    string
	paletteChroma       string
	paletteHueShift     float64
	paletteLockBase     bool
	paletteKeepLight    bool
	paletteLightnessMin float64
	paletteLightnessMax float64
	paletteChromaMin    float64
	paletteChromaMax    float64
)

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringVarP(&paletteBase, "base", "b", "", "Base color (hex, rgb() or oklch())")
	paletteCmd.Flags().IntVarP(&paletteSteps, "steps", "n", 9, "Number of palette steps")
	paletteCmd.Flags().StringVar(&paletteSaveName, "save", "", "Persist the palette under this name")
	paletteCmd.Flags().StringVar(&paletteBrandID, "brand", "", "Brand ID to attach the saved palette to")
	paletteCmd.Flags().BoolVar(&paletteCore, "core", false, "Mark the saved palette as a core palette")
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "table", "Output format: table, css, scss, js, json")
	paletteCmd.Flags().StringVar(&paletteLightness, "lightness", "linear", "Lightness preset: linear, curved, easeIn, easeOut")
	paletteCmd.Flags().StringVar(&paletteChroma, "chroma", "constant", "Chroma preset: constant, decrease, increase")
	paletteCmd.Flags().Float64Var(&paletteHueShift, "hue-shift", 0, "Total hue rotation across the palette in degrees")
	paletteCmd.Flags().BoolVar(&paletteLockBase, "lock-base", false, "Keep the middle step exactly at the base color")
	paletteCmd.Flags().BoolVar(&paletteKeepLight, "keep-lightness", false, "Do not vary lightness across steps")
	paletteCmd.Flags().Float64Var(&paletteLightnessMin, "lightness-min", 0.95, "Lightness of the first step")
	paletteCmd.Flags().Float64Var(&paletteLightnessMax, "lightness-max", 0.15, "Lightness of the last step")
	paletteCmd.Flags().Float64Var(&paletteChromaMin, "chroma-min", 0.05, "Chroma range start")
	paletteCmd.Flags().Float64Var(&paletteChromaMax, "chroma-max", 0.15, "Chroma range end")
}

func paletteBaseValues() color.Values {
	s := strings.TrimSpace(paletteBase)
	switch {
	case s == "":
		return color.Values{}
	case strings.HasPrefix(s, "oklch"):
		return color.Values{OKLCH: s}
	case strings.HasPrefix(s, "rgb"):
		return color.Values{RGB: s}
	default:
		return color.Values{Hex: s}
	}
}

func runPalette(cmd *cobra.Command, args []string) error {
	opts := palette.Options{
		LightnessPreset: palette.LightnessPreset(paletteLightness),
		ChromaPreset:    palette.ChromaPreset(paletteChroma),
		LightnessRange:  [2]float64{paletteLightnessMin, paletteLightnessMax},
		ChromaRange:     [2]float64{paletteChromaMin, paletteChromaMax},
		HueShift:        paletteHueShift,
		LockBaseColor:   paletteLockBase,
	}

	steps, err := palette.Generate(paletteBaseValues(), paletteSteps, !paletteKeepLight, opts)
	if err != nil {
		return err
	}

	if paletteSaveName != "" {
		if err := savePalette(cmd.Context(), paletteSaveName, steps); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved palette %q (%d steps)\n", paletteSaveName, len(steps))
	}

	return printPalette(cmd, steps)
}

func savePalette(ctx context.Context, name string, steps []palette.Step) error {
	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	defer app.Close(ctx)

	base := color.Values{}
	for _, s := range steps {
		if s.IsBaseColor {
			base = s.Values
			break
		}
	}

	p := &domain.ColorPalette{
		ID:        uuid.NewString(),
		BrandID:   paletteBrandID,
		Name:      name,
		BaseColor: base,
		Steps:     steps,
		IsCore:    paletteCore,
		CreatedAt: time.Now().UTC(),
	}
	if err := app.PaletteRepo.Create(ctx, p); err != nil {
		return fmt.Errorf("failed to save palette: %w", err)
	}

	_ = app.Metrics.ExportGeneration(ctx, &ports.GenerationMetrics{
		Kind:      "palette",
		BrandID:   p.BrandID,
		Steps:     int64(len(steps)),
		Persisted: true,
	})
	return nil
}

func printPalette(cmd *cobra.Command, steps []palette.Step) error {
	out := cmd.OutOrStdout()

	if paletteFormat == "table" {
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STEP\tHEX\tOKLCH\tVS WHITE\tVS BLACK\tWCAG")
		for _, s := range steps {
			name := s.Name
			if s.IsBaseColor {
				name += " *"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				name, s.Values.Hex, s.Values.OKLCH,
				util.FormatContrast(s.Accessibility.ContrastWithWhite),
				util.FormatContrast(s.Accessibility.ContrastWithBlack),
				wcagLabel(s.Accessibility))
		}
		return w.Flush()
	}

	format, err := export.ParseFormat(paletteFormat)
	if err != nil {
		return err
	}
	name := paletteSaveName
	if name == "" {
		name = "palette"
	}
	serialized, err := export.Palette(name, steps, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, serialized)
	return err
}

func wcagLabel(a color.Accessibility) string {
	switch {
	case a.WCAGAAA:
		return "AAA"
	case a.WCAGAANormal:
		return "AA"
	case a.WCAGAALarge:
		return "AA-large"
	default:
		return "-"
	}
}
