package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tokenforge/tokenforge/internal/engine/typescale"
	"github.com/tokenforge/tokenforge/internal/engine/units"
	"github.com/tokenforge/tokenforge/internal/export"
	"github.com/tokenforge/tokenforge/internal/util"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Compute a typographic scale",
	Long: `Compute the steps of a typographic scale.

The base size comes from --base, or from the perceptual distance model when
--distance is set.

Examples:
  tokenforge scale --base 16 --ratio 1.25 --up 3 --down 2
  tokenforge scale --distance 40 --lighting moderate --ratio 1.333
  tokenforge scale --base 18 --unit rem --format css`,
	RunE: runScale,
}

var (
	scaleBase      float64
	scaleRatio     float64
	scaleUp        int
	scaleDown      int
	scaleUnit      string
	scaleBasePx    float64
	scaleFormat    string
	scaleDistance  float64
	scaleAcuity    float64
	scaleTextType  string
	scaleLighting  string
	scalePPI       float64
	scaleMeanRatio float64
)

func init() {
	rootCmd.AddCommand(scaleCmd)

	scaleCmd.Flags().Float64Var(&scaleBase, "base", 16, "Base size in px")
	scaleCmd.Flags().Float64Var(&scaleRatio, "ratio", 1.25, "Scale ratio (must be > 1)")
	scaleCmd.Flags().IntVar(&scaleUp, "up", 3, "Steps above the base")
	scaleCmd.Flags().IntVar(&scaleDown, "down", 2, "Steps below the base")
	scaleCmd.Flags().StringVar(&scaleUnit, "unit", "px", "Target unit: px, rem, em")
	scaleCmd.Flags().Float64Var(&scaleBasePx, "base-px", units.DefaultBasePx, "Reference px size for relative units")
	scaleCmd.Flags().StringVarP(&scaleFormat, "format", "f", "table", "Output format: table, css, scss, js, json")

	scaleCmd.Flags().Float64Var(&scaleDistance, "distance", 0, "Viewing distance in cm (enables the distance model)")
	scaleCmd.Flags().Float64Var(&scaleAcuity, "acuity", 1.0, "Decimal visual acuity")
	scaleCmd.Flags().StringVar(&scaleTextType, "text-type", "continuous", "Text type: continuous, isolated")
	scaleCmd.Flags().StringVar(&scaleLighting, "lighting", "good", "Lighting: good, moderate, poor")
	scaleCmd.Flags().Float64Var(&scalePPI, "ppi", 96, "Display pixel density")
	scaleCmd.Flags().Float64Var(&scaleMeanRatio, "mean-ratio", 0.5, "Typeface mean length (x-height) ratio")
}

func runScale(cmd *cobra.Command, args []string) error {
	if scaleRatio <= 1 {
		return fmt.Errorf("ratio must be greater than 1, got %v", scaleRatio)
	}

	base := scaleBase
	if scaleDistance > 0 {
		base = typescale.DistanceBasedSize(typescale.DistanceConfig{
			ViewingDistance: scaleDistance,
			VisualAcuity:    scaleAcuity,
			MeanLengthRatio: scaleMeanRatio,
			TextType:        typescale.TextType(scaleTextType),
			Lighting:        typescale.Lighting(scaleLighting),
			PPI:             scalePPI,
		})
	}
	if base <= 0 {
		return fmt.Errorf("base size must be positive, got %v", base)
	}

	unit := units.Unit(scaleUnit)
	steps := typescale.Calculate(base, scaleRatio, scaleUp, scaleDown, unit, scaleBasePx)

	out := cmd.OutOrStdout()

	if scaleFormat == "table" {
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STEP\tSIZE\tRATIO")
		for _, s := range steps {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Label, util.FormatSize(s.Size, string(unit)), util.FormatRatio(s.Ratio))
		}
		return w.Flush()
	}

	format, err := export.ParseFormat(scaleFormat)
	if err != nil {
		return err
	}
	serialized, err := export.Scale(steps, unit, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, serialized)
	return err
}
