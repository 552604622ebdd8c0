package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func resetPaletteFlags() {
	paletteBase = ""
	paletteSteps = 9
	paletteSaveName = ""
	paletteBrandID = ""
	paletteCore = false
	paletteFormat = "table"
	paletteLightness = "linear"
	paletteChroma = "constant"
	paletteHueShift = 0
	paletteLockBase = false
	paletteKeepLight = false
	paletteLightnessMin = 0.95
	paletteLightnessMax = 0.15
	paletteChromaMin = 0.05
	paletteChromaMax = 0.15
}

func runPaletteCapture(t *testing.T) (string, error) {
	t.Helper()
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	err := runPalette(cmd, nil)
	return buf.String(), err
}

func TestRunPaletteTable(t *testing.T) {
	resetPaletteFlags()
	paletteBase = "#3264C8"
	paletteSteps = 5

	out, err := runPaletteCapture(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"STEP", "100", "500", "#"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "*") {
		t.Errorf("base step should be marked with *:\n%s", out)
	}
}

func TestRunPaletteCSS(t *testing.T) {
	resetPaletteFlags()
	paletteBase = "#3264C8"
	paletteSteps = 3
	paletteFormat = "css"

	out, err := runPaletteCapture(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{":root {", "--color-palette-100:", "--color-palette-300:"} {
		if !strings.Contains(out, want) {
			t.Errorf("css output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPaletteBadBase(t *testing.T) {
	resetPaletteFlags()
	paletteBase = "definitely-not-a-color"
	paletteSteps = 5

	if _, err := runPaletteCapture(t); err == nil {
		t.Error("expected error for unresolvable base color")
	}
}

func TestPaletteBaseValuesRouting(t *testing.T) {
	tests := []struct {
		in        string
		wantField string
	}{
		{"#3264C8", "hex"},
		{"rgb(50, 100, 200)", "rgb"},
		{"oklch(55% 0.15 240)", "oklch"},
		{"", "none"},
	}
	for _, tt := range tests {
		paletteBase = tt.in
		v := paletteBaseValues()
		got := "none"
		switch {
		case v.OKLCH != "":
			got = "oklch"
		case v.RGB != "":
			got = "rgb"
		case v.Hex != "":
			got = "hex"
		}
		if got != tt.wantField {
			t.Errorf("paletteBaseValues(%q) routed to %s, want %s", tt.in, got, tt.wantField)
		}
	}
	paletteBase = ""
}
