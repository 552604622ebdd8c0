package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func resetScaleFlags() {
	scaleBase = 16
	scaleRatio = 1.25
	scaleUp = 3
	scaleDown = 2
	scaleUnit = "px"
	scaleBasePx = 16
	scaleFormat = "table"
	scaleDistance = 0
	scaleAcuity = 1.0
	scaleTextType = "continuous"
	scaleLighting = "good"
	scalePPI = 96
	scaleMeanRatio = 0.5
}

func runScaleCapture(t *testing.T) (string, error) {
	t.Helper()
	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	err := runScale(cmd, nil)
	return buf.String(), err
}

func TestRunScaleTable(t *testing.T) {
	resetScaleFlags()
	scaleUp, scaleDown = 1, 1

	out, err := runScaleCapture(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"STEP", "f-1", "12.8px", "f0", "16px", "f1", "20px"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestRunScaleCSS(t *testing.T) {
	resetScaleFlags()
	scaleUp, scaleDown = 1, 0
	scaleFormat = "css"

	out, err := runScaleCapture(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "--font-size-f0: 16px;") {
		t.Errorf("css output missing base variable:\n%s", out)
	}
}

func TestRunScaleDistance(t *testing.T) {
	resetScaleFlags()
	scaleDistance = 40

	out, err := runScaleCapture(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "f0") {
		t.Errorf("distance scale should still emit the base step:\n%s", out)
	}
}

func TestRunScaleInvalidRatio(t *testing.T) {
	resetScaleFlags()
	scaleRatio = 1.0

	if _, err := runScaleCapture(t); err == nil {
		t.Error("expected error for ratio 1.0")
	}
}

func TestRunScaleUnknownFormat(t *testing.T) {
	resetScaleFlags()
	scaleFormat = "yaml"

	if _, err := runScaleCapture(t); err == nil {
		t.Error("expected error for unknown format")
	}
}
