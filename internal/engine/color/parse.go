package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// rgb8 is the internal normalized model: 8-bit sRGB channels.
type rgb8 struct {
	R, G, B uint8
}

var (
	hexPattern   = regexp.MustCompile(`^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)
	rgbPattern   = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*(?:,[^)]*)?\)$`)
	oklchPattern = regexp.MustCompile(`^oklch\(\s*([\d.]+)(%?)\s+([\d.]+)\s+([\d.]+)(?:deg)?\s*(?:/[^)]*)?\)$`)
	cmykPattern  = regexp.MustCompile(`^cmyk\(\s*([\d.]+)%?\s*,\s*([\d.]+)%?\s*,\s*([\d.]+)%?\s*,\s*([\d.]+)%?\s*\)$`)
)

// parseAny detects the format of a color string and parses it to sRGB.
func parseAny(color string) (rgb8, error) {
	s := strings.TrimSpace(strings.ToLower(color))
	switch {
	case strings.HasPrefix(s, "#") || hexPattern.MatchString(s):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseRGB(s)
	case strings.HasPrefix(s, "oklch"):
		l, c, h, err := ParseOKLCH(s)
		if err != nil {
			return rgb8{}, err
		}
		return oklchToRGB(l, c, h), nil
	case strings.HasPrefix(s, "cmyk"):
		return parseCMYK(s)
	default:
		return rgb8{}, fmt.Errorf("unrecognized color %q", color)
	}
}

// parseAs parses a color string expected to be in a specific format.
func parseAs(color string, format Format) (rgb8, error) {
	s := strings.TrimSpace(strings.ToLower(color))
	switch format {
	case FormatHex:
		return parseHex(s)
	case FormatRGB:
		return parseRGB(s)
	case FormatOKLCH:
		l, c, h, err := ParseOKLCH(s)
		if err != nil {
			return rgb8{}, err
		}
		return oklchToRGB(l, c, h), nil
	case FormatCMYK:
		return parseCMYK(s)
	default:
		return rgb8{}, fmt.Errorf("unsupported format %q", format)
	}
}

func parseHex(s string) (rgb8, error) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return rgb8{}, fmt.Errorf("invalid hex color %q", s)
	}
	digits := m[1]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return rgb8{}, fmt.Errorf("invalid hex color %q", s)
	}
	return rgb8{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

func parseRGB(s string) (rgb8, error) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return rgb8{}, fmt.Errorf("invalid rgb color %q", s)
	}
	ch := [3]uint8{}
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(m[i+1])
		if err != nil || v > 255 {
			return rgb8{}, fmt.Errorf("invalid rgb channel in %q", s)
		}
		ch[i] = uint8(v)
	}
	return rgb8{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseOKLCH parses an "oklch(L C H)" string into its components.
// Lightness may be a percentage ("62.8%") or a 0..1 value; hue may carry a
// "deg" suffix. Hue is normalized into [0, 360).
func ParseOKLCH(color string) (l, c, h float64, err error) {
	s := strings.TrimSpace(strings.ToLower(color))
	m := oklchPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("invalid oklch color %q", color)
	}

	l, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid oklch lightness in %q", color)
	}
	if m[2] == "%" {
		l /= 100
	} else if l > 1 {
		// Percentage written without the sign.
		l /= 100
	}

	c, err = strconv.ParseFloat(m[3], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid oklch chroma in %q", color)
	}

	h, err = strconv.ParseFloat(m[4], 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid oklch hue in %q", color)
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	return l, c, h, nil
}

func parseCMYK(s string) (rgb8, error) {
	m := cmykPattern.FindStringSubmatch(s)
	if m == nil {
		return rgb8{}, fmt.Errorf("invalid cmyk color %q", s)
	}
	var comps [4]float64
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil || v < 0 || v > 100 {
			return rgb8{}, fmt.Errorf("invalid cmyk component in %q", s)
		}
		comps[i] = v / 100
	}
	c, mC, y, k := comps[0], comps[1], comps[2], comps[3]
	return rgb8{
		R: uint8(math.Round(255 * (1 - c) * (1 - k))),
		G: uint8(math.Round(255 * (1 - mC) * (1 - k))),
		B: uint8(math.Round(255 * (1 - y) * (1 - k))),
	}, nil
}

func formatHex(c rgb8) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func formatRGB(c rgb8) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// FormatOKLCHString serializes OKLCH components in CSS notation.
func FormatOKLCHString(l, c, h float64) string {
	return fmt.Sprintf("oklch(%.1f%% %.3f %.1f)", l*100, c, h)
}

func formatCMYK(c rgb8) string {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return "cmyk(0%, 0%, 0%, 100%)"
	}
	cy := (1 - r - k) / (1 - k)
	ma := (1 - g - k) / (1 - k)
	ye := (1 - b - k) / (1 - k)
	return fmt.Sprintf("cmyk(%.0f%%, %.0f%%, %.0f%%, %.0f%%)", cy*100, ma*100, ye*100, k*100)
}
