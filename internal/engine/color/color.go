// Package color converts colors among hex, RGB, OKLCH and CMYK text
// representations and scores them against the WCAG contrast thresholds.
//
// OKLCH is the working space for perceptual manipulation; hex and RGB are
// display/storage formats. Single-color operations degrade defensively:
// unparseable input yields a documented neutral fallback instead of an
// error, so one malformed value cannot crash a swatch render loop.
package color

// Format identifies a textual color representation.
type Format string

const (
	FormatHex     Format = "hex"
	FormatRGB     Format = "rgb"
	FormatOKLCH   Format = "oklch"
	FormatCMYK    Format = "cmyk"
	FormatPantone Format = "pantone"
)

// Values holds the textual serializations of one color, kept mutually
// consistent by construction. CMYK is only present when a caller asked for
// it explicitly.
type Values struct {
	Hex   string `json:"hex"`
	RGB   string `json:"rgb"`
	OKLCH string `json:"oklch"`
	CMYK  string `json:"cmyk,omitempty"`
}

// Accessibility reports a color's WCAG contrast against pure white and pure
// black, with the standard 3 / 4.5 / 7 threshold flags applied to the
// better of the two.
type Accessibility struct {
	ContrastWithWhite float64 `json:"contrast_with_white"`
	ContrastWithBlack float64 `json:"contrast_with_black"`
	WCAGAANormal      bool    `json:"wcag_aa_normal"`
	WCAGAALarge       bool    `json:"wcag_aa_large"`
	WCAGAAA           bool    `json:"wcag_aaa"`
}

// ConvertColor re-serializes a color from one format to another. Pantone in
// either position passes the input through unchanged: Pantone needs an
// external lookup table that is out of scope. Unparseable input also passes
// through unchanged.
func ConvertColor(color string, from, to Format) string {
	if from == to || from == FormatPantone || to == FormatPantone {
		return color
	}

	c, err := parseAs(color, from)
	if err != nil {
		return color
	}

	switch to {
	case FormatHex:
		return formatHex(c)
	case FormatRGB:
		return formatRGB(c)
	case FormatOKLCH:
		l, ch, h := rgbToOKLCH(c)
		return FormatOKLCHString(l, ch, h)
	case FormatCMYK:
		return formatCMYK(c)
	default:
		return color
	}
}

// ConvertToAllFormats produces hex, rgb and oklch serializations from any
// one parseable input. Unparseable input yields black, because callers
// render swatches unconditionally and must never crash on bad data.
func ConvertToAllFormats(color string) Values {
	// An OKLCH input keeps its own components rather than round-tripping
	// through (gamut-clipped) sRGB.
	if l, c, h, err := ParseOKLCH(color); err == nil {
		return FromOKLCH(l, c, h)
	}

	c, err := parseAny(color)
	if err != nil {
		return Values{
			Hex:   "#000000",
			RGB:   "rgb(0, 0, 0)",
			OKLCH: FormatOKLCHString(0, 0, 0),
		}
	}

	l, ch, h := rgbToOKLCH(c)
	return Values{
		Hex:   formatHex(c),
		RGB:   formatRGB(c),
		OKLCH: FormatOKLCHString(l, ch, h),
	}
}

// FromOKLCH builds consistent Values from OKLCH components. The OKLCH text
// keeps the exact components; hex and rgb are the gamut-clipped sRGB
// projection.
func FromOKLCH(l, c, h float64) Values {
	rgb := oklchToRGB(l, c, h)
	return Values{
		Hex:   formatHex(rgb),
		RGB:   formatRGB(rgb),
		OKLCH: FormatOKLCHString(l, c, h),
	}
}
