// Package export serializes derived tokens into formats consumable by
// frontend toolchains.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tokenforge/tokenforge/internal/engine/palette"
	"github.com/tokenforge/tokenforge/internal/engine/typescale"
	"github.com/tokenforge/tokenforge/internal/engine/units"
	"github.com/tokenforge/tokenforge/internal/util"
)

// Format is a supported token output format.
type Format string

const (
	FormatCSS  Format = "css"
	FormatSCSS Format = "scss"
	FormatJS   Format = "js"
	FormatJSON Format = "json"
)

// ParseFormat validates a format string, defaulting empty input to JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSS, FormatSCSS, FormatJS, FormatJSON:
		return Format(s), nil
	case "":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSS, FormatSCSS:
		return "text/css"
	case FormatJS:
		return "application/javascript"
	default:
		return "application/json"
	}
}

// Scale serializes typographic scale steps. Variable names are derived from
// the step labels (f-2 .. f0 .. f2).
func Scale(steps []typescale.Step, unit units.Unit, format Format) (string, error) {
	var b strings.Builder

	switch format {
	case FormatCSS:
		b.WriteString(":root {\n")
		for _, s := range steps {
			fmt.Fprintf(&b, "  --font-size-%s: %s;\n", s.Label, util.FormatSize(s.Size, string(unit)))
		}
		b.WriteString("}\n")

	case FormatSCSS:
		for _, s := range steps {
			fmt.Fprintf(&b, "$font-size-%s: %s;\n", s.Label, util.FormatSize(s.Size, string(unit)))
		}

	case FormatJS:
		b.WriteString("export const fontSize = {\n")
		for _, s := range steps {
			fmt.Fprintf(&b, "  %q: %q,\n", s.Label, util.FormatSize(s.Size, string(unit)))
		}
		b.WriteString("};\n")

	case FormatJSON:
		out, err := json.MarshalIndent(steps, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode scale: %w", err)
		}
		return string(out) + "\n", nil

	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}

	return b.String(), nil
}

// Palette serializes palette steps under the given palette name. Hex values
// are used for CSS-family formats since they are always populated.
func Palette(name string, steps []palette.Step, format Format) (string, error) {
	slug := slugify(name)
	var b strings.Builder

	switch format {
	case FormatCSS:
		b.WriteString(":root {\n")
		for _, s := range steps {
			fmt.Fprintf(&b, "  --color-%s-%s: %s;\n", slug, s.Name, s.Values.Hex)
		}
		b.WriteString("}\n")

	case FormatSCSS:
		for _, s := range steps {
			fmt.Fprintf(&b, "$color-%s-%s: %s;\n", slug, s.Name, s.Values.Hex)
		}

	case FormatJS:
		fmt.Fprintf(&b, "export const %s = {\n", jsIdentifier(slug))
		for _, s := range steps {
			fmt.Fprintf(&b, "  %q: %q,\n", s.Name, s.Values.Hex)
		}
		b.WriteString("};\n")

	case FormatJSON:
		out, err := json.MarshalIndent(steps, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode palette: %w", err)
		}
		return string(out) + "\n", nil

	default:
		return "", fmt.Errorf("unsupported export format %q", format)
	}

	return b.String(), nil
}

// slugify lowercases a palette name and collapses non-alphanumeric runs to
// single dashes.
func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// jsIdentifier converts a slug into a camelCase identifier for JS exports.
func jsIdentifier(slug string) string {
	parts := strings.Split(slug, "-")
	var b strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(p)
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}
	if b.Len() == 0 {
		return "palette"
	}
	s := b.String()
	if s[0] >= '0' && s[0] <= '9' {
		return "palette" + strings.ToUpper(s[:1]) + s[1:]
	}
	return s
}
