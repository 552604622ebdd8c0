package templates

import (
	"fmt"
	"time"

	"github.com/a-h/templ"

	"github.com/tokenforge/tokenforge/internal/util"
)

func formatDateTime(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 15:04")
}

func stepBadge(aaNormal, aaa bool) string {
	switch {
	case aaa:
		return "AAA"
	case aaNormal:
		return "AA"
	default:
		return "-"
	}
}

// accessibleShare formats the fraction of steps meeting WCAG AA as a
// percentage for the palette list meta line.
func accessibleShare(accessible, total int) string {
	if total == 0 {
		return util.FormatPercent(0)
	}
	return util.FormatPercent(float64(accessible) / float64(total))
}

func buildPaletteURL(id string) templ.SafeURL {
	return templ.SafeURL("/palettes/" + id)
}

func buildPaletteExportURL(id, format string) templ.SafeURL {
	return templ.SafeURL(fmt.Sprintf("/api/export/palettes/%s?format=%s", id, format))
}

func buildScaleExportURL(format, rawQuery string) templ.SafeURL {
	url := "/api/export/scale?format=" + format
	if rawQuery != "" {
		url += "&" + rawQuery
	}
	return templ.SafeURL(url)
}
