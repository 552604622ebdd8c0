// Package templates renders the HTML pages of the web shell. Components are
// plain templ components so handlers can compose and render them with a
// request context.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s · tokenforge</title><link rel="stylesheet" href="/static/style.css"></head><body><nav><a href="/">Overview</a><a href="/scale">Scale</a><a href="/palettes">Palettes</a></nav><main>`,
			templ.EscapeString(title))
		if err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// Overview is the landing page with counts and recent palettes.
func Overview(data OverviewData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1>Overview</h1><section class="stats"><div class="stat"><span>%d</span> brands</div><div class="stat"><span>%d</span> palettes</div><div class="stat"><span>%d</span> core</div></section>`,
			data.BrandCount, data.PaletteCount, data.CoreCount)
		if err != nil {
			return err
		}
		if len(data.Recent) == 0 {
			_, err = io.WriteString(w, `<p class="empty">No palettes yet.</p>`)
			return err
		}
		if _, err = io.WriteString(w, `<h2>Recent palettes</h2><ul class="palette-list">`); err != nil {
			return err
		}
		for _, p := range data.Recent {
			if err := paletteListItem(w, p); err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</ul>`)
		return err
	})
	return layout("Overview", body)
}

// ScalePage renders a typographic scale preview with per-step samples.
func ScalePage(data ScalePageData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<h1>Type scale</h1><p class="meta">base %s · ratio %s · unit %s</p><div class="export-links"><a href="%s">css</a> <a href="%s">scss</a> <a href="%s">js</a> <a href="%s">json</a></div><table class="scale"><thead><tr><th>Step</th><th>Size</th><th>Sample</th></tr></thead><tbody>`,
			templ.EscapeString(data.BaseSize), templ.EscapeString(data.Ratio), templ.EscapeString(data.Unit),
			buildScaleExportURL("css", data.RawQuery), buildScaleExportURL("scss", data.RawQuery),
			buildScaleExportURL("js", data.RawQuery), buildScaleExportURL("json", data.RawQuery))
		if err != nil {
			return err
		}
		for _, s := range data.Steps {
			_, err := fmt.Fprintf(w,
				`<tr><td>%s</td><td>%s</td><td style="font-size: %spx">The quick brown fox</td></tr>`,
				templ.EscapeString(s.Label), templ.EscapeString(s.Size), templ.EscapeString(s.Px))
			if err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</tbody></table>`)
		return err
	})
	return layout("Scale", body)
}

// PaletteList renders all persisted palettes.
func PaletteList(items []PaletteSummary) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Palettes</h1>`); err != nil {
			return err
		}
		if len(items) == 0 {
			_, err := io.WriteString(w, `<p class="empty">No palettes yet.</p>`)
			return err
		}
		if _, err := io.WriteString(w, `<ul class="palette-list">`); err != nil {
			return err
		}
		for _, p := range items {
			if err := paletteListItem(w, p); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
	return layout("Palettes", body)
}

// PaletteDetail renders one palette with swatches and contrast flags.
func PaletteDetail(data PaletteDetailData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		core := ""
		if data.IsCore {
			core = ` <span class="badge">core</span>`
		}
		_, err := fmt.Fprintf(w,
			`<h1>%s%s</h1><p class="meta">base %s · created %s</p><div class="export-links"><a href="%s">css</a> <a href="%s">scss</a> <a href="%s">js</a> <a href="%s">json</a></div><table class="palette"><thead><tr><th></th><th>Step</th><th>Hex</th><th>OKLCH</th><th>vs white</th><th>vs black</th><th>WCAG</th></tr></thead><tbody>`,
			templ.EscapeString(data.Name), core,
			templ.EscapeString(data.BaseHex), templ.EscapeString(formatDateTime(data.CreatedAt)),
			buildPaletteExportURL(data.ID, "css"), buildPaletteExportURL(data.ID, "scss"),
			buildPaletteExportURL(data.ID, "js"), buildPaletteExportURL(data.ID, "json"))
		if err != nil {
			return err
		}
		for _, s := range data.Steps {
			name := templ.EscapeString(s.Name)
			if s.IsBase {
				name += ` <span class="badge">base</span>`
			}
			_, err := fmt.Fprintf(w,
				`<tr><td><span class="swatch" style="background: %s"></span></td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>`,
				templ.EscapeString(s.Hex), name,
				templ.EscapeString(s.Hex), templ.EscapeString(s.OKLCH),
				templ.EscapeString(s.ContrastWhite), templ.EscapeString(s.ContrastBlack),
				stepBadge(s.AANormal, s.AAA))
			if err != nil {
				return err
			}
		}
		_, err = io.WriteString(w, `</tbody></table>`)
		return err
	})
	return layout(data.Name, body)
}

func paletteListItem(w io.Writer, p PaletteSummary) error {
	core := ""
	if p.IsCore {
		core = ` <span class="badge">core</span>`
	}
	_, err := fmt.Fprintf(w,
		`<li><span class="swatch" style="background: %s"></span><a href="%s">%s</a>%s <span class="meta">%d steps · %s accessible · %s</span></li>`,
		templ.EscapeString(p.BaseHex), buildPaletteURL(p.ID), templ.EscapeString(p.Name), core,
		p.StepCount, accessibleShare(p.Accessible, p.StepCount), templ.EscapeString(formatDateTime(p.CreatedAt)))
	return err
}
