package web

import (
	"net/url"
	"strconv"
	"time"

	"github.com/tokenforge/tokenforge/internal/domain"
	"github.com/tokenforge/tokenforge/internal/engine/typescale"
	"github.com/tokenforge/tokenforge/internal/engine/units"
	"github.com/tokenforge/tokenforge/internal/util"
	"github.com/tokenforge/tokenforge/internal/web/templates"
)

// scaleQuery holds scale parameters parsed from a query string, with the
// engine defaults filled in.
type scaleQuery struct {
	BaseSize  float64
	Ratio     float64
	StepsUp   int
	StepsDown int
	Unit      units.Unit
	BasePx    float64
}

func parseScaleQuery(q url.Values) scaleQuery {
	sq := scaleQuery{
		BaseSize:  16,
		Ratio:     1.25,
		StepsUp:   3,
		StepsDown: 2,
		Unit:      units.Px,
		BasePx:    units.DefaultBasePx,
	}
	if v, err := strconv.ParseFloat(q.Get("base"), 64); err == nil && v > 0 {
		sq.BaseSize = v
	}
	if v, err := strconv.ParseFloat(q.Get("ratio"), 64); err == nil && v > 1 {
		sq.Ratio = v
	}
	if v, err := strconv.Atoi(q.Get("up")); err == nil && v >= 0 {
		sq.StepsUp = v
	}
	if v, err := strconv.Atoi(q.Get("down")); err == nil && v >= 0 {
		sq.StepsDown = v
	}
	if u := q.Get("unit"); u != "" {
		sq.Unit = units.Unit(u)
	}
	if v, err := strconv.ParseFloat(q.Get("base_px"), 64); err == nil && v > 0 {
		sq.BasePx = v
	}
	return sq
}

func (sq scaleQuery) calculate() []typescale.Step {
	return typescale.Calculate(sq.BaseSize, sq.Ratio, sq.StepsUp, sq.StepsDown, sq.Unit, sq.BasePx)
}

func buildScaleView(sq scaleQuery, rawQuery string) templates.ScalePageData {
	steps := sq.calculate()
	data := templates.ScalePageData{
		BaseSize: util.FormatSize(sq.BaseSize, "px"),
		Ratio:    util.FormatRatio(sq.Ratio),
		Unit:     string(sq.Unit),
		RawQuery: rawQuery,
		Steps:    make([]templates.ScaleStepView, 0, len(steps)),
	}
	for _, st := range steps {
		px := units.Convert(st.Size, sq.Unit, units.Px, sq.BasePx)
		data.Steps = append(data.Steps, templates.ScaleStepView{
			Label: st.Label,
			Size:  util.FormatSize(st.Size, string(sq.Unit)),
			Px:    util.FormatSize(px, ""),
			Ratio: util.FormatRatio(st.Ratio),
		})
	}
	return data
}

func buildPaletteSummary(p *domain.ColorPalette) templates.PaletteSummary {
	return templates.PaletteSummary{
		ID:         p.ID,
		Name:       p.Name,
		BaseHex:    p.BaseColor.Hex,
		StepCount:  len(p.Steps),
		Accessible: p.AccessibleSteps(),
		IsCore:     p.IsCore,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

func buildPaletteDetail(p *domain.ColorPalette) templates.PaletteDetailData {
	data := templates.PaletteDetailData{
		ID:        p.ID,
		Name:      p.Name,
		BaseHex:   p.BaseColor.Hex,
		IsCore:    p.IsCore,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		Steps:     make([]templates.PaletteStepView, 0, len(p.Steps)),
	}
	for _, st := range p.Steps {
		data.Steps = append(data.Steps, templates.PaletteStepView{
			Name:          st.Name,
			Hex:           st.Values.Hex,
			OKLCH:         st.Values.OKLCH,
			ContrastWhite: util.FormatContrast(st.Accessibility.ContrastWithWhite),
			ContrastBlack: util.FormatContrast(st.Accessibility.ContrastWithBlack),
			AANormal:      st.Accessibility.WCAGAANormal,
			AAA:           st.Accessibility.WCAGAAA,
			IsBase:        st.IsBaseColor,
		})
	}
	return data
}
