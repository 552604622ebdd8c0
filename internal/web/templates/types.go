package templates

type OverviewData struct {
	BrandCount   int
	PaletteCount int
	CoreCount    int
	Recent       []PaletteSummary
}

type PaletteSummary struct {
	ID         string
	Name       string
	BaseHex    string
	StepCount  int
	Accessible int
	IsCore     bool
	CreatedAt  string
}

type ScaleStepView struct {
	Label string
	Size  string // formatted with unit, e.g. "1.25rem"
	Px    string // raw px value for the inline preview style
	Ratio string
}

type ScalePageData struct {
	BaseSize string
	Ratio    string
	Unit     string
	RawQuery string // propagated to export links so they match the preview
	Steps    []ScaleStepView
}

type PaletteStepView struct {
	Name          string
	Hex           string
	OKLCH         string
	ContrastWhite string
	ContrastBlack string
	AANormal      bool
	AAA           bool
	IsBase        bool
}

type PaletteDetailData struct {
	ID        string
	Name      string
	BaseHex   string
	IsCore    bool
	CreatedAt string
	Steps     []PaletteStepView
}
