package barchart

// Declarative chart building
// Build turns selected rows into a render-neutral Spec that the PNG and
// SVG renderers draw the same way

import (
	"fmt"

	"popchart/internal/population"
)

const (
	// DefaultWidth and DefaultHeight match a 12x8 inch figure at 100 DPI.
	DefaultWidth  = 1200
	DefaultHeight = 800

	annotationGapRatio = 0.02 // annotation offset above a bar, share of the tallest value
	yTickTarget        = 6    // preferred Y axis tick count
)

// Request describes the chart to build. Entries must already be ordered
// the way they should appear left to right.
type Request struct {
	Entries []population.Entry
	Year    string
	TopN    int // requested count, used in the title even when clipped
	Width   int
	Height  int
}

// Bar is one column of the chart.
type Bar struct {
	Label      string
	Value      int64
	Annotation string
}

// Tick is one Y axis mark.
type Tick struct {
	Value float64
	Label string
}

// Spec is the full chart description. Everything data dependent lives
// here; the renderers only contribute geometry and styling.
type Spec struct {
	Title    string
	XLabel   string
	YLabel   string
	Caption  string
	Bars     []Bar
	MaxValue int64
	AxisMax  float64
	LabelGap float64 // annotation offset in value units
	Ticks    []Tick
	Width    int
	Height   int
}

// Build validates the request and assembles the chart description.
func Build(req Request) (*Spec, error) {
	if len(req.Entries) == 0 {
		return nil, fmt.Errorf("no entries to chart")
	}
	if req.TopN <= 0 {
		return nil, fmt.Errorf("top-n must be positive, got %d", req.TopN)
	}
	if req.Year == "" {
		return nil, fmt.Errorf("year must not be empty")
	}

	width := req.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := req.Height
	if height <= 0 {
		height = DefaultHeight
	}

	var maxValue int64
	for _, e := range req.Entries {
		if e.Population > maxValue {
			maxValue = e.Population
		}
	}

	bars := make([]Bar, 0, len(req.Entries))
	for _, e := range req.Entries {
		bars = append(bars, Bar{
			Label:      e.Country,
			Value:      e.Population,
			Annotation: population.Format(e.Population),
		})
	}

	ticks := niceTicks(float64(maxValue), yTickTarget)
	axisMax := ticks[len(ticks)-1].Value
	if axisMax < float64(maxValue) {
		axisMax = float64(maxValue)
	}

	return &Spec{
		Title:    fmt.Sprintf("Top %d Countries by Population (%s)", req.TopN, req.Year),
		XLabel:   "Country",
		YLabel:   "Population",
		Caption:  "Data source: World Bank - Total Population Indicator",
		Bars:     bars,
		MaxValue: maxValue,
		AxisMax:  axisMax,
		LabelGap: float64(maxValue) * annotationGapRatio,
		Ticks:    ticks,
		Width:    width,
		Height:   height,
	}, nil
}

// Filename is the canonical artifact name for a top-N selection.
// The chart image and the tabular exports share this pattern and differ
// only in the extension.
func Filename(topN int, year, format string) string {
	return fmt.Sprintf("population_top%d_%s.%s", topN, year, format)
}
