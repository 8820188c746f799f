package barchart

// SVG renderer on go-chart with a post-render annotation pass
// go-chart draws the bars, axes and title; value labels, axis titles and
// the caption are appended as text nodes before the closing tag

import (
	"bytes"
	"fmt"
	"strings"

	"popchart/internal/infra/fs"
	"popchart/internal/infra/log"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"go.uber.org/zap"
)

// Estimated go-chart canvas insets. The exact canvas box depends on tick
// label measurement inside go-chart, so the injected text positions are
// close rather than pixel-perfect.
const (
	svgCanvasTop    = 48.0
	svgCanvasBottom = 110.0
	svgCanvasLeft   = 60.0
	svgCanvasRight  = 20.0

	svgTitlePadding = 40
)

// RenderSVG renders the chart as an SVG document and saves it to path.
func RenderSVG(spec *Spec, path string) error {
	if len(spec.Bars) == 0 {
		return fmt.Errorf("chart has no bars")
	}

	axisMax := spec.AxisMax
	if axisMax <= 0 {
		axisMax = 1
	}

	nBars := len(spec.Bars)
	innerWidth := float64(spec.Width) - svgCanvasLeft - svgCanvasRight
	slotWidth := innerWidth / float64(nBars)
	barWidth := int(slotWidth * (1 - barGapRatio))
	barSpacing := int(slotWidth * barGapRatio)
	if barWidth < 1 {
		return fmt.Errorf("canvas %dx%d is too narrow for %d bars", spec.Width, spec.Height, nBars)
	}

	values := make([]chart.Value, 0, nBars)
	for i, bar := range spec.Bars {
		c := barColor(i, nBars)
		fill := drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
		values = append(values, chart.Value{
			Label: bar.Label,
			Value: float64(bar.Value),
			Style: chart.Style{
				FillColor:   fill,
				StrokeColor: fill,
			},
		})
	}

	ticks := make([]chart.Tick, 0, len(spec.Ticks))
	for _, t := range spec.Ticks {
		ticks = append(ticks, chart.Tick{Value: t.Value, Label: t.Label})
	}

	graph := chart.BarChart{
		Title:      spec.Title,
		Width:      spec.Width,
		Height:     spec.Height,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: svgTitlePadding},
		},
		XAxis: chart.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: axisMax},
			Ticks: ticks,
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	annotated, err := injectAnnotations(buf.String(), spec, axisMax)
	if err != nil {
		return err
	}

	if err := fs.SaveBytes(path, []byte(annotated)); err != nil {
		return err
	}
	if err := fs.VerifyArtifact(path); err != nil {
		return err
	}

	log.LogInfo("Bar chart SVG saved",
		zap.String("filename", path),
		zap.Int("bars", nBars))

	return nil
}

// injectAnnotations appends value labels, axis titles and the caption to
// the rendered document, using the same slot math that sized the bars.
func injectAnnotations(svg string, spec *Spec, axisMax float64) (string, error) {
	idx := strings.LastIndex(svg, "</svg>")
	if idx < 0 {
		return "", fmt.Errorf("renderer produced no closing svg tag")
	}

	width := float64(spec.Width)
	height := float64(spec.Height)
	plotTop := svgCanvasTop
	plotBottom := height - svgCanvasBottom
	plotHeight := plotBottom - plotTop

	nBars := len(spec.Bars)
	innerWidth := width - svgCanvasLeft - svgCanvasRight
	slotWidth := innerWidth / float64(nBars)
	gapPx := (spec.LabelGap / axisMax) * plotHeight

	var extra strings.Builder
	extra.WriteString("<g class=\"annotations\">\n")

	for i, bar := range spec.Bars {
		centerX := svgCanvasLeft + slotWidth*(float64(i)+0.5)
		barTop := plotBottom - (float64(bar.Value)/axisMax)*plotHeight
		y := barTop - gapPx
		if y < 12 {
			y = 12
		}
		fmt.Fprintf(&extra,
			"<text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" font-size=\"12\" font-family=\"sans-serif\" fill=\"#333333\">%s</text>\n",
			centerX, y, escapeXML(bar.Annotation))
	}

	fmt.Fprintf(&extra,
		"<text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" font-size=\"15\" font-family=\"sans-serif\" fill=\"#000000\">%s</text>\n",
		width/2, height-30.0, escapeXML(spec.XLabel))
	yTitleCenter := (plotTop + plotBottom) / 2
	fmt.Fprintf(&extra,
		"<text x=\"14\" y=\"%.1f\" transform=\"rotate(-90 14 %.1f)\" text-anchor=\"middle\" font-size=\"15\" font-family=\"sans-serif\" fill=\"#000000\">%s</text>\n",
		yTitleCenter, yTitleCenter, escapeXML(spec.YLabel))

	fmt.Fprintf(&extra,
		"<text x=\"%.1f\" y=\"%.1f\" text-anchor=\"middle\" font-size=\"11\" font-style=\"italic\" font-family=\"sans-serif\" fill=\"#555555\">%s</text>\n",
		width/2, height-8.0, escapeXML(spec.Caption))

	extra.WriteString("</g>\n")

	return svg[:idx] + extra.String() + svg[idx:], nil
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
)

func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
