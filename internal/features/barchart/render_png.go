package barchart

// PNG renderer on a gg canvas
// Plot geometry derives from the canvas size and the margin constants
// below; everything data dependent comes from the Spec

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"popchart/internal/infra/fs"
	"popchart/internal/infra/log"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

const (
	marginTop    = 80.0
	marginRight  = 40.0
	marginBottom = 170.0
	marginLeft   = 120.0

	titleFontSize     = 24.0
	axisLabelFontSize = 16.0
	tickFontSize      = 13.0
	barValueFontSize  = 12.0
	captionFontSize   = 11.0

	barGapRatio   = 0.25 // share of a bar slot left empty
	xLabelAngle   = 45.0 // country labels slope up to the right
	tickPadding   = 8.0
	xLabelPadding = 16.0

	yAxisTitleX    = 34.0
	xAxisTitleRise = 46.0 // x axis title baseline, up from the bottom edge
	captionRise    = 14.0 // caption baseline, up from the bottom edge
)

var fontPaths = []string{
	"etc/fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"~/.fonts/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
}

// chartFont remembers which font file loaded so the size can be changed
// mid-render. When no file is found the context keeps its built-in face
// and setSize is a no-op.
type chartFont struct {
	dc     *gg.Context
	path   string
	loaded bool
}

func loadChartFont(dc *gg.Context) *chartFont {
	cf := &chartFont{dc: dc}
	for _, fontPath := range fontPaths {
		expanded := expandPath(fontPath)
		if _, err := os.Stat(expanded); err != nil {
			continue
		}
		if err := dc.LoadFontFace(expanded, titleFontSize); err == nil {
			cf.path = expanded
			cf.loaded = true
			log.LogDebug("Loaded chart font", zap.String("path", expanded))
			break
		}
		log.LogWarn("Font file exists but failed to load", zap.String("path", expanded))
	}
	if !cf.loaded {
		log.LogWarn("No usable font file found, using built-in face",
			zap.Int("paths_checked", len(fontPaths)))
	}
	return cf
}

func (f *chartFont) setSize(size float64) {
	if f.loaded {
		f.dc.LoadFontFace(f.path, size)
	}
}

func expandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// RenderPNG draws the chart and saves it to path.
func RenderPNG(spec *Spec, path string) error {
	if len(spec.Bars) == 0 {
		return fmt.Errorf("chart has no bars")
	}

	width := float64(spec.Width)
	height := float64(spec.Height)
	plotLeft := marginLeft
	plotRight := width - marginRight
	plotTop := marginTop
	plotBottom := height - marginBottom
	if plotRight-plotLeft < 100 || plotBottom-plotTop < 100 {
		return fmt.Errorf("canvas %dx%d is too small to draw on", spec.Width, spec.Height)
	}
	plotWidth := plotRight - plotLeft
	plotHeight := plotBottom - plotTop

	axisMax := spec.AxisMax
	if axisMax <= 0 {
		axisMax = 1
	}

	dc := gg.NewContext(spec.Width, spec.Height)
	dc.SetColor(color.White)
	dc.Clear()

	font := loadChartFont(dc)

	font.setSize(titleFontSize)
	dc.SetColor(color.Black)
	titleWidth, _ := dc.MeasureString(spec.Title)
	dc.DrawString(spec.Title, (width-titleWidth)/2, marginTop/2+titleFontSize/3)

	// horizontal grid with tick labels on the left
	font.setSize(tickFontSize)
	for _, tick := range spec.Ticks {
		y := plotBottom - (tick.Value/axisMax)*plotHeight
		if y < plotTop-0.5 || y > plotBottom+0.5 {
			continue
		}
		dc.SetColor(color.RGBA{R: 225, G: 225, B: 225, A: 255})
		dc.SetLineWidth(1)
		dc.DrawLine(plotLeft, y, plotRight, y)
		dc.Stroke()

		dc.SetColor(color.RGBA{R: 70, G: 70, B: 70, A: 255})
		labelWidth, _ := dc.MeasureString(tick.Label)
		dc.DrawString(tick.Label, plotLeft-tickPadding-labelWidth, y+tickFontSize/3)
	}

	nBars := len(spec.Bars)
	slotWidth := plotWidth / float64(nBars)
	barWidth := slotWidth * (1 - barGapRatio)
	gapPx := (spec.LabelGap / axisMax) * plotHeight

	for i, bar := range spec.Bars {
		barX := plotLeft + float64(i)*slotWidth + (slotWidth-barWidth)/2
		barHeight := (float64(bar.Value) / axisMax) * plotHeight
		barY := plotBottom - barHeight

		dc.SetColor(barColor(i, nBars))
		dc.DrawRectangle(barX, barY, barWidth, barHeight)
		dc.Fill()

		font.setSize(barValueFontSize)
		dc.SetColor(color.Black)
		valueWidth, _ := dc.MeasureString(bar.Annotation)
		dc.DrawString(bar.Annotation, barX+(barWidth-valueWidth)/2, barY-gapPx)

		// country label rotated below the axis, its right end at the bar center
		font.setSize(tickFontSize)
		dc.SetColor(color.RGBA{R: 40, G: 40, B: 40, A: 255})
		labelAnchorX := barX + barWidth/2
		labelAnchorY := plotBottom + xLabelPadding
		labelWidth, _ := dc.MeasureString(bar.Label)
		dc.Push()
		dc.RotateAbout(gg.Radians(-xLabelAngle), labelAnchorX, labelAnchorY)
		dc.DrawString(bar.Label, labelAnchorX-labelWidth, labelAnchorY)
		dc.Pop()
	}

	font.setSize(axisLabelFontSize)
	dc.SetColor(color.Black)
	xTitleWidth, _ := dc.MeasureString(spec.XLabel)
	dc.DrawString(spec.XLabel, (width-xTitleWidth)/2, height-xAxisTitleRise)

	yTitleWidth, _ := dc.MeasureString(spec.YLabel)
	yCenter := (plotTop + plotBottom) / 2
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), yAxisTitleX, yCenter)
	dc.DrawString(spec.YLabel, yAxisTitleX-yTitleWidth/2, yCenter+axisLabelFontSize/3)
	dc.Pop()

	font.setSize(captionFontSize)
	dc.SetColor(color.RGBA{R: 90, G: 90, B: 90, A: 255})
	captionWidth, _ := dc.MeasureString(spec.Caption)
	dc.DrawString(spec.Caption, (width-captionWidth)/2, height-captionRise)

	if err := fs.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save chart: %w", err)
	}
	if err := fs.VerifyArtifact(path); err != nil {
		os.Remove(path)
		log.LogError("Chart file invalid after rendering", zap.String("filename", path))
		return err
	}

	log.LogInfo("Bar chart PNG saved",
		zap.String("filename", path),
		zap.Int("bars", nBars))

	return nil
}
