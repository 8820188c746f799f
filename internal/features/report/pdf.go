package report

// PDF report of a selection: title, timestamp, ranking table and the
// rendered chart image on one A4 page

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"popchart/internal/infra/fs"
	logging "popchart/internal/infra/log"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// Column widths in millimeters, aligned with TableHeader.
var pdfColWidths = []float64{16, 74, 56, 24}

// WritePDF exports the selection as a one-page A4 report. chartPNG names
// an already rendered chart image to embed below the table; pass "" to
// produce a table-only report.
func WritePDF(s *Selection, chartPNG, path string) error {
	if chartPNG != "" {
		if _, err := os.Stat(chartPNG); err != nil {
			return fmt.Errorf("chart image to embed not found: %w", err)
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Top %d Countries by Population (%s)", s.TopN, s.Year), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(110, 110, 110)
	pdf.CellFormat(0, 6, "Generated "+time.Now().Format("2006-01-02 15:04 MST"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range s.TableHeader() {
		pdf.CellFormat(pdfColWidths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	aligns := []string{"C", "L", "R", "R"}
	for _, row := range s.TableRows() {
		for i, cell := range row {
			pdf.CellFormat(pdfColWidths[i], 7, cell, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	if chartPNG != "" {
		pdf.Ln(6)
		pageW, pageH := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		imgW := pageW - left - right

		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		info := pdf.RegisterImageOptions(chartPNG, opts)
		if info != nil && info.Width() > 0 {
			imgH := imgW * info.Height() / info.Width()
			if pdf.GetY()+imgH > pageH-20 {
				pdf.AddPage()
			}
		}
		pdf.ImageOptions(chartPNG, left, pdf.GetY(), imgW, 0, false, opts, 0, "")
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetY(-15)
	pdf.CellFormat(0, 5, "Data source: World Bank - Total Population Indicator", "", 0, "C", false, 0, "")

	if err := fs.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to save PDF %s: %w", path, err)
	}
	if err := fs.VerifyArtifact(path); err != nil {
		return err
	}

	logging.LogInfo("PDF report saved",
		zap.String("path", path),
		zap.Int("rows", len(s.Entries)),
		zap.String("chart", chartPNG))
	return nil
}
