package report

// XLSX export of a selection

import (
	"fmt"
	"path/filepath"

	"popchart/internal/infra/fs"
	logging "popchart/internal/infra/log"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const xlsxSheet = "Population"

// WriteXLSX exports the selection grid to a single-sheet workbook with a
// bold header row. Population cells are written as numbers so the sheet
// sorts and sums without conversion.
func WriteXLSX(s *Selection, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	for i, header := range s.GridHeader() {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to address column %d: %w", i+1, err)
		}
		if err := f.SetCellValue(xlsxSheet, col+"1", header); err != nil {
			return fmt.Errorf("failed to write header cell %s1: %w", col, err)
		}
		if err := f.SetColWidth(xlsxSheet, col, col, 18); err != nil {
			return fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to build header style: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(s.GridHeader()), 1)
	if err != nil {
		return fmt.Errorf("failed to address header range: %w", err)
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", lastHeader, boldStyle); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	for i, e := range s.Entries {
		row := i + 2
		if err := f.SetCellValue(xlsxSheet, fmt.Sprintf("A%d", row), e.Country); err != nil {
			return fmt.Errorf("failed to write country row %d: %w", row, err)
		}
		for j, v := range s.gridValues(e.Country) {
			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return fmt.Errorf("failed to address value cell: %w", err)
			}
			if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return fmt.Errorf("failed to write value cell %s: %w", cell, err)
			}
		}
	}

	if err := fs.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	if err := fs.VerifyArtifact(path); err != nil {
		return err
	}

	logging.LogInfo("XLSX report saved",
		zap.String("path", path),
		zap.Int("rows", len(s.Entries)),
		zap.String("year", s.Year))
	return nil
}
