package report

// CSV export of a selection

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"popchart/internal/infra/fs"
	logging "popchart/internal/infra/log"

	"go.uber.org/zap"
)

// WriteCSV exports the selection grid to path: one header row with the
// country column and every year, then one row per ranked country. The
// file is assembled in memory and written in one piece.
func WriteCSV(s *Selection, path string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(s.GridHeader()); err != nil {
		return fmt.Errorf("failed to encode CSV header: %w", err)
	}
	for _, row := range s.GridRows() {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to encode CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to encode CSV: %w", err)
	}

	if err := fs.SaveBytes(path, buf.Bytes()); err != nil {
		return err
	}
	if err := fs.VerifyArtifact(path); err != nil {
		return err
	}

	logging.LogInfo("CSV report saved",
		zap.String("path", path),
		zap.Int("rows", len(s.Entries)),
		zap.String("year", s.Year))
	return nil
}
