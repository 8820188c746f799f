package report

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 120, 80))); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestWritePDF(t *testing.T) {
	s, err := NewSelection(testTable(t), "2020", 3)
	if err != nil {
		t.Fatalf("NewSelection failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "population_top3_2020.pdf")
	if err := WritePDF(s, writeTestPNG(t), path); err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("export does not start with a PDF header")
	}
}

func TestWritePDFWithoutChart(t *testing.T) {
	s, err := NewSelection(testTable(t), "2015", 2)
	if err != nil {
		t.Fatalf("NewSelection failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "table_only.pdf")
	if err := WritePDF(s, "", path); err != nil {
		t.Fatalf("WritePDF without a chart failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("expected a non-empty report, got info=%v err=%v", info, err)
	}
}

func TestWritePDFMissingChart(t *testing.T) {
	s, err := NewSelection(testTable(t), "2020", 1)
	if err != nil {
		t.Fatalf("NewSelection failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := WritePDF(s, filepath.Join(t.TempDir(), "absent.png"), path); err == nil {
		t.Fatal("expected an error for a missing chart image")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("no report should be written on failure, stat: %v", statErr)
	}
}
