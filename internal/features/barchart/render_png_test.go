package barchart

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderPNGWritesFile(t *testing.T) {
	spec, err := Build(Request{Entries: sampleEntries(), Year: "2020", TopN: 3, Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := RenderPNG(spec, path); err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("image is %dx%d, want 640x480", cfg.Width, cfg.Height)
	}
}

func TestRenderPNGCreatesParentDir(t *testing.T) {
	spec, err := Build(Request{Entries: sampleEntries(), Year: "2020", TopN: 3, Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "charts", "nested", "out.png")
	if err := RenderPNG(spec, path); err != nil {
		t.Fatalf("RenderPNG failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output missing: %v", err)
	}
}

func TestRenderPNGRejectsTinyCanvas(t *testing.T) {
	spec, err := Build(Request{Entries: sampleEntries(), Year: "2020", TopN: 3, Width: 150, Height: 150})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := RenderPNG(spec, path); err == nil {
		t.Fatalf("RenderPNG accepted a canvas with no plot area")
	}
	if _, err := os.Stat(path); err == nil {
		t.Errorf("file was written despite the error")
	}
}

func TestRenderPNGRejectsEmptySpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := RenderPNG(&Spec{Width: 640, Height: 480}, path); err == nil {
		t.Fatalf("RenderPNG accepted a spec with no bars")
	}
}
