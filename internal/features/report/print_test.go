package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderTable(t *testing.T) {
	s, err := NewSelection(testTable(t), "2020", 3)
	if err != nil {
		t.Fatalf("NewSelection failed: %v", err)
	}

	var buf bytes.Buffer
	RenderTable(&buf, s)
	out := buf.String()

	if !strings.Contains(strings.ToUpper(out), "RANK") || !strings.Contains(strings.ToUpper(out), "COUNTRY") {
		t.Errorf("table misses header columns:\n%s", out)
	}
	for _, want := range []string{"China", "India", "United States", "1410929362", "1.4B", "329.5M"} {
		if !strings.Contains(out, want) {
			t.Errorf("table misses %q:\n%s", want, out)
		}
	}
}
