package report

import (
	"errors"
	"testing"

	"popchart/internal/population"
)

func testTable(t *testing.T) *population.Table {
	t.Helper()
	table, err := population.NewTable(
		[]string{"2010", "2015", "2020"},
		[]string{"China", "India", "United States"},
		[][]int64{
			{1337705000, 1406847870, 1410929362},
			{1234281170, 1322866505, 1380004385},
			{309321666, 320738994, 329484123},
		},
	)
	if err != nil {
		t.Fatalf("failed to build table: %v", err)
	}
	return table
}

func TestNewSelection(t *testing.T) {
	s, err := NewSelection(testTable(t), "2020", 2)
	if err != nil {
		t.Fatalf("NewSelection failed: %v", err)
	}

	if s.Year != "2020" || s.TopN != 2 {
		t.Errorf("selection = year %q top %d", s.Year, s.TopN)
	}
	if len(s.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(s.Entries))
	}
	if s.Entries[0].Country != "China" || s.Entries[1].Country != "India" {
		t.Errorf("ranking = %q, %q", s.Entries[0].Country, s.Entries[1].Country)
	}
	if len(s.Years) != 3 || s.Years[0] != "2010" || s.Years[2] != "2020" {
		t.Errorf("years = %v", s.Years)
	}
}

func TestNewSelectionUnknownYear(t *testing.T) {
	_, err := NewSelection(testTable(t), "1990", 3)
	if err == nil {
		t.Fatal("expected an error for an unknown year")
	}
	var yearErr *population.YearError
	if !errors.As(err, &yearErr) {
		t.Fatalf("error type = %T: %v", err, err)
	}
	if yearErr.Year != "1990" {
		t.Errorf("reported year = %q", yearErr.Year)
	}
}

func TestNewSelectionBadCount(t *testing.T) {
	if _, err := NewSelection(testTable(t), "2020", 0); err == nil {
		t.Error("expected an error for top 0")
	}
	if _, err := NewSelection(testTable(t), "2020", -4); err == nil {
		t.Error("expected an error for a negative top")
	}
}

func TestTableRows(t *testing.T) {
	s, err := NewSelection(testTable(t), "2020", 3)
	if err != nil {
		t.Fatalf("NewSelection failed: %v", err)
	}

	header := s.TableHeader()
	if len(header) != 4 || header[2] != "Population (2020)" {
		t.Errorf("header = %v", header)
	}

	rows := s.TableRows()
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	want := []string{"1", "China", "1410929362", "1.4B"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[2][0] != "3" || rows[2][1] != "United States" || rows[2][3] != "329.5M" {
		t.Errorf("row 2 = %v", rows[2])
	}
}

func TestGridRows(t *testing.T) {
	s, err := NewSelection(testTable(t), "2020", 2)
	if err != nil {
		t.Fatalf("NewSelection failed: %v", err)
	}

	header := s.GridHeader()
	if len(header) != 4 || header[0] != "Country" || header[3] != "2020" {
		t.Errorf("grid header = %v", header)
	}

	rows := s.GridRows()
	if len(rows) != 2 {
		t.Fatalf("grid rows = %d, want 2", len(rows))
	}
	want := []string{"China", "1337705000", "1406847870", "1410929362"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("grid row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
}
