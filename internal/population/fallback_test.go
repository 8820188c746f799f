package population

import "testing"

func TestFallbackTableShape(t *testing.T) {
	tbl := FallbackTable()

	if tbl.Rows() != 15 {
		t.Fatalf("rows = %d, want 15", tbl.Rows())
	}
	for _, year := range []string{"2010", "2015", "2020"} {
		if !tbl.HasYear(year) {
			t.Errorf("missing year column %s", year)
		}
	}
	if tbl.HasYear("2021") {
		t.Errorf("unexpected year column 2021")
	}
}

func TestFallbackTableKnownValues(t *testing.T) {
	tbl := FallbackTable()

	cases := []struct {
		country string
		year    string
		want    int64
	}{
		{"China", "2020", 1410929362},
		{"India", "2010", 1230984504},
		{"Vietnam", "2015", 92677076},
		{"Japan", "2020", 125836021},
	}
	for _, c := range cases {
		got, ok := tbl.Value(c.country, c.year)
		if !ok {
			t.Errorf("Value(%s, %s) missing", c.country, c.year)
			continue
		}
		if got != c.want {
			t.Errorf("Value(%s, %s) = %d, want %d", c.country, c.year, got, c.want)
		}
	}
}

func TestFallbackTopFiveFor2020(t *testing.T) {
	entries, err := FallbackTable().TopN("2020", 5)
	if err != nil {
		t.Fatalf("TopN failed: %v", err)
	}
	want := []string{"China", "India", "United States", "Indonesia", "Pakistan"}
	for i, name := range want {
		if entries[i].Country != name {
			t.Errorf("rank %d = %q, want %q", i+1, entries[i].Country, name)
		}
	}
}

func TestFallbackTableFreshPerCall(t *testing.T) {
	a := FallbackTable()
	b := FallbackTable()
	if a == b {
		t.Fatalf("FallbackTable returned a shared instance")
	}
}
