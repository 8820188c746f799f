package population

// Country-by-year population dataset
// Table is built once (from a live fetch or the bundled fallback),
// validated at construction and read-only afterwards

import (
	"fmt"
	"sort"
	"strings"
)

// Table holds one row per country and one column per year.
// Year columns are labeled by their text form ("2020"), values are
// non-negative totals. Instances are immutable after NewTable.
type Table struct {
	years     []string
	countries []string
	values    [][]int64 // values[row][col], aligned with countries/years
	rowIndex  map[string]int
}

// Entry is a single selected row: a country and its population for the
// requested year.
type Entry struct {
	Country    string
	Population int64
}

// YearError reports a requested year column that does not exist in the
// table. It is a configuration error: callers fail fast instead of
// substituting another column.
type YearError struct {
	Year  string
	Years []string
}

func (e *YearError) Error() string {
	return fmt.Sprintf("year column %q not found (available: %s)", e.Year, strings.Join(e.Years, ", "))
}

// NewTable validates and assembles a population table.
// Countries must be unique and non-empty, every row must carry one value
// per year column, and all values must be non-negative.
func NewTable(years []string, countries []string, values [][]int64) (*Table, error) {
	if len(years) == 0 {
		return nil, fmt.Errorf("table needs at least one year column")
	}
	seenYears := make(map[string]struct{}, len(years))
	for _, y := range years {
		if strings.TrimSpace(y) == "" {
			return nil, fmt.Errorf("empty year column label")
		}
		if _, dup := seenYears[y]; dup {
			return nil, fmt.Errorf("duplicate year column %q", y)
		}
		seenYears[y] = struct{}{}
	}

	if len(countries) == 0 {
		return nil, fmt.Errorf("table has no rows")
	}
	if len(countries) != len(values) {
		return nil, fmt.Errorf("row count mismatch: %d countries, %d value rows", len(countries), len(values))
	}

	rowIndex := make(map[string]int, len(countries))
	for i, name := range countries {
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("row %d has an empty country name", i)
		}
		if _, dup := rowIndex[name]; dup {
			return nil, fmt.Errorf("duplicate country %q", name)
		}
		rowIndex[name] = i

		if len(values[i]) != len(years) {
			return nil, fmt.Errorf("country %q has %d values for %d year columns", name, len(values[i]), len(years))
		}
		for j, v := range values[i] {
			if v < 0 {
				return nil, fmt.Errorf("country %q has negative value %d for year %s", name, v, years[j])
			}
		}
	}

	t := &Table{
		years:     append([]string(nil), years...),
		countries: append([]string(nil), countries...),
		values:    make([][]int64, len(values)),
		rowIndex:  rowIndex,
	}
	for i, row := range values {
		t.values[i] = append([]int64(nil), row...)
	}
	return t, nil
}

// Years returns the year column labels in table order.
func (t *Table) Years() []string {
	return append([]string(nil), t.years...)
}

// Countries returns the country names in table order.
func (t *Table) Countries() []string {
	return append([]string(nil), t.countries...)
}

// Rows returns the number of countries in the table.
func (t *Table) Rows() int {
	return len(t.countries)
}

// HasYear reports whether the table carries a column for the given year.
func (t *Table) HasYear(year string) bool {
	return t.yearColumn(year) >= 0
}

// Value returns the population of a country for a year.
func (t *Table) Value(country, year string) (int64, bool) {
	row, ok := t.rowIndex[country]
	if !ok {
		return 0, false
	}
	col := t.yearColumn(year)
	if col < 0 {
		return 0, false
	}
	return t.values[row][col], true
}

// YearValues returns a country's values aligned with Years().
func (t *Table) YearValues(country string) ([]int64, bool) {
	row, ok := t.rowIndex[country]
	if !ok {
		return nil, false
	}
	return append([]int64(nil), t.values[row]...), true
}

// TopN selects the n largest rows for the given year, sorted descending.
// Rows with equal values keep their original table order. n larger than
// the row count is clipped; the requested year must exist (YearError
// otherwise) and n must be positive.
func (t *Table) TopN(year string, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("top-n must be positive, got %d", n)
	}
	col := t.yearColumn(year)
	if col < 0 {
		return nil, &YearError{Year: year, Years: t.Years()}
	}

	order := make([]int, len(t.countries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return t.values[order[a]][col] > t.values[order[b]][col]
	})

	if n > len(order) {
		n = len(order)
	}
	entries := make([]Entry, 0, n)
	for _, row := range order[:n] {
		entries = append(entries, Entry{Country: t.countries[row], Population: t.values[row][col]})
	}
	return entries, nil
}

func (t *Table) yearColumn(year string) int {
	for i, y := range t.years {
		if y == year {
			return i
		}
	}
	return -1
}
