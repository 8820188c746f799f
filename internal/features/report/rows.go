package report

// Ranked population tables for the terminal and for file exports
// One Selection feeds the stdout view and the CSV, XLSX and PDF writers
// so every surface shows identical numbers

import (
	"fmt"
	"strconv"

	"popchart/internal/population"
)

// Selection is one ranked view of a population table: the top countries
// for a single year, plus access to their values for every year column.
type Selection struct {
	Year    string
	TopN    int
	Years   []string
	Entries []population.Entry

	table *population.Table
}

// NewSelection ranks the table for the given year. Unknown years and
// non-positive counts are reported as errors before anything is written.
func NewSelection(table *population.Table, year string, topN int) (*Selection, error) {
	entries, err := table.TopN(year, topN)
	if err != nil {
		return nil, err
	}
	return &Selection{
		Year:    year,
		TopN:    topN,
		Years:   table.Years(),
		Entries: entries,
		table:   table,
	}, nil
}

// TableHeader labels the columns of the terminal and PDF views.
func (s *Selection) TableHeader() []string {
	return []string{"Rank", "Country", fmt.Sprintf("Population (%s)", s.Year), "Short"}
}

// TableRows renders the ranked entries, one row per country, with the
// exact count and its compact form side by side.
func (s *Selection) TableRows() [][]string {
	rows := make([][]string, 0, len(s.Entries))
	for i, e := range s.Entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			e.Country,
			strconv.FormatInt(e.Population, 10),
			population.Format(e.Population),
		})
	}
	return rows
}

// GridHeader labels the export grid: country plus every year column.
func (s *Selection) GridHeader() []string {
	header := make([]string, 0, len(s.Years)+1)
	header = append(header, "Country")
	header = append(header, s.Years...)
	return header
}

// GridRows renders one export row per ranked country carrying its value
// for every year column, not only the ranked one.
func (s *Selection) GridRows() [][]string {
	rows := make([][]string, 0, len(s.Entries))
	for _, e := range s.Entries {
		row := make([]string, 0, len(s.Years)+1)
		row = append(row, e.Country)
		for _, v := range s.gridValues(e.Country) {
			row = append(row, strconv.FormatInt(v, 10))
		}
		rows = append(rows, row)
	}
	return rows
}

// gridValues returns a ranked country's values aligned with Years.
func (s *Selection) gridValues(country string) []int64 {
	values, ok := s.table.YearValues(country)
	if !ok {
		return make([]int64, len(s.Years))
	}
	return values
}
