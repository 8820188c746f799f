package worldbank

// Population dataset resolution
// Parses the indicator CSV into a population.Table and wraps the
// fetch-or-fallback policy into a tagged Result

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"popchart/internal/infra/log"
	"popchart/internal/population"

	"go.uber.org/zap"
)

// Source tags where a dataset came from.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Result is the outcome of a dataset fetch. Table is always set and
// usable. When Source is SourceFallback, Reason carries the live failure
// that triggered the switch (nil when live data was never requested).
type Result struct {
	Table  *population.Table
	Source Source
	Reason error
}

// Provider resolves the dataset for a run: one live download attempt when
// preferLive is set, the injected fallback otherwise.
type Provider struct {
	client     *Client
	fallback   func() *population.Table
	preferLive bool
}

// NewProvider wires a provider. fallback must not be nil; client may be
// nil when live data is never wanted.
func NewProvider(client *Client, fallback func() *population.Table, preferLive bool) *Provider {
	return &Provider{
		client:     client,
		fallback:   fallback,
		preferLive: preferLive,
	}
}

// FetchPopulation never fails: any live problem (network, HTTP status,
// malformed CSV) degrades to the fallback table with the cause recorded
// in Reason.
func (p *Provider) FetchPopulation(ctx context.Context) *Result {
	if !p.preferLive || p.client == nil {
		return &Result{Table: p.fallback(), Source: SourceFallback}
	}

	table, err := p.fetchLive(ctx)
	if err != nil {
		log.LogWarn("Live World Bank data unavailable, using bundled dataset", zap.Error(err))
		return &Result{Table: p.fallback(), Source: SourceFallback, Reason: err}
	}

	return &Result{Table: table, Source: SourceLive}
}

func (p *Provider) fetchLive(ctx context.Context) (*population.Table, error) {
	data, err := p.client.FetchCSV(ctx)
	if err != nil {
		return nil, err
	}

	table, err := ParsePopulationCSV(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse indicator CSV: %w", err)
	}
	return table, nil
}

// ParsePopulationCSV turns a World Bank indicator CSV into a table.
// The file starts with a few metadata lines; the real header is the row
// containing "Country Name" followed by four-digit year columns. Empty
// value cells count as zero, anything non-numeric is an error.
func ParsePopulationCSV(data []byte) (*population.Table, error) {
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}

	headerIdx, countryCol := findHeader(records)
	if headerIdx < 0 {
		return nil, fmt.Errorf("no header row with a Country Name column")
	}

	header := records[headerIdx]
	var years []string
	var yearCols []int
	for col, cell := range header {
		label := cleanCell(cell)
		if isYearLabel(label) {
			years = append(years, label)
			yearCols = append(yearCols, col)
		}
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("header row has no year columns")
	}

	var countries []string
	var values [][]int64
	for _, record := range records[headerIdx+1:] {
		if countryCol >= len(record) {
			continue
		}
		country := cleanCell(record[countryCol])
		if country == "" {
			continue
		}

		row := make([]int64, len(yearCols))
		for i, col := range yearCols {
			cell := ""
			if col < len(record) {
				cell = cleanCell(record[col])
			}
			if cell == "" {
				continue // missing observation counts as zero
			}
			f, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("country %q has invalid value %q for year %s", country, cell, years[i])
			}
			row[i] = int64(math.Round(f))
		}

		countries = append(countries, country)
		values = append(values, row)
	}

	if len(countries) == 0 {
		return nil, fmt.Errorf("no data rows after header")
	}

	table, err := population.NewTable(years, countries, values)
	if err != nil {
		return nil, err
	}
	return table, nil
}

// findHeader locates the header row and the Country Name column.
func findHeader(records [][]string) (rowIdx, countryCol int) {
	for i, record := range records {
		for col, cell := range record {
			if cleanCell(cell) == "Country Name" {
				return i, col
			}
		}
	}
	return -1, -1
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.TrimPrefix(s, "\uFEFF"))
}

func isYearLabel(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
