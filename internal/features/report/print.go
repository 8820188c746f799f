package report

// ASCII table view of a selection

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// RenderTable draws the ranked selection as an ASCII table. The chart
// command points w at stdout; tests capture a buffer.
func RenderTable(w io.Writer, s *Selection) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(s.TableHeader())
	for _, row := range s.TableRows() {
		output.Append(row)
	}
	output.Render()
}
