package commands

// Export command: write the ranked selection as CSV, XLSX or PDF
// The PDF variant embeds a freshly rendered PNG chart

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"popchart/internal/features/barchart"
	"popchart/internal/features/report"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export {csv|xlsx|pdf}",
	Short: "Export the ranked population table to a file",
	Long: `Fetch the population dataset and write the top countries for the configured
year to a CSV or XLSX grid, or to a PDF report with the chart embedded.`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"csv", "xlsx", "pdf"},
	RunE:      runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	format := args[0]

	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result := fetchDataset(ctx, cfg)

	selection, err := report.NewSelection(result.Table, cfg.Chart.Year, cfg.Chart.TopN)
	if err != nil {
		return err
	}

	path := filepath.Join(cfg.Chart.OutputDir, barchart.Filename(cfg.Chart.TopN, cfg.Chart.Year, format))
	switch format {
	case "csv":
		err = report.WriteCSV(selection, path)
	case "xlsx":
		err = report.WriteXLSX(selection, path)
	case "pdf":
		// PDF embedding needs a raster image, whatever chart.format says
		chartPath, renderErr := renderChart(cfg, result.Table, "png")
		if renderErr != nil {
			return renderErr
		}
		err = report.WritePDF(selection, chartPath, path)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Export saved as '%s'\n", path)
	return nil
}
