package commands

// Table command: print the ranked selection as an ASCII table

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"popchart/internal/features/report"

	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the ranked population table",
	Long:  `Fetch the population dataset and print the top countries for the configured year as a table.`,
	RunE:  runTable,
}

func runTable(cmd *cobra.Command, args []string) error {
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

	report.RenderTable(os.Stdout, selection)
	return nil
}
