package commands

// Root command for Cobra CLI
// Defines the main command structure of the application
// Registers all subcommands (chart, table, export, share)
// Running popchart with no subcommand renders the chart

import (
	"popchart/internal/infra/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "popchart",
	Short: "popchart - World Bank population bar charts from the terminal",
	Long: `popchart renders annotated bar charts of the most populous countries from
the World Bank Total Population indicator, with a bundled dataset for offline
runs. The ranking can also be printed as a table, exported to CSV, XLSX or
PDF, or shared to a Telegram chat.`,
	Version: "1.0.0",
	RunE:    runChart,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterChartFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(shareCmd)
}
