package commands

// Chart command: fetch the dataset, rank the configured year and render
// the annotated bar chart
// Also the root command's default action; the config and fetch helpers
// here are shared by the table, export and share commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"popchart/internal/clients_api/worldbank"
	"popchart/internal/features/barchart"
	"popchart/internal/infra/config"
	"popchart/internal/infra/exec"
	"popchart/internal/infra/log"
	"popchart/internal/population"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const viewerTimeout = 10 * time.Second

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render the population bar chart",
	Long:  `Fetch the population dataset, rank the configured year and save an annotated bar chart image.`,
	RunE:  runChart,
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result := fetchDataset(ctx, cfg)

	path, err := renderChart(cfg, result.Table, cfg.Chart.Format)
	if err != nil {
		return err
	}

	fmt.Printf("Chart saved as '%s'\n", path)

	if cfg.Chart.Show {
		if err := exec.OpenViewer(path, viewerTimeout); err != nil {
			log.LogWarn("Failed to open chart viewer", zap.String("path", path), zap.Error(err))
		}
	}

	log.LogSuccess("Chart run finished",
		zap.String("path", path),
		zap.String("source", string(result.Source)))
	return nil
}

// loadRunConfig loads the layered config and applies explicitly set
// chart flags on top.
func loadRunConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyChartFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fetchDataset resolves the population table, announcing progress and a
// fallback switch on stdout. It never fails; offline runs get the
// bundled dataset.
func fetchDataset(ctx context.Context, cfg *config.Config) *worldbank.Result {
	fmt.Println("Fetching population data...")

	var client *worldbank.Client
	if cfg.WorldBank.PreferLive {
		client = worldbank.NewClient(
			cfg.WorldBank.IndicatorURL,
			time.Duration(cfg.WorldBank.RequestTimeout)*time.Second,
			cfg.WorldBank.MaxResponseSize,
		)
	}
	provider := worldbank.NewProvider(client, population.FallbackTable, cfg.WorldBank.PreferLive)

	result := provider.FetchPopulation(ctx)
	if result.Source == worldbank.SourceFallback && result.Reason != nil {
		fmt.Println("Live data unavailable, using the bundled dataset.")
	}
	return result
}

// renderChart ranks the table and draws it in the given format,
// returning the saved path. An unknown year fails before anything is
// written.
func renderChart(cfg *config.Config, table *population.Table, format string) (string, error) {
	entries, err := table.TopN(cfg.Chart.Year, cfg.Chart.TopN)
	if err != nil {
		return "", err
	}

	fmt.Println("Creating bar chart...")

	spec, err := barchart.Build(barchart.Request{
		Entries: entries,
		Year:    cfg.Chart.Year,
		TopN:    cfg.Chart.TopN,
		Width:   cfg.Chart.Width,
		Height:  cfg.Chart.Height,
	})
	if err != nil {
		return "", err
	}

	path := filepath.Join(cfg.Chart.OutputDir, barchart.Filename(cfg.Chart.TopN, cfg.Chart.Year, format))
	switch format {
	case "svg":
		err = barchart.RenderSVG(spec, path)
	default:
		err = barchart.RenderPNG(spec, path)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}
