package commands

// Share command: render the chart and send it to the configured
// Telegram chat

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"popchart/internal/features/share"

	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Send the rendered chart to a Telegram chat",
	Long: `Render the population bar chart and send it as a photo to the configured
Telegram chat. Requires telegram.bot_token and telegram.chat_id.`,
	RunE: runShare,
}

func runShare(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	// Credentials are checked before any work happens.
	sender, err := share.NewSender(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	result := fetchDataset(ctx, cfg)

	// Telegram photo messages want a raster image.
	path, err := renderChart(cfg, result.Table, "png")
	if err != nil {
		return err
	}
	fmt.Printf("Chart saved as '%s'\n", path)

	caption := fmt.Sprintf("Top %d Countries by Population (%s)", cfg.Chart.TopN, cfg.Chart.Year)
	return sender.SendChart(path, caption)
}
