package share

// Telegram delivery of a rendered chart
// One photo message with a caption, no queueing

import (
	"fmt"
	"os"

	"popchart/internal/infra/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Sender posts chart images to a single Telegram chat.
type Sender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewSender validates the credentials and connects to the Bot API.
func NewSender(token, chatIDStr string) (*Sender, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is not configured")
	}
	chatID, err := ParseChatID(chatIDStr)
	if err != nil {
		return nil, err
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}

	log.LogInfo("Telegram bot authorized", zap.String("username", bot.Self.UserName))
	return &Sender{bot: bot, chatID: chatID}, nil
}

// ParseChatID parses a decimal chat id. Group ids are negative
// (for example -1003190218710), so only zero is rejected.
func ParseChatID(chatIDStr string) (int64, error) {
	if chatIDStr == "" {
		return 0, fmt.Errorf("telegram chat id is not configured")
	}
	var chatID int64
	if _, err := fmt.Sscanf(chatIDStr, "%d", &chatID); err != nil {
		return 0, fmt.Errorf("invalid telegram chat id %q: %w", chatIDStr, err)
	}
	if chatID == 0 {
		return 0, fmt.Errorf("invalid telegram chat id %q", chatIDStr)
	}
	return chatID, nil
}

// SendChart posts the chart image as a photo with the given caption.
func (s *Sender) SendChart(chartPath, caption string) error {
	if _, err := os.Stat(chartPath); err != nil {
		return fmt.Errorf("chart to share not found: %w", err)
	}

	photo := tgbotapi.NewPhoto(s.chatID, tgbotapi.FilePath(chartPath))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML

	if _, err := s.bot.Send(photo); err != nil {
		log.LogError("Failed to send chart to Telegram",
			zap.String("chartPath", chartPath),
			zap.Error(err))
		return fmt.Errorf("failed to send chart to Telegram: %w", err)
	}

	log.LogSuccess("Chart sent to Telegram",
		zap.String("chartPath", chartPath),
		zap.Int64("chatID", s.chatID))
	return nil
}
