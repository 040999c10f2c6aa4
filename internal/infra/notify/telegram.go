package notify

import (
	"context"
	"fmt"

	"rocodes-admin/internal/config"
	"rocodes-admin/internal/domain/ports/adapter"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier posts operational messages to the staff channel.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

var _ adapter.StaffNotifier = (*TelegramNotifier)(nil)

func NewTelegramNotifier(cfg config.NotifyConfig) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, chatID: cfg.TelegramChatID}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.DisableWebPagePreview = true
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send staff notification: %w", err)
	}
	return nil
}

// NoopNotifier is used when no telegram credentials are configured.
type NoopNotifier struct{}

var _ adapter.StaffNotifier = (*NoopNotifier)(nil)

func (NoopNotifier) Notify(ctx context.Context, text string) error { return nil }
