package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/config"
	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

// sender is the part of *tgbotapi.BotAPI used here.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram posts admin notifications to one chat.
type Telegram struct {
	api    sender
	chatID int64
	logger *zap.Logger
}

// NewTelegram returns nil, nil when notifications are disabled.
func NewTelegram(cfg *config.Config, logger *zap.Logger) (*Telegram, error) {
	tg := cfg.Notify.Telegram
	if !tg.Enabled || tg.BotToken == "" {
		logger.Info("Telegram notifications are disabled (notify.telegram.enabled=false or token is empty)")
		return nil, nil
	}

	botAPI, err := tgbotapi.NewBotAPI(tg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot API: %w", err)
	}
	logger.Info("Telegram bot authorized", zap.String("username", botAPI.Self.UserName))

	return newTelegram(botAPI, tg.ChatID, logger), nil
}

func newTelegram(api sender, chatID int64, logger *zap.Logger) *Telegram {
	return &Telegram{api: api, chatID: chatID, logger: logger}
}

// DisputeFiled tells admins a user disagreed with a verdict.
func (t *Telegram) DisputeFiled(_ context.Context, username, logID string, claim models.Label) error {
	text := fmt.Sprintf(
		"⚖️ New dispute\n\n"+
			"👤 User: %s\n"+
			"📋 Log ID: %s\n"+
			"🏷 Claimed label: %s\n\n"+
			"Review it in the admin panel.",
		username, logID, claim,
	)
	return t.send(text)
}

// RetrainTriggered tells admins a training job was started.
func (t *Telegram) RetrainTriggered(_ context.Context, username string) error {
	return t.send(fmt.Sprintf("🔁 Model retraining started by %s", username))
}

func (t *Telegram) send(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.api.Send(msg); err != nil {
		t.logger.Error("Failed to send Telegram notification", zap.Int64("chat_id", t.chatID), zap.Error(err))
		return fmt.Errorf("failed to send notification: %w", err)
	}
	t.logger.Info("Telegram notification sent", zap.Int64("chat_id", t.chatID))
	return nil
}
