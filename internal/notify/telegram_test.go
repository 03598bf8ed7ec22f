package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/go-playground/assert/v2"
	"go.uber.org/zap"

	"github.com/Rajankit27/FakeNewsDetection/internal/config"
	"github.com/Rajankit27/FakeNewsDetection/internal/models"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	f.sent = append(f.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func TestDisputeFiled(t *testing.T) {
	s := &fakeSender{}
	tg := newTelegram(s, 42, zap.NewNop())

	err := tg.DisputeFiled(context.Background(), "alice", "log-7", models.LabelReal)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(s.sent))
	assert.Equal(t, int64(42), s.sent[0].ChatID)
	assert.Equal(t, true, strings.Contains(s.sent[0].Text, "alice"))
	assert.Equal(t, true, strings.Contains(s.sent[0].Text, "log-7"))
	assert.Equal(t, true, strings.Contains(s.sent[0].Text, "REAL"))
}

func TestRetrainTriggered_SendFailure(t *testing.T) {
	tg := newTelegram(&fakeSender{err: errors.New("flood wait")}, 42, zap.NewNop())
	err := tg.RetrainTriggered(context.Background(), "root")
	assert.NotEqual(t, nil, err)
}

func TestNewTelegram_Disabled(t *testing.T) {
	cfg := &config.Config{}
	tg, err := NewTelegram(cfg, zap.NewNop())
	assert.Equal(t, nil, err)
	assert.Equal(t, (*Telegram)(nil), tg)
}
