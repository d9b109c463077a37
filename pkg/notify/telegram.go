package notify

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram sends the booking summary to the operator chats.
type Telegram struct {
	bot     Sender
	chatIDs []int64
}

func NewTelegram(token string, chatIDs []int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	bot.Debug = false
	return NewTelegramWithSender(bot, chatIDs), nil
}

func NewTelegramWithSender(bot Sender, chatIDs []int64) *Telegram {
	return &Telegram{bot: bot, chatIDs: chatIDs}
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) Notify(ctx context.Context, event BookingEvent) error {
	text := Summary(event)
	done := make(chan error, 1)

	go func() {
		var errs []error
		for _, chatID := range t.chatIDs {
			msg := tgbotapi.NewMessage(chatID, text)
			msg.DisableWebPagePreview = true
			if _, err := t.bot.Send(msg); err != nil {
				errs = append(errs, fmt.Errorf("chat %d: %w", chatID, err))
			}
		}
		done <- errors.Join(errs...)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
