// Package notify delivers the daily review reminder to the learner.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram sends reminders through a Telegram bot to a single chat.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram connects to the Telegram API with the given bot token. The
// token is validated against the API, so this fails fast on a bad token
// rather than at reminder time.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	return &Telegram{bot: bot, chatID: chatID}, nil
}

// SendReminder announces how many phrases are waiting for review.
func (t *Telegram) SendReminder(count int) error {
	text := fmt.Sprintf("You have %d phrase%s due for review. Open the extension to practice!", count, plural(count))
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
