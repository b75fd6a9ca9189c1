// Package notify sends out-of-band alerts about new complaints. Currently a
// single Telegram channel shared by the triage staff.
package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"complaintdesk/backend/internal/models"
)

// TelegramNotifier posts a short summary of every new complaint to a staff
// chat. It is optional: main only wires it when a bot token is configured.
type TelegramNotifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewTelegramNotifier authorizes the bot and returns a notifier bound to the
// given staff chat.
func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize Telegram bot: %w", err)
	}
	bot.Debug = false
	log.Printf("INFO: Telegram notifier authorized on account %s", bot.Self.UserName)

	return &TelegramNotifier{BotAPI: bot, ChatID: chatID}, nil
}

// NotifyNewComplaint sends the complaint summary to the staff chat. Failures
// are logged and swallowed: notification is best-effort and must never fail
// the intake that triggered it.
func (n *TelegramNotifier) NotifyNewComplaint(complaint *models.Complaint) {
	text := fmt.Sprintf("New complaint #%d [%s]\n%s", complaint.ID, complaint.Category, summarize(complaint.Text))
	msg := tgbotapi.NewMessage(n.ChatID, text)

	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("ERROR: Failed to send Telegram notification for complaint %d: %v", complaint.ID, err)
	}
}

// summarize trims long complaint text to keep the chat readable.
func summarize(text string) string {
	const maxLen = 200
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "…"
}
