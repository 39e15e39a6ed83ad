package reporter

import (
	"fmt"

	"go-internmatch-portal/internal/config"
	"go-internmatch-portal/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramReporter pushes new internship matches to a Telegram chat. It is
// optional; the notifier only constructs one when a token is configured.
type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendRecommendation(rec models.Recommendation) error {
	salary := rec.Salary
	if salary == "" {
		salary = "Negotiable"
	}
	location := rec.Location
	if location == "" {
		location = "N/A"
	}

	text := fmt.Sprintf(
		"🎯 <b>%s</b> (%.1f%% match)\n"+
			"🏢 %s\n"+
			"💰 %s\n"+
			"📍 %s\n"+
			"⏳ %s",
		rec.Title,
		rec.Match,
		rec.Company,
		salary,
		location,
		rec.Duration,
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendStatus(text string) error {
	return t.SendMessage(fmt.Sprintf("✅ %s", text))
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>InternMatch Notifier Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
