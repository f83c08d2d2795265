package telegram

import (
	"context"
	"log"

	"github.com/Vovarama1992/chad_bot/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) dispatchUpdate(ctx context.Context, tgID int64, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		app.handleMessage(ctx, tgID, update.Message)
	case update.CallbackQuery != nil:
		app.handleCallback(ctx, tgID, update.CallbackQuery)
	}
}

func (app *BotApp) handleMessage(ctx context.Context, tgID int64, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		app.handleCommand(ctx, tgID, msg)
		return
	}

	// активный мастер товара перехватывает любой ввод
	if app.Wizard.Active(tgID) {
		app.handleWizardInput(ctx, tgID, msg)
		return
	}

	if msg.Text != "" {
		app.handleText(ctx, tgID, msg)
	}
}

// sendReply — переводит rendering-agnostic ответ ядра в сообщение
// с нужной клавиатурой
func (app *BotApp) sendReply(ctx context.Context, chatID, tgID int64, reply session.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)

	switch reply.Keyboard {
	case session.KeyboardMain:
		msg.ReplyMarkup = app.BuildMainKeyboard(ctx, tgID)
	case session.KeyboardSettings:
		msg.ReplyMarkup = BuildSettingsKeyboard()
	}

	if _, err := app.bot.Send(msg); err != nil {
		log.Printf("[dispatch] send fail chat=%d: %v", chatID, err)
	}
}
