package telegram

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/Vovarama1992/chad_bot/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleCallback(ctx context.Context, tgID int64, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	data := cb.Data

	// убираем «часики» на кнопке
	defer app.bot.Request(tgbotapi.NewCallback(cb.ID, ""))

	switch {
	case strings.HasPrefix(data, "buy_"):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, "buy_"), 10, 64)
		if err != nil {
			return
		}
		app.handleBuy(ctx, chatID, tgID, id)
		return

	case data == "cart_clear":
		app.handleCartClear(ctx, chatID, tgID)
		return
	}

	reply, err := app.Session.HandleAction(ctx, tgID, data)
	if err != nil {
		log.Printf("[callback] action fail tg=%d data=%s: %v", tgID, data, err)
	}

	// меню-действия редактируют исходное сообщение настроек
	if reply.Keyboard == session.KeyboardSettings {
		edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, reply.Text)
		kb := BuildSettingsKeyboard()
		edit.ReplyMarkup = &kb
		if _, err := app.bot.Send(edit); err != nil {
			log.Printf("[callback] edit fail chat=%d: %v", chatID, err)
		}
		return
	}

	app.sendReply(ctx, chatID, tgID, reply)
}
