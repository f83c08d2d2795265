package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleCommand(ctx context.Context, tgID int64, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start":
		reply, err := app.Session.Start(ctx, tgID)
		if err != nil {
			log.Printf("[cmd] start fail tg=%d: %v", tgID, err)
		}
		app.sendReply(ctx, chatID, tgID, reply)

	case "help":
		app.sendReply(ctx, chatID, tgID, app.Session.Help())

	case "status":
		reply, err := app.Session.Status(ctx)
		if err != nil {
			log.Printf("[cmd] status fail: %v", err)
		}
		app.sendReply(ctx, chatID, tgID, reply)

	case "shop":
		app.sendCatalog(ctx, chatID)

	case "cart":
		app.sendCart(ctx, chatID, tgID)

	case "addproduct":
		if tgID != app.AdminChatID {
			app.bot.Send(tgbotapi.NewMessage(chatID, "Команда доступна только администратору."))
			return
		}
		prompt := app.Wizard.Start(tgID)
		app.bot.Send(tgbotapi.NewMessage(chatID, prompt))

	case "cancel":
		app.Wizard.Cancel(tgID)
		app.bot.Send(tgbotapi.NewMessage(chatID, "Ок, отменено."))

	default:
		app.bot.Send(tgbotapi.NewMessage(chatID, "Неизвестная команда. Справка: /help"))
	}
}
