package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) handleText(ctx context.Context, tgID int64, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	log.Printf("[text] start tg=%d", tgID)

	// индикатор на время генерации; навигационные ответы приходят
	// быстро, но различать их здесь — значит дублировать знание ядра
	thinking := tgbotapi.NewMessage(chatID, "🔄 Обрабатываю запрос...")
	sentThinking, _ := app.bot.Send(thinking)

	reply, err := app.Session.HandleText(ctx, tgID, msg.Text)
	if err != nil {
		log.Printf("[text] handle fail tg=%d: %v", tgID, err)
	}

	app.sendReply(ctx, chatID, tgID, reply)

	del := tgbotapi.NewDeleteMessage(chatID, sentThinking.MessageID)
	app.bot.Request(del)

	log.Printf("[text] done tg=%d", tgID)
}
