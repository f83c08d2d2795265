package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (app *BotApp) sendCatalog(ctx context.Context, chatID int64) {
	products, err := app.Shop.ListProducts(ctx)
	if err != nil {
		log.Printf("[shop] list fail: %v", err)
		app.bot.Send(tgbotapi.NewMessage(chatID, "⚠️ Не удалось загрузить каталог."))
		return
	}

	if len(products) == 0 {
		app.bot.Send(tgbotapi.NewMessage(chatID, "Каталог пока пуст."))
		return
	}

	var b strings.Builder
	b.WriteString("🛍 Каталог:\n\n")
	ids := make([]int64, 0, len(products))
	for _, p := range products {
		fmt.Fprintf(&b, "#%d %s — %d ₽\n%s\n\n", p.ID, p.Name, p.Price, p.Description)
		ids = append(ids, p.ID)
	}

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ReplyMarkup = BuildCatalogKeyboard(ids)
	app.bot.Send(msg)
}

func (app *BotApp) sendCart(ctx context.Context, chatID, tgID int64) {
	items, total, err := app.Shop.GetCart(ctx, tgID)
	if err != nil {
		log.Printf("[shop] cart fail tg=%d: %v", tgID, err)
		app.bot.Send(tgbotapi.NewMessage(chatID, "⚠️ Не удалось загрузить корзину."))
		return
	}

	if len(items) == 0 {
		app.bot.Send(tgbotapi.NewMessage(chatID, "🛒 Корзина пуста."))
		return
	}

	var b strings.Builder
	b.WriteString("🛒 Корзина:\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "• %s — %d ₽\n", it.Name, it.Price)
	}
	fmt.Fprintf(&b, "\nИтого: %d ₽", total)

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ReplyMarkup = BuildCartKeyboard()
	app.bot.Send(msg)
}

func (app *BotApp) handleBuy(ctx context.Context, chatID, tgID, productID int64) {
	if err := app.Shop.AddToCart(ctx, tgID, productID); err != nil {
		log.Printf("[shop] add to cart fail tg=%d product=%d: %v", tgID, productID, err)
		app.bot.Send(tgbotapi.NewMessage(chatID, "⚠️ Не удалось добавить товар."))
		return
	}
	app.bot.Send(tgbotapi.NewMessage(chatID, "✅ Товар добавлен в корзину. Посмотреть: /cart"))
}

func (app *BotApp) handleCartClear(ctx context.Context, chatID, tgID int64) {
	n, err := app.Shop.ClearCart(ctx, tgID)
	if err != nil {
		log.Printf("[shop] clear cart fail tg=%d: %v", tgID, err)
		app.bot.Send(tgbotapi.NewMessage(chatID, "⚠️ Не удалось очистить корзину."))
		return
	}

	text := "🛒 Корзина уже пуста."
	if n > 0 {
		text = fmt.Sprintf("✅ Из корзины удалено позиций: %d", n)
	}
	app.bot.Send(tgbotapi.NewMessage(chatID, text))
}

// handleWizardInput — шаг мастера товара; на шаге фото берём file_id
// самого крупного превью
func (app *BotApp) handleWizardInput(ctx context.Context, tgID int64, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	input := msg.Text
	if len(msg.Photo) > 0 {
		input = msg.Photo[len(msg.Photo)-1].FileID
	}

	prompt, done, err := app.Wizard.Input(ctx, tgID, input)
	if err != nil {
		log.Printf("[shop] wizard fail tg=%d: %v", tgID, err)
	}
	if prompt != "" {
		app.bot.Send(tgbotapi.NewMessage(chatID, prompt))
	}
	if done {
		log.Printf("[shop] wizard done tg=%d", tgID)
	}
}
