package telegram

import (
	"context"
	"fmt"
	"log"

	"github.com/Vovarama1992/chad_bot/internal/session"
	"github.com/Vovarama1992/chad_bot/internal/settings"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BuildMainKeyboard — основная клавиатура: кнопки моделей (текущая
// помечена галкой), креативность, история, настройки.
func (app *BotApp) BuildMainKeyboard(ctx context.Context, tgID int64) tgbotapi.ReplyKeyboardMarkup {
	st, err := app.Settings.GetOrCreate(ctx, tgID)
	if err != nil {
		log.Printf("[keyboard] settings fail tg=%d: %v", tgID, err)
		// без настроек рисуем дефолты, а не нулевые значения
		st = settings.Settings{
			UserID:      tgID,
			Model:       app.Settings.DefaultModel(),
			Temperature: settings.DefaultTemperature,
		}
	}

	var modelButtons []tgbotapi.KeyboardButton
	for _, tag := range app.Registry.Tags() {
		title := app.Registry.Title(tag)
		if tag == st.Model {
			title = "✅ " + title
		}
		modelButtons = append(modelButtons, tgbotapi.NewKeyboardButton(title))
	}

	row2 := tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(fmt.Sprintf("🎨 Креативность: %.1f", st.Temperature)),
		tgbotapi.NewKeyboardButton(session.LabelHistory),
	)

	row3 := tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(session.LabelSettings),
	)

	kb := tgbotapi.NewReplyKeyboard(modelButtons, row2, row3)
	kb.ResizeKeyboard = true
	return kb
}

// BuildSettingsKeyboard — inline-клавиатура настроек
func BuildSettingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬆️ Увеличить креативность", session.ActionIncreaseTemp),
			tgbotapi.NewInlineKeyboardButtonData("⬇️ Уменьшить креативность", session.ActionDecreaseTemp),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔧 Сбросить настройки", session.ActionResetSettings),
			tgbotapi.NewInlineKeyboardButtonData("📜 Очистить историю", session.ActionClearHistory),
		),
	)
}

// BuildCatalogKeyboard — inline-кнопки «в корзину» по товарам
func BuildCatalogKeyboard(ids []int64) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🛒 В корзину #%d", id),
				fmt.Sprintf("buy_%d", id),
			),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// BuildCartKeyboard — кнопка очистки корзины
func BuildCartKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Очистить корзину", "cart_clear"),
		),
	)
}
