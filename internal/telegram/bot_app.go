package telegram

import (
	"log"

	"github.com/Vovarama1992/chad_bot/internal/ai"
	"github.com/Vovarama1992/chad_bot/internal/session"
	"github.com/Vovarama1992/chad_bot/internal/settings"
	"github.com/Vovarama1992/chad_bot/internal/shop"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type BotApp struct {
	Session     session.Service
	Settings    settings.Service
	Shop        shop.Service
	Wizard      *shop.Wizard
	Registry    *ai.Registry
	AdminChatID int64

	bot *tgbotapi.BotAPI
}

func NewBotApp(
	sessionSvc session.Service,
	settingsSvc settings.Service,
	shopSvc shop.Service,
	wizard *shop.Wizard,
	registry *ai.Registry,
	adminChatID int64,
) *BotApp {
	return &BotApp{
		Session:     sessionSvc,
		Settings:    settingsSvc,
		Shop:        shopSvc,
		Wizard:      wizard,
		Registry:    registry,
		AdminChatID: adminChatID,
	}
}

func (app *BotApp) Init(token string) error {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return err
	}

	app.bot = bot
	log.Printf("[bot_app] ready: @%s", bot.Self.UserName)
	return nil
}

func (app *BotApp) Bot() *tgbotapi.BotAPI {
	return app.bot
}

func (app *BotApp) Stop() {
	if app.bot != nil {
		app.bot.StopReceivingUpdates()
	}
}
