package session

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/Vovarama1992/chad_bot/internal/ai"
	"github.com/Vovarama1992/chad_bot/internal/history"
	"github.com/Vovarama1992/chad_bot/internal/notify"
	"github.com/Vovarama1992/chad_bot/internal/settings"
)

const (
	msgCriticalError = "⚠️ Произошла критическая ошибка. Администратор уведомлен."

	msgGenerateFailed = "❌ Не удалось получить ответ от сервиса.\n" +
		"Попробуйте:\n" +
		"1. Изменить запрос\n" +
		"2. Уменьшить креативность\n" +
		"3. Повторить позже"

	msgHistoryEmpty        = "📭 История запросов пуста"
	msgHistoryAlreadyEmpty = "📭 История уже пуста"
)

type service struct {
	settings settings.Service
	history  history.Service
	gateway  *ai.Registry
	notifier notify.Notificator
	pageSize int
}

func NewService(
	settingsSvc settings.Service,
	historySvc history.Service,
	gateway *ai.Registry,
	notifier notify.Notificator,
	pageSize int,
) Service {
	if pageSize <= 0 {
		pageSize = history.DefaultPageSize
	}
	return &service{
		settings: settingsSvc,
		history:  historySvc,
		gateway:  gateway,
		notifier: notifier,
		pageSize: pageSize,
	}
}

func (s *service) Start(ctx context.Context, userID int64) (Reply, error) {
	st, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		log.Printf("[session] start settings fail user=%d: %v", userID, err)
		return Reply{Text: msgCriticalError, Keyboard: KeyboardMain}, err
	}

	text := fmt.Sprintf(
		"✨ Чат-бот готов к работе!\n\n"+
			"Текущие настройки:\n"+
			"• Модель: %s\n"+
			"• Креативность: %.1f\n\n"+
			"Отправьте мне сообщение, и я постараюсь на него ответить.",
		s.gateway.Title(st.Model), st.Temperature,
	)

	return Reply{Text: text, Keyboard: KeyboardMain}, nil
}

func (s *service) Help() Reply {
	return Reply{
		Text: "ℹ️ Справка по боту\n\n" +
			"Бот отправляет ваши сообщения в выбранную нейросеть и возвращает ответ.\n\n" +
			"Доступные команды:\n" +
			"/start - начать работу\n" +
			"/help - эта справка\n" +
			"/status - проверить статус бота",
	}
}

func (s *service) Status(ctx context.Context) (Reply, error) {
	users, err := s.settings.CountUsers(ctx)
	if err != nil {
		return Reply{Text: msgCriticalError}, err
	}
	total, err := s.history.CountAll(ctx)
	if err != nil {
		return Reply{Text: msgCriticalError}, err
	}

	text := fmt.Sprintf(
		"🟢 Бот работает нормально\n\n"+
			"• Пользователей в базе: %d\n"+
			"• Всего запросов: %d",
		users, total,
	)
	return Reply{Text: text}, nil
}

func (s *service) OpenSettings(ctx context.Context, userID int64) (Reply, error) {
	st, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		log.Printf("[session] settings fail user=%d: %v", userID, err)
		return Reply{Text: msgCriticalError, Keyboard: KeyboardMain}, err
	}

	text := fmt.Sprintf(
		"⚙️ Текущие настройки:\n"+
			"• Модель: %s\n"+
			"• Креативность: %.1f\n\n"+
			"Выберите действие:",
		s.gateway.Title(st.Model), st.Temperature,
	)
	return Reply{Text: text, Keyboard: KeyboardSettings}, nil
}

func (s *service) ShowCreativity(ctx context.Context, userID int64) (Reply, error) {
	st, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return Reply{Text: msgCriticalError, Keyboard: KeyboardMain}, err
	}

	text := fmt.Sprintf(
		"🎨 Уровень креативности: %.1f\n\n"+
			"0.0 - строгий и точный\n"+
			"0.5 - баланс креативности и точности\n"+
			"1.0 - максимально креативный\n\n"+
			"Изменить можно в настройках",
		st.Temperature,
	)
	return Reply{Text: text, Keyboard: KeyboardMain}, nil
}

func (s *service) ShowHistory(ctx context.Context, userID int64) (Reply, error) {
	records, err := s.history.Recent(ctx, userID, s.pageSize)
	if err != nil {
		log.Printf("[session] history fail user=%d: %v", userID, err)
		return Reply{Text: msgCriticalError, Keyboard: KeyboardMain}, err
	}

	if len(records) == 0 {
		return Reply{Text: msgHistoryEmpty, Keyboard: KeyboardMain}, nil
	}

	var b strings.Builder
	b.WriteString("📜 Последние запросы:\n\n")
	for i, r := range records {
		fmt.Fprintf(&b,
			"%d. %s\n• Модель: %s\n• Креативность: %.1f\n• Запрос: %s\n\n",
			i+1,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			s.gateway.Title(r.Model),
			r.Temperature,
			truncate(r.Prompt, 50),
		)
	}

	return Reply{Text: b.String(), Keyboard: KeyboardMain}, nil
}

func (s *service) SelectModel(ctx context.Context, userID int64, tag string) (Reply, error) {
	if _, err := s.settings.GetOrCreate(ctx, userID); err != nil {
		return Reply{Text: msgCriticalError, Keyboard: KeyboardMain}, err
	}

	if err := s.settings.SetModel(ctx, userID, tag); err != nil {
		log.Printf("[session] select model fail user=%d tag=%s: %v", userID, tag, err)
		return Reply{Text: "❌ Неизвестная модель", Keyboard: KeyboardMain}, err
	}

	text := fmt.Sprintf("✅ Модель изменена на %s", s.gateway.Title(tag))
	return Reply{Text: text, Keyboard: KeyboardMain}, nil
}

func (s *service) HandleAction(ctx context.Context, userID int64, action string) (Reply, error) {
	switch action {
	case ActionIncreaseTemp:
		return s.adjustTemperature(ctx, userID, +0.1)
	case ActionDecreaseTemp:
		return s.adjustTemperature(ctx, userID, -0.1)
	case ActionResetSettings:
		return s.resetSettings(ctx, userID)
	case ActionClearHistory:
		return s.clearHistory(ctx, userID)
	case ActionShowHistory:
		return s.ShowHistory(ctx, userID)
	default:
		return Reply{Text: "Неизвестное действие"},
			fmt.Errorf("session: unknown action %q", action)
	}
}

// HandleText — свободный текст. Сначала навигация по зарезервированным
// подписям кнопок, чтобы случайно не отправить их провайдеру как промпт,
// потом генерация.
func (s *service) HandleText(ctx context.Context, userID int64, text string) (Reply, error) {
	trimmed := strings.TrimSpace(text)

	switch {
	case trimmed == LabelSettings:
		return s.OpenSettings(ctx, userID)
	case trimmed == LabelHistory:
		return s.ShowHistory(ctx, userID)
	case strings.HasPrefix(trimmed, labelCreativityPrefix):
		return s.ShowCreativity(ctx, userID)
	}

	if tag, ok := s.modelByTitle(strings.TrimPrefix(trimmed, selectedMark)); ok {
		return s.SelectModel(ctx, userID, tag)
	}

	// в генерацию и историю текст уходит как есть, trim только для навигации
	return s.generate(ctx, userID, text)
}

func (s *service) generate(ctx context.Context, userID int64, prompt string) (Reply, error) {
	st, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		log.Printf("[session] settings fail user=%d: %v", userID, err)
		return Reply{Text: msgCriticalError, Keyboard: KeyboardMain}, err
	}

	response, err := s.gateway.Generate(ctx, prompt, st.Temperature, st.Model)
	if err != nil {
		// для пользователя все причины схлопываются в один ответ,
		// различаем их только в логах и уведомлении админу
		log.Printf("[session] generate fail user=%d model=%s: %v", userID, st.Model, err)
		s.notifier.Notify(ctx, err, fmt.Sprintf(
			"Ошибка генерации\nПользователь: %d\nМодель: %s\nЗапрос: %q",
			userID, st.Model, truncate(prompt, 100),
		))
		return Reply{Text: msgGenerateFailed, Keyboard: KeyboardMain}, nil
	}

	if _, err := s.history.Append(ctx, userID, st.Model, st.Temperature, prompt, response); err != nil {
		log.Printf("[session] history append fail user=%d: %v", userID, err)
		return Reply{Text: msgCriticalError, Keyboard: KeyboardMain}, err
	}

	text := fmt.Sprintf("📝 Результат (%s, креативность %.1f):\n\n%s",
		s.gateway.Title(st.Model), st.Temperature, response)

	return Reply{Text: text, Keyboard: KeyboardMain}, nil
}

func (s *service) adjustTemperature(ctx context.Context, userID int64, delta float64) (Reply, error) {
	st, err := s.settings.GetOrCreate(ctx, userID)
	if err != nil {
		return Reply{Text: msgCriticalError, Keyboard: KeyboardSettings}, err
	}

	next := math.Round((st.Temperature+delta)*10) / 10
	if next > 1.0 {
		next = 1.0
	}
	if next < 0.0 {
		next = 0.0
	}

	if err := s.settings.SetTemperature(ctx, userID, next); err != nil {
		log.Printf("[session] set temperature fail user=%d: %v", userID, err)
		return Reply{Text: msgCriticalError, Keyboard: KeyboardSettings}, err
	}

	word := "увеличена"
	if delta < 0 {
		word = "уменьшена"
	}
	text := fmt.Sprintf("⚙️ Креативность %s до: %.1f", word, next)
	return Reply{Text: text, Keyboard: KeyboardSettings}, nil
}

func (s *service) resetSettings(ctx context.Context, userID int64) (Reply, error) {
	st, err := s.settings.Reset(ctx, userID)
	if err != nil {
		log.Printf("[session] reset fail user=%d: %v", userID, err)
		return Reply{Text: msgCriticalError, Keyboard: KeyboardSettings}, err
	}

	text := fmt.Sprintf(
		"⚙️ Настройки сброшены к значениям по умолчанию:\n"+
			"• Модель: %s\n"+
			"• Креативность: %.1f",
		s.gateway.Title(st.Model), st.Temperature,
	)
	return Reply{Text: text, Keyboard: KeyboardSettings}, nil
}

func (s *service) clearHistory(ctx context.Context, userID int64) (Reply, error) {
	n, err := s.history.Clear(ctx, userID)
	if err != nil {
		log.Printf("[session] clear history fail user=%d: %v", userID, err)
		return Reply{Text: msgCriticalError, Keyboard: KeyboardSettings}, err
	}

	if n == 0 {
		return Reply{Text: msgHistoryAlreadyEmpty, Keyboard: KeyboardSettings}, nil
	}
	return Reply{
		Text:     fmt.Sprintf("✅ Удалено %d записей из истории", n),
		Keyboard: KeyboardSettings,
	}, nil
}

func (s *service) modelByTitle(title string) (string, bool) {
	for _, tag := range s.gateway.Tags() {
		if s.gateway.Title(tag) == title {
			return tag, true
		}
	}
	return "", false
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
