package session

import "context"

// Keyboard — какую клавиатуру транспорт должен показать рядом с ответом.
// Ядро ничего не знает про разметку конкретного мессенджера.
type Keyboard int

const (
	KeyboardNone Keyboard = iota
	KeyboardMain
	KeyboardSettings
)

// Reply — результат обработки входящего события
type Reply struct {
	Text     string
	Keyboard Keyboard
}

// Токены меню-действий (callback data кнопок)
const (
	ActionIncreaseTemp  = "increase_temp"
	ActionDecreaseTemp  = "decrease_temp"
	ActionResetSettings = "reset_settings"
	ActionClearHistory  = "clear_history"
	ActionShowHistory   = "show_history"
)

// Подписи reply-кнопок. Свободный текст, совпавший с подписью,
// трактуется как навигация, а не как промпт.
const (
	LabelSettings = "🛠 Настройки"
	LabelHistory  = "📜 История"

	labelCreativityPrefix = "🎨 Креативность:"
	selectedMark          = "✅ "
)

// Service — точки входа ядра: по одной на команду, меню-токен
// и свободный текст. Машина состояний реентерабельна, между
// вызовами ничего в памяти не держится.
type Service interface {
	Start(ctx context.Context, userID int64) (Reply, error)
	Help() Reply
	Status(ctx context.Context) (Reply, error)

	OpenSettings(ctx context.Context, userID int64) (Reply, error)
	ShowCreativity(ctx context.Context, userID int64) (Reply, error)
	ShowHistory(ctx context.Context, userID int64) (Reply, error)
	SelectModel(ctx context.Context, userID int64, tag string) (Reply, error)

	HandleAction(ctx context.Context, userID int64, action string) (Reply, error)
	HandleText(ctx context.Context, userID int64, text string) (Reply, error)
}
