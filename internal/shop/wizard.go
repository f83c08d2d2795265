package shop

import (
	"context"
	"strconv"
	"strings"
	"sync"
)

// Шаги мастера создания товара. Машина состояний явная:
// именованные шаги + структура собранных полей вместо
// состояния, размазанного по локалам хендлера.
type WizardStep int

const (
	StepAskName WizardStep = iota
	StepAskDescription
	StepAskPrice
	StepAskPhoto
)

type draft struct {
	step        WizardStep
	name        string
	description string
	price       int64
}

// Wizard — реестр активных черновиков по пользователям.
// Черновик живёт только в памяти: брошенный мастер ничего
// в БД не оставляет.
type Wizard struct {
	shop Service

	mu     sync.Mutex
	drafts map[int64]*draft
}

func NewWizard(shop Service) *Wizard {
	return &Wizard{
		shop:   shop,
		drafts: make(map[int64]*draft),
	}
}

func (w *Wizard) Start(userID int64) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.drafts[userID] = &draft{step: StepAskName}
	return "Введите название товара:"
}

func (w *Wizard) Active(userID int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.drafts[userID]
	return ok
}

func (w *Wizard) Cancel(userID int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.drafts, userID)
}

// Input — очередной ввод пользователя. Возвращает текст следующего
// приглашения и done=true, когда товар создан (или мастер отменён).
// На шаге фото input — это telegram file_id либо "-" для пропуска.
// Лок держится на весь шаг: апдейты обрабатываются в разных горутинах,
// и два быстрых сообщения не должны гонять поля одного черновика.
func (w *Wizard) Input(ctx context.Context, userID int64, input string) (string, bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	d, ok := w.drafts[userID]
	if !ok {
		return "", true, nil
	}

	input = strings.TrimSpace(input)

	switch d.step {
	case StepAskName:
		if input == "" {
			return "Название не может быть пустым. Введите название товара:", false, nil
		}
		d.name = input
		d.step = StepAskDescription
		return "Введите описание товара:", false, nil

	case StepAskDescription:
		d.description = input
		d.step = StepAskPrice
		return "Введите цену (целое число, в рублях):", false, nil

	case StepAskPrice:
		price, err := strconv.ParseInt(input, 10, 64)
		if err != nil || price <= 0 {
			return "Цена должна быть положительным целым числом. Введите цену:", false, nil
		}
		d.price = price
		d.step = StepAskPhoto
		return "Пришлите фото товара или отправьте «-», чтобы пропустить:", false, nil

	case StepAskPhoto:
		photo := input
		if photo == "-" {
			photo = ""
		}

		_, err := w.shop.AddProduct(ctx, d.name, d.description, d.price, photo)
		delete(w.drafts, userID)
		if err != nil {
			return "Не удалось сохранить товар.", true, err
		}
		return "✅ Товар «" + d.name + "» добавлен в каталог.", true, nil
	}

	delete(w.drafts, userID)
	return "", true, nil
}
