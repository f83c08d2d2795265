package notify

import "context"

// Notificator — отправляет сообщение об ошибке админу
type Notificator interface {
	Notify(ctx context.Context, err error, details string) error
}
