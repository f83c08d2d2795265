package history

import (
	"context"
	"time"
)

// Record — одна запись истории. Снимок model/temperature на момент
// запроса: последующая смена настроек записи не трогает.
type Record struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	Model       string    `json:"model"`
	Temperature float64   `json:"temperature"`
	Prompt      string    `json:"prompt"`
	Response    string    `json:"response"`
}

// Infra — работа с БД
type Infra interface {
	Append(ctx context.Context, userID int64, model string, temperature float64, prompt, response string) (int64, error)
	Recent(ctx context.Context, userID int64, limit int) ([]Record, error)
	Clear(ctx context.Context, userID int64) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

// Service — бизнес-операции
type Service interface {
	Append(ctx context.Context, userID int64, model string, temperature float64, prompt, response string) (int64, error)
	Recent(ctx context.Context, userID int64, limit int) ([]Record, error)
	Clear(ctx context.Context, userID int64) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}
