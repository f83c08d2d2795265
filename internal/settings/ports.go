package settings

import (
	"context"
	"errors"
)

var (
	ErrNotFound         = errors.New("settings: user not found")
	ErrInvalidField     = errors.New("settings: invalid field")
	ErrUnknownModel     = errors.New("settings: unknown model")
	ErrTemperatureRange = errors.New("settings: temperature out of range")
	ErrTemperatureStep  = errors.New("settings: temperature not on 0.1 grid")
)

const DefaultTemperature = 0.7

// Settings — настройки одного пользователя
type Settings struct {
	UserID      int64   `json:"user_id"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
}

// Infra — работа с БД
type Infra interface {
	GetOrCreate(ctx context.Context, userID int64, def Settings) (Settings, error)
	SetModel(ctx context.Context, userID int64, model string) error
	SetTemperature(ctx context.Context, userID int64, t float64) error
	CountUsers(ctx context.Context) (int64, error)
}

// Service — бизнес-операции. Валидация значений живёт здесь,
// до инфраструктуры долетают только проверенные поля.
type Service interface {
	GetOrCreate(ctx context.Context, userID int64) (Settings, error)
	Update(ctx context.Context, userID int64, field string, value any) error
	SetModel(ctx context.Context, userID int64, model string) error
	SetTemperature(ctx context.Context, userID int64, t float64) error
	Reset(ctx context.Context, userID int64) (Settings, error)
	DefaultModel() string
	CountUsers(ctx context.Context) (int64, error)
}
