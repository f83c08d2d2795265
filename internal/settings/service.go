package settings

import (
	"context"
	"fmt"
	"math"
)

type service struct {
	infra       Infra
	models      []string
	defaultTemp float64
}

// NewService — models задаёт закрытый набор допустимых тегов провайдеров,
// первый тег считается моделью по умолчанию.
func NewService(infra Infra, models []string, defaultTemp float64) Service {
	if len(models) == 0 {
		panic("settings: empty model set")
	}
	if defaultTemp <= 0 {
		defaultTemp = DefaultTemperature
	}
	return &service{
		infra:       infra,
		models:      models,
		defaultTemp: defaultTemp,
	}
}

func (s *service) DefaultModel() string {
	return s.models[0]
}

func (s *service) GetOrCreate(ctx context.Context, userID int64) (Settings, error) {
	return s.infra.GetOrCreate(ctx, userID, Settings{
		UserID:      userID,
		Model:       s.DefaultModel(),
		Temperature: s.defaultTemp,
	})
}

// Update — операция с именованным полем из закрытого набора
// {model, temperature}. Имя поля никогда не попадает в SQL:
// диспетчеризация идёт на явные сеттеры.
func (s *service) Update(ctx context.Context, userID int64, field string, value any) error {
	switch field {
	case "model":
		tag, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %v", ErrUnknownModel, value)
		}
		return s.SetModel(ctx, userID, tag)
	case "temperature":
		t, ok := value.(float64)
		if !ok {
			return fmt.Errorf("%w: %v", ErrTemperatureRange, value)
		}
		return s.SetTemperature(ctx, userID, t)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidField, field)
	}
}

func (s *service) SetModel(ctx context.Context, userID int64, model string) error {
	for _, m := range s.models {
		if m == model {
			return s.infra.SetModel(ctx, userID, model)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownModel, model)
}

func (s *service) SetTemperature(ctx context.Context, userID int64, t float64) error {
	if t < 0.0 || t > 1.0 {
		return fmt.Errorf("%w: %v", ErrTemperatureRange, t)
	}
	// шаг 0.1: значения мимо сетки отклоняем
	if math.Abs(t*10-math.Round(t*10)) > 1e-9 {
		return fmt.Errorf("%w: %v", ErrTemperatureStep, t)
	}
	return s.infra.SetTemperature(ctx, userID, t)
}

func (s *service) Reset(ctx context.Context, userID int64) (Settings, error) {
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return Settings{}, err
	}
	if err := s.infra.SetModel(ctx, userID, s.DefaultModel()); err != nil {
		return Settings{}, err
	}
	if err := s.infra.SetTemperature(ctx, userID, s.defaultTemp); err != nil {
		return Settings{}, err
	}
	return Settings{
		UserID:      userID,
		Model:       s.DefaultModel(),
		Temperature: s.defaultTemp,
	}, nil
}

func (s *service) CountUsers(ctx context.Context) (int64, error) {
	return s.infra.CountUsers(ctx)
}
