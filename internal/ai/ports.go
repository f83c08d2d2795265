package ai

import (
	"context"
	"errors"
)

// Таксономия отказов шлюза. Все ошибки провайдеров заворачиваются
// в один из этих sentinel-ов, наружу сырые транспортные ошибки не уходят.
var (
	ErrTransport         = errors.New("ai: transport failure")
	ErrMalformedResponse = errors.New("ai: malformed provider response")
	ErrProvider          = errors.New("ai: provider reported failure")
	ErrUnknownProvider   = errors.New("ai: unknown provider")
)

// Provider — абстракция над одним генерирующим бэкендом.
// Реализация сама знает свой endpoint, ключ и имя модели.
type Provider interface {
	Generate(ctx context.Context, prompt string, temperature float64) (string, error)
}
