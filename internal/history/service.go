package history

import "context"

const DefaultPageSize = 5

type service struct {
	infra    Infra
	pageSize int
}

func NewService(infra Infra, pageSize int) Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &service{infra: infra, pageSize: pageSize}
}

func (s *service) Append(
	ctx context.Context,
	userID int64,
	model string,
	temperature float64,
	prompt, response string,
) (int64, error) {
	return s.infra.Append(ctx, userID, model, temperature, prompt, response)
}

func (s *service) Recent(ctx context.Context, userID int64, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = s.pageSize
	}
	return s.infra.Recent(ctx, userID, limit)
}

func (s *service) Clear(ctx context.Context, userID int64) (int64, error) {
	return s.infra.Clear(ctx, userID)
}

func (s *service) CountAll(ctx context.Context) (int64, error) {
	return s.infra.CountAll(ctx)
}
