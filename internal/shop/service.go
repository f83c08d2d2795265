package shop

import (
	"context"
	"strings"
)

type service struct {
	infra Infra
}

func NewService(infra Infra) Service {
	return &service{infra: infra}
}

func (s *service) AddProduct(ctx context.Context, name, description string, price int64, photo string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrEmptyName
	}
	if price <= 0 {
		return 0, ErrInvalidPrice
	}
	return s.infra.AddProduct(ctx, strings.TrimSpace(name), description, price, photo)
}

func (s *service) ListProducts(ctx context.Context) ([]Product, error) {
	return s.infra.ListProducts(ctx)
}

func (s *service) GetProduct(ctx context.Context, id int64) (Product, error) {
	return s.infra.GetProduct(ctx, id)
}

func (s *service) AddToCart(ctx context.Context, userID, productID int64) error {
	if _, err := s.infra.GetProduct(ctx, productID); err != nil {
		return err
	}
	return s.infra.AddToCart(ctx, userID, productID)
}

func (s *service) GetCart(ctx context.Context, userID int64) ([]CartItem, int64, error) {
	items, err := s.infra.GetCart(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	for _, it := range items {
		total += it.Price
	}
	return items, total, nil
}

func (s *service) ClearCart(ctx context.Context, userID int64) (int64, error) {
	return s.infra.ClearCart(ctx, userID)
}
