package shop

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("shop: product not found")
	ErrInvalidPrice = errors.New("shop: invalid price")
	ErrEmptyName    = errors.New("shop: empty product name")
)

type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Photo       string `json:"photo,omitempty"`
}

// CartItem — строка корзины после джойна с товаром
type CartItem struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// Infra — работа с БД
type Infra interface {
	AddProduct(ctx context.Context, name, description string, price int64, photo string) (int64, error)
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
	AddToCart(ctx context.Context, userID, productID int64) error
	GetCart(ctx context.Context, userID int64) ([]CartItem, error)
	ClearCart(ctx context.Context, userID int64) (int64, error)
}

// Service — бизнес-операции
type Service interface {
	AddProduct(ctx context.Context, name, description string, price int64, photo string) (int64, error)
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
	AddToCart(ctx context.Context, userID, productID int64) error
	GetCart(ctx context.Context, userID int64) ([]CartItem, int64, error)
	ClearCart(ctx context.Context, userID int64) (int64, error)
}
