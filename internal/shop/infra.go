package shop

import (
	"context"
	"database/sql"
	"errors"
)

type infra struct {
	db *sql.DB
}

func NewInfra(db *sql.DB) Infra {
	return &infra{db: db}
}

func (i *infra) AddProduct(ctx context.Context, name, description string, price int64, photo string) (int64, error) {
	var id int64
	err := i.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, photo)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, name, description, price, photo).Scan(&id)
	return id, err
}

func (i *infra) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := i.db.QueryContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(photo, '')
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Photo); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (i *infra) GetProduct(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := i.db.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(photo, '')
		FROM products
		WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Photo)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (i *infra) AddToCart(ctx context.Context, userID, productID int64) error {
	_, err := i.db.ExecContext(ctx, `
		INSERT INTO cart (user_id, product_id) VALUES (?, ?)
	`, userID, productID)
	return err
}

func (i *infra) GetCart(ctx context.Context, userID int64) ([]CartItem, error) {
	rows, err := i.db.QueryContext(ctx, `
		SELECT p.id, p.name, COALESCE(p.description, ''), p.price
		FROM cart c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = ?
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []CartItem{}
	for rows.Next() {
		var it CartItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Description, &it.Price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (i *infra) ClearCart(ctx context.Context, userID int64) (int64, error) {
	res, err := i.db.ExecContext(ctx, `
		DELETE FROM cart WHERE user_id = ?
	`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
