package db

import (
	"context"
	"database/sql"
)

const createProduct = `
INSERT INTO products (id, name, cover_image_url, price_kurus)
VALUES (?, ?, ?, ?)
`

type CreateProductParams struct {
	ID            string
	Name          string
	CoverImageUrl sql.NullString
	PriceKurus    int64
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) error {
	_, err := q.db.ExecContext(ctx, createProduct,
		arg.ID, arg.Name, arg.CoverImageUrl, arg.PriceKurus)
	return err
}

const getProduct = `
SELECT id, name, cover_image_url, price_kurus, created_at
FROM products
WHERE id = ?
`

func (q *Queries) GetProduct(ctx context.Context, id string) (Product, error) {
	var p Product
	err := q.db.QueryRowContext(ctx, getProduct, id).
		Scan(&p.ID, &p.Name, &p.CoverImageUrl, &p.PriceKurus, &p.CreatedAt)
	return p, err
}
