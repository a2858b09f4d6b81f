package db

import (
	"context"
	"database/sql"
	"time"
)

const listCartsEligibleForReminder = `
SELECT id, user_id, guest_user_id, status, total_kurus, created_at, updated_at
FROM carts
WHERE status = 'active' AND updated_at <= ?
ORDER BY updated_at ASC
`

// ListCartsEligibleForReminder returns active carts untouched since the
// given cutoff, oldest first.
func (q *Queries) ListCartsEligibleForReminder(ctx context.Context, updatedBefore time.Time) ([]Cart, error) {
	rows, err := q.db.QueryContext(ctx, listCartsEligibleForReminder, updatedBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Cart
	for rows.Next() {
		var c Cart
		if err := rows.Scan(&c.ID, &c.UserID, &c.GuestUserID, &c.Status, &c.TotalKurus, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

const getCart = `
SELECT id, user_id, guest_user_id, status, total_kurus, created_at, updated_at
FROM carts
WHERE id = ?
`

func (q *Queries) GetCart(ctx context.Context, id int64) (Cart, error) {
	var c Cart
	err := q.db.QueryRowContext(ctx, getCart, id).
		Scan(&c.ID, &c.UserID, &c.GuestUserID, &c.Status, &c.TotalKurus, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const createCart = `
INSERT INTO carts (user_id, guest_user_id, status, total_kurus, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
`

type CreateCartParams struct {
	UserID      sql.NullString
	GuestUserID sql.NullString
	Status      string
	TotalKurus  sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (q *Queries) CreateCart(ctx context.Context, arg CreateCartParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, createCart,
		arg.UserID, arg.GuestUserID, arg.Status, arg.TotalKurus, arg.CreatedAt, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const addCartItem = `
INSERT INTO cart_items (id, cart_id, product_id, quantity, width_cm, height_cm, pleat_type, subtotal_kurus)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

type AddCartItemParams struct {
	ID            string
	CartID        int64
	ProductID     sql.NullString
	Quantity      int64
	WidthCm       sql.NullFloat64
	HeightCm      sql.NullFloat64
	PleatType     sql.NullString
	SubtotalKurus sql.NullInt64
}

func (q *Queries) AddCartItem(ctx context.Context, arg AddCartItemParams) error {
	_, err := q.db.ExecContext(ctx, addCartItem,
		arg.ID, arg.CartID, arg.ProductID, arg.Quantity,
		arg.WidthCm, arg.HeightCm, arg.PleatType, arg.SubtotalKurus)
	return err
}

const getCartItems = `
SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.width_cm, ci.height_cm,
       ci.pleat_type, ci.subtotal_kurus,
       p.name, p.cover_image_url
FROM cart_items ci
LEFT JOIN products p ON ci.product_id = p.id
WHERE ci.cart_id = ?
ORDER BY ci.created_at ASC, ci.id ASC
`

type GetCartItemsRow struct {
	ID              string
	CartID          int64
	ProductID       sql.NullString
	Quantity        int64
	WidthCm         sql.NullFloat64
	HeightCm        sql.NullFloat64
	PleatType       sql.NullString
	SubtotalKurus   sql.NullInt64
	ProductName     sql.NullString
	ProductImageUrl sql.NullString
}

// GetCartItems returns the cart's items in insertion order, joined with
// their product (if any still resolves).
func (q *Queries) GetCartItems(ctx context.Context, cartID int64) ([]GetCartItemsRow, error) {
	rows, err := q.db.QueryContext(ctx, getCartItems, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetCartItemsRow
	for rows.Next() {
		var r GetCartItemsRow
		if err := rows.Scan(&r.ID, &r.CartID, &r.ProductID, &r.Quantity,
			&r.WidthCm, &r.HeightCm, &r.PleatType, &r.SubtotalKurus,
			&r.ProductName, &r.ProductImageUrl); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
