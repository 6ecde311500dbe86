package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // driver 100% Go
)

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(ON)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  seller_id TEXT NOT NULL,
  customer_id TEXT NOT NULL,
  book_id TEXT NOT NULL,
  book_title TEXT NOT NULL,
  customer_name TEXT NOT NULL,
  payment_status TEXT NOT NULL,
  order_status TEXT NOT NULL,
  created_unix INTEGER NOT NULL,
  updated_unix INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_seller ON orders(seller_id);
`
	_, err := db.Exec(schema)
	return err
}

func (r *Repository) Close() error { return r.db.Close() }

// Create inserta una orden nueva; el id se asigna aquí, una sola vez.
func (r *Repository) Create(ctx context.Context, o *Order) (*Order, error) {
	o.ID = uuid.NewString()
	now := nowUTC()
	o.CreatedAt = now
	o.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
  INSERT INTO orders(id, seller_id, customer_id, book_id, book_title,
    customer_name, payment_status, order_status, created_unix, updated_unix)
  VALUES(?,?,?,?,?,?,?,?,?,?)`,
		o.ID, o.SellerID, o.CustomerID, o.BookID, o.BookTitle,
		o.CustomerName, o.PaymentStatus, o.OrderStatus, now.Unix(), now.Unix())
	if err != nil {
		return nil, storageErr("failed to create order", err)
	}
	return o, nil
}

func (r *Repository) FindBySellerID(ctx context.Context, sellerID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
    SELECT id, seller_id, customer_id, book_id, book_title,
      customer_name, payment_status, order_status, created_unix, updated_unix
    FROM orders WHERE seller_id=?`, sellerID)
	if err != nil {
		return nil, storageErr("failed to fetch orders", err)
	}
	defer rows.Close()

	var out []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, storageErr("failed to fetch orders", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("failed to fetch orders", err)
	}
	return out, nil
}

// UpdateStatus cambia el estado y devuelve la orden actualizada.
// Si la orden no existe el error es de almacenamiento, no hay traducción a 404.
func (r *Repository) UpdateStatus(ctx context.Context, orderID, status string) (*Order, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET order_status=?, updated_unix=? WHERE id=?`,
		status, nowUTC().Unix(), orderID)
	if err != nil {
		return nil, storageErr("failed to update order", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, storageErr("failed to update order", err)
	}
	if n == 0 {
		return nil, storageErr("failed to update order", sql.ErrNoRows)
	}

	row := r.db.QueryRowContext(ctx, `
    SELECT id, seller_id, customer_id, book_id, book_title,
      customer_name, payment_status, order_status, created_unix, updated_unix
    FROM orders WHERE id=?`, orderID)
	o, err := scanOrder(row)
	if err != nil {
		return nil, storageErr("failed to update order", err)
	}
	return o, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var o Order
	var created, updated int64
	if err := row.Scan(&o.ID, &o.SellerID, &o.CustomerID, &o.BookID, &o.BookTitle,
		&o.CustomerName, &o.PaymentStatus, &o.OrderStatus, &created, &updated); err != nil {
		return nil, err
	}
	o.CreatedAt = time.Unix(created, 0).UTC()
	o.UpdatedAt = time.Unix(updated, 0).UTC()
	return &o, nil
}
