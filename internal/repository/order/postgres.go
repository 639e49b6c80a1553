package order

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"ecommerce-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id, order_tracking_number, total_quantity, total_price, status, customer_id, shipping_address_id, billing_address_id, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) SavePurchase(ctx context.Context, in SavePurchaseInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	customerID, err := resolveCustomer(ctx, tx, in.Customer)
	if err != nil {
		return nil, err
	}

	shippingID, err := insertAddress(ctx, tx, in.ShippingAddress)
	if err != nil {
		return nil, err
	}
	billingID := shippingID
	if !sameAddress(in.ShippingAddress, in.BillingAddress) {
		billingID, err = insertAddress(ctx, tx, in.BillingAddress)
		if err != nil {
			return nil, err
		}
	}

	const orderQuery = `
INSERT INTO orders (order_tracking_number, total_quantity, total_price, status, customer_id, shipping_address_id, billing_address_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + orderColumns
	var o domain.Order
	if err := tx.QueryRow(ctx, orderQuery,
		in.TrackingNumber,
		in.TotalQuantity,
		in.TotalPrice,
		in.Status,
		customerID,
		shippingID,
		billingID,
	).Scan(
		&o.ID,
		&o.OrderTrackingNumber,
		&o.TotalQuantity,
		&o.TotalPrice,
		&o.Status,
		&o.CustomerID,
		&o.ShippingAddressID,
		&o.BillingAddressID,
		&o.CreatedAt,
	); err != nil {
		r.logger.Printf("order repo: insert order tracking=%s err=%v", in.TrackingNumber, err)
		return nil, mapError(err)
	}

	const itemQuery = `
INSERT INTO order_items (order_id, product_id, image_url, quantity, unit_price)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, order_id, product_id, image_url, quantity, unit_price, created_at
`
	o.Items = make([]domain.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		var saved domain.OrderItem
		if err := tx.QueryRow(ctx, itemQuery,
			o.ID,
			item.ProductID,
			item.ImageURL,
			item.Quantity,
			item.UnitPrice,
		).Scan(
			&saved.ID,
			&saved.OrderID,
			&saved.ProductID,
			&saved.ImageURL,
			&saved.Quantity,
			&saved.UnitPrice,
			&saved.CreatedAt,
		); err != nil {
			r.logger.Printf("order repo: insert item product=%d err=%v", item.ProductID, err)
			return nil, mapError(err)
		}
		o.Items = append(o.Items, saved)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE id = $1
`
	return r.fetchOrder(ctx, q, id)
}

func (r *postgresRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE order_tracking_number = $1
`
	return r.fetchOrder(ctx, q, trackingNumber)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
ORDER BY created_at ASC
`
	return r.queryOrders(ctx, q)
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error) {
	const q = `
SELECT ` + orderColumns + `
FROM orders
WHERE customer_id = $1
ORDER BY created_at ASC
`
	return r.queryOrders(ctx, q, customerID)
}

func (r *postgresRepo) ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const q = `
SELECT id, order_id, product_id, image_url, quantity, unit_price, created_at
FROM order_items
WHERE order_id = $1
ORDER BY id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ImageURL,
			&item.Quantity,
			&item.UnitPrice,
			&item.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $1
WHERE id = $2
RETURNING ` + orderColumns
	return r.scanOrderRow(r.pool.QueryRow(ctx, q, status, id))
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetchOrder(ctx context.Context, q string, arg interface{}) (*domain.Order, error) {
	o, err := r.scanOrderRow(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		return nil, err
	}
	items, err := r.ListItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *postgresRepo) queryOrders(ctx context.Context, q string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID,
			&o.OrderTrackingNumber,
			&o.TotalQuantity,
			&o.TotalPrice,
			&o.Status,
			&o.CustomerID,
			&o.ShippingAddressID,
			&o.BillingAddressID,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *postgresRepo) scanOrderRow(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID,
		&o.OrderTrackingNumber,
		&o.TotalQuantity,
		&o.TotalPrice,
		&o.Status,
		&o.CustomerID,
		&o.ShippingAddressID,
		&o.BillingAddressID,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &o, nil
}

func resolveCustomer(ctx context.Context, tx pgx.Tx, c domain.Customer) (int64, error) {
	email := strings.ToLower(c.Email)

	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM customers WHERE email = $1`, email).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	const q = `
INSERT INTO customers (first_name, last_name, email)
VALUES ($1, $2, $3)
RETURNING id
`
	if err := tx.QueryRow(ctx, q, c.FirstName, c.LastName, email).Scan(&id); err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

func insertAddress(ctx context.Context, tx pgx.Tx, a domain.Address) (int64, error) {
	const q = `
INSERT INTO addresses (street, city, state, country, zip_code)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	var id int64
	if err := tx.QueryRow(ctx, q, a.Street, a.City, a.State, a.Country, a.ZipCode).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// sameAddress reports whether shipping and billing are field-for-field equal,
// in which case one row serves both roles.
func sameAddress(a, b domain.Address) bool {
	return a.Street == b.Street &&
		a.City == b.City &&
		a.State == b.State &&
		a.Country == b.Country &&
		a.ZipCode == b.ZipCode
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrAlreadyExists
	}
	return err
}
