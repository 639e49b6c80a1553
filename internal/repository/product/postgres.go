package product

import (
	"context"
	"errors"
	"io"
	"log"

	"ecommerce-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const productColumns = `id, sku, name, description, unit_price, image_url, active, units_in_stock, category_id, created_at`

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

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (sku, name, description, unit_price, image_url, active, units_in_stock, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + productColumns
	return r.scanProduct(r.pool.QueryRow(ctx, q,
		p.SKU, p.Name, p.Description, p.UnitPrice, p.ImageURL, p.Active, p.UnitsInStock, p.CategoryID))
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (sku, name, description, unit_price, image_url, active, units_in_stock, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (sku) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    unit_price = EXCLUDED.unit_price,
    image_url = EXCLUDED.image_url,
    active = EXCLUDED.active,
    units_in_stock = EXCLUDED.units_in_stock,
    category_id = EXCLUDED.category_id
RETURNING ` + productColumns
	return r.scanProduct(r.pool.QueryRow(ctx, q,
		p.SKU, p.Name, p.Description, p.UnitPrice, p.ImageURL, p.Active, p.UnitsInStock, p.CategoryID))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	return r.scanProduct(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE sku = $1
LIMIT 1
`
	return r.scanProduct(r.pool.QueryRow(ctx, q, sku))
}

func (r *postgresRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = ANY($1)
`
	return r.queryProducts(ctx, q, ids)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
ORDER BY name ASC
`
	return r.queryProducts(ctx, q)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE category_id = $1
ORDER BY name ASC
`
	return r.queryProducts(ctx, q, categoryID)
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET sku = $1, name = $2, description = $3, unit_price = $4, image_url = $5,
    active = $6, units_in_stock = $7, category_id = $8
WHERE id = $9
RETURNING ` + productColumns
	return r.scanProduct(r.pool.QueryRow(ctx, q,
		p.SKU, p.Name, p.Description, p.UnitPrice, p.ImageURL, p.Active, p.UnitsInStock, p.CategoryID, p.ID))
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryProducts(ctx context.Context, q string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.SKU,
			&p.Name,
			&p.Description,
			&p.UnitPrice,
			&p.ImageURL,
			&p.Active,
			&p.UnitsInStock,
			&p.CategoryID,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *postgresRepo) scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.SKU,
		&p.Name,
		&p.Description,
		&p.UnitPrice,
		&p.ImageURL,
		&p.Active,
		&p.UnitsInStock,
		&p.CategoryID,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("product repo: scan error=%v", err)
		return nil, err
	}
	return &p, nil
}
