package category

import (
	"context"
	"errors"

	"ecommerce-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.ProductCategory) (*domain.ProductCategory, error) {
	const q = `
INSERT INTO product_categories (category_name)
VALUES ($1)
RETURNING id, category_name
`
	return scanCategory(r.pool.QueryRow(ctx, q, c.CategoryName))
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.ProductCategory) (*domain.ProductCategory, error) {
	const q = `
INSERT INTO product_categories (category_name)
VALUES ($1)
ON CONFLICT (category_name) DO UPDATE SET category_name = EXCLUDED.category_name
RETURNING id, category_name
`
	return scanCategory(r.pool.QueryRow(ctx, q, c.CategoryName))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.ProductCategory, error) {
	const q = `
SELECT id, category_name
FROM product_categories
WHERE id = $1
`
	return scanCategory(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.ProductCategory, error) {
	const q = `
SELECT id, category_name
FROM product_categories
ORDER BY category_name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ProductCategory
	for rows.Next() {
		var c domain.ProductCategory
		if err := rows.Scan(&c.ID, &c.CategoryName); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, c domain.ProductCategory) (*domain.ProductCategory, error) {
	const q = `
UPDATE product_categories
SET category_name = $1
WHERE id = $2
RETURNING id, category_name
`
	return scanCategory(r.pool.QueryRow(ctx, q, c.CategoryName, c.ID))
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM product_categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCategory(row pgx.Row) (*domain.ProductCategory, error) {
	var c domain.ProductCategory
	if err := row.Scan(&c.ID, &c.CategoryName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}
