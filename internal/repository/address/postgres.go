package address

import (
	"context"
	"errors"

	"ecommerce-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
INSERT INTO addresses (street, city, state, country, zip_code)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, street, city, state, country, zip_code, created_at
`
	return scanAddress(r.pool.QueryRow(ctx, q, a.Street, a.City, a.State, a.Country, a.ZipCode))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	const q = `
SELECT id, street, city, state, country, zip_code, created_at
FROM addresses
WHERE id = $1
`
	return scanAddress(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Address, error) {
	const q = `
SELECT id, street, city, state, country, zip_code, created_at
FROM addresses
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.City, &a.State, &a.Country, &a.ZipCode, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, a domain.Address) (*domain.Address, error) {
	const q = `
UPDATE addresses
SET street = $1, city = $2, state = $3, country = $4, zip_code = $5
WHERE id = $6
RETURNING id, street, city, state, country, zip_code, created_at
`
	return scanAddress(r.pool.QueryRow(ctx, q, a.Street, a.City, a.State, a.Country, a.ZipCode, a.ID))
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAddress(row pgx.Row) (*domain.Address, error) {
	var a domain.Address
	if err := row.Scan(&a.ID, &a.Street, &a.City, &a.State, &a.Country, &a.ZipCode, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
