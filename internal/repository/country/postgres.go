package country

import (
	"context"
	"errors"
	"strings"

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

func (r *postgresRepo) Create(ctx context.Context, c domain.Country) (*domain.Country, error) {
	const q = `
INSERT INTO countries (code, name)
VALUES ($1, $2)
RETURNING id, code, name
`
	return scanCountry(r.pool.QueryRow(ctx, q, strings.ToUpper(c.Code), c.Name))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Country, error) {
	const q = `
SELECT id, code, name
FROM countries
WHERE id = $1
`
	return scanCountry(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Country, error) {
	const q = `
SELECT id, code, name
FROM countries
WHERE code = upper($1)
`
	return scanCountry(r.pool.QueryRow(ctx, q, code))
}

func (r *postgresRepo) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	const q = `
SELECT id, code, name
FROM countries
WHERE lower(name) = lower($1)
LIMIT 1
`
	return scanCountry(r.pool.QueryRow(ctx, q, name))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Country, error) {
	const q = `
SELECT id, code, name
FROM countries
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Country
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Code, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Country) (*domain.Country, error) {
	const q = `
UPDATE countries
SET code = $1, name = $2
WHERE id = $3
RETURNING id, code, name
`
	return scanCountry(r.pool.QueryRow(ctx, q, strings.ToUpper(c.Code), c.Name, c.ID))
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM countries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCountry(row pgx.Row) (*domain.Country, error) {
	var c domain.Country
	if err := row.Scan(&c.ID, &c.Code, &c.Name); err != nil {
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
