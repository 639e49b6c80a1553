package state

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

func (r *postgresRepo) Create(ctx context.Context, s domain.State) (*domain.State, error) {
	const q = `
INSERT INTO states (code, name, country_id)
VALUES ($1, $2, $3)
RETURNING id, code, name, country_id
`
	return scanState(r.pool.QueryRow(ctx, q, s.Code, s.Name, s.CountryID))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.State, error) {
	const q = `
SELECT id, code, name, country_id
FROM states
WHERE id = $1
`
	return scanState(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.State, error) {
	const q = `
SELECT id, code, name, country_id
FROM states
ORDER BY name ASC
`
	return r.queryStates(ctx, q)
}

func (r *postgresRepo) ListByCountryCode(ctx context.Context, code string) ([]domain.State, error) {
	const q = `
SELECT s.id, s.code, s.name, s.country_id
FROM states s
JOIN countries c ON c.id = s.country_id
WHERE c.code = upper($1)
ORDER BY s.name ASC
`
	return r.queryStates(ctx, q, code)
}

func (r *postgresRepo) GetByNameAndCountry(ctx context.Context, name string, countryID int64) (*domain.State, error) {
	const q = `
SELECT id, code, name, country_id
FROM states
WHERE country_id = $1 AND (lower(name) = lower($2) OR lower(code) = lower($2))
LIMIT 1
`
	return scanState(r.pool.QueryRow(ctx, q, countryID, name))
}

func (r *postgresRepo) Update(ctx context.Context, s domain.State) (*domain.State, error) {
	const q = `
UPDATE states
SET code = $1, name = $2, country_id = $3
WHERE id = $4
RETURNING id, code, name, country_id
`
	return scanState(r.pool.QueryRow(ctx, q, s.Code, s.Name, s.CountryID, s.ID))
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM states WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryStates(ctx context.Context, q string, args ...interface{}) ([]domain.State, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.State
	for rows.Next() {
		var s domain.State
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.CountryID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanState(row pgx.Row) (*domain.State, error) {
	var s domain.State
	if err := row.Scan(&s.ID, &s.Code, &s.Name, &s.CountryID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &s, nil
}
