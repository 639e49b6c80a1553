package customer

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

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (first_name, last_name, email)
VALUES ($1, $2, $3)
RETURNING id, first_name, last_name, email, created_at
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, c.FirstName, c.LastName, strings.ToLower(c.Email)))
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const q = `
SELECT id, first_name, last_name, email, created_at
FROM customers
WHERE id = $1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `
SELECT id, first_name, last_name, email, created_at
FROM customers
WHERE email = lower($1)
LIMIT 1
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Customer, error) {
	const q = `
SELECT id, first_name, last_name, email, created_at
FROM customers
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
UPDATE customers
SET first_name = $1, last_name = $2, email = $3
WHERE id = $4
RETURNING id, first_name, last_name, email, created_at
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, c.FirstName, c.LastName, strings.ToLower(c.Email), c.ID))
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	return &c, nil
}
