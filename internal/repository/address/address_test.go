package address

import (
	"context"
	"errors"
	"os"
	"testing"

	"ecommerce-backend/internal/db"
	"ecommerce-backend/internal/domain"
	"ecommerce-backend/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, addresses RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}

func TestAddressCRUD(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)

	created, err := repo.Create(ctx, domain.Address{
		Street:  "100 Main St",
		City:    "New York",
		State:   "New York",
		Country: "US",
		ZipCode: "10001",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Street != "100 Main St" || got.ZipCode != "10001" {
		t.Fatalf("unexpected address %+v", got)
	}

	got.City = "Brooklyn"
	updated, err := repo.Update(ctx, *got)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.City != "Brooklyn" {
		t.Fatalf("unexpected city %q", updated.City)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 address, got %d", len(all))
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
