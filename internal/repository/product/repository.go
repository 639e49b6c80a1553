package product

import (
	"context"

	"ecommerce-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetBySKU(ctx context.Context, sku string) (*domain.Product, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
