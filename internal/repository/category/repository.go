package category

import (
	"context"

	"ecommerce-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c domain.ProductCategory) (*domain.ProductCategory, error)
	Upsert(ctx context.Context, c domain.ProductCategory) (*domain.ProductCategory, error)
	GetByID(ctx context.Context, id int64) (*domain.ProductCategory, error)
	List(ctx context.Context) ([]domain.ProductCategory, error)
	Update(ctx context.Context, c domain.ProductCategory) (*domain.ProductCategory, error)
	Delete(ctx context.Context, id int64) error
}
