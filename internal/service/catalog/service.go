package catalog

import (
	"context"

	"ecommerce-backend/internal/domain"
)

// Service is the read side of the product catalog consumed by the
// storefront while building the purchase form.
type Service struct {
	products   productRepo
	categories categoryRepo
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.ProductCategory, error)
}

func New(products productRepo, categories categoryRepo) *Service {
	return &Service{products: products, categories: categories}
}

func (s *Service) ListProducts(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	if categoryID > 0 {
		return s.products.ListByCategory(ctx, categoryID)
	}
	return s.products.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	return s.categories.List(ctx)
}
