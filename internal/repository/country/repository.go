package country

import (
	"context"

	"ecommerce-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c domain.Country) (*domain.Country, error)
	GetByID(ctx context.Context, id int64) (*domain.Country, error)
	GetByCode(ctx context.Context, code string) (*domain.Country, error)
	GetByName(ctx context.Context, name string) (*domain.Country, error)
	List(ctx context.Context) ([]domain.Country, error)
	Update(ctx context.Context, c domain.Country) (*domain.Country, error)
	Delete(ctx context.Context, id int64) error
}
