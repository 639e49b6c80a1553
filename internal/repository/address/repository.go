package address

import (
	"context"

	"ecommerce-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, a domain.Address) (*domain.Address, error)
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
	List(ctx context.Context) ([]domain.Address, error)
	Update(ctx context.Context, a domain.Address) (*domain.Address, error)
	Delete(ctx context.Context, id int64) error
}
