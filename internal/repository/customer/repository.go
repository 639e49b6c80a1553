package customer

import (
	"context"

	"ecommerce-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
