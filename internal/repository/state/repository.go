package state

import (
	"context"

	"ecommerce-backend/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, s domain.State) (*domain.State, error)
	GetByID(ctx context.Context, id int64) (*domain.State, error)
	List(ctx context.Context) ([]domain.State, error)
	ListByCountryCode(ctx context.Context, code string) ([]domain.State, error)
	GetByNameAndCountry(ctx context.Context, name string, countryID int64) (*domain.State, error)
	Update(ctx context.Context, s domain.State) (*domain.State, error)
	Delete(ctx context.Context, id int64) error
}
