package order

import (
	"context"

	"ecommerce-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// SavePurchaseInput carries the full purchase graph persisted in one
// transaction. Totals and the tracking number are computed by the checkout
// service before the write.
type SavePurchaseInput struct {
	Customer        domain.Customer
	ShippingAddress domain.Address
	BillingAddress  domain.Address
	TrackingNumber  string
	Status          string
	TotalQuantity   int
	TotalPrice      decimal.Decimal
	Items           []domain.OrderItem
}

type Repository interface {
	// SavePurchase atomically persists the purchase: the customer is
	// resolved by email or inserted, both addresses are inserted, then the
	// order header and every item. Either the whole graph commits or none
	// of it does.
	SavePurchase(ctx context.Context, in SavePurchaseInput) (*domain.Order, error)

	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Order, error)
	ListItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}
