package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an immutable order header created exactly once per checkout.
// Totals are always computed server-side from the order items.
type Order struct {
	ID                  int64           `json:"id"`
	OrderTrackingNumber string          `json:"orderTrackingNumber"`
	TotalQuantity       int             `json:"totalQuantity"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	Status              string          `json:"status"`
	CustomerID          int64           `json:"customerId"`
	ShippingAddressID   int64           `json:"shippingAddressId"`
	BillingAddressID    int64           `json:"billingAddressId"`
	CreatedAt           time.Time       `json:"createdAt"`
	Items               []OrderItem     `json:"items,omitempty"`
}

// OrderItem is a single line of an order, unique per (order, product).
type OrderItem struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"orderId"`
	ProductID int64           `json:"productId"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	CreatedAt time.Time       `json:"createdAt"`
}

// OrderStatusCreated is the single status this workflow writes.
const OrderStatusCreated = "created"
