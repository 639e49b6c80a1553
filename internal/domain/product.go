package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog row the storefront lists and order items reference.
type Product struct {
	ID           int64           `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Active       bool            `json:"active"`
	UnitsInStock int             `json:"unitsInStock"`
	CategoryID   int64           `json:"categoryId"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ProductCategory groups products for the storefront menu.
type ProductCategory struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"categoryName"`
}
