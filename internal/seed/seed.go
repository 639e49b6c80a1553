package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type countrySeed struct {
	Code   string
	Name   string
	States []stateSeed
}

type stateSeed struct {
	Code string
	Name string
}

type productSeed struct {
	SKU       string
	Name      string
	Desc      string
	UnitPrice decimal.Decimal
	ImageURL  string
	Stock     int
	Category  string
}

// Apply inserts reference data and demo products for manual testing. It is
// idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	countries := []countrySeed{
		{
			Code: "US", Name: "United States",
			States: []stateSeed{
				{Code: "CA", Name: "California"},
				{Code: "NY", Name: "New York"},
				{Code: "TX", Name: "Texas"},
				{Code: "WA", Name: "Washington"},
			},
		},
		{
			Code: "CA", Name: "Canada",
			States: []stateSeed{
				{Code: "BC", Name: "British Columbia"},
				{Code: "ON", Name: "Ontario"},
				{Code: "QC", Name: "Quebec"},
			},
		},
		{
			Code: "DE", Name: "Germany",
			States: []stateSeed{
				{Code: "BY", Name: "Bavaria"},
				{Code: "BE", Name: "Berlin"},
				{Code: "HE", Name: "Hesse"},
			},
		},
		{
			Code: "IN", Name: "India",
			States: []stateSeed{
				{Code: "KA", Name: "Karnataka"},
				{Code: "MH", Name: "Maharashtra"},
				{Code: "TN", Name: "Tamil Nadu"},
			},
		},
	}

	for _, c := range countries {
		if err := upsertCountry(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert country %s: %w", c.Code, err)
		}
	}

	products := []productSeed{
		{
			SKU:       "BOOK-TECH-1000",
			Name:      "Crash Course in Go",
			Desc:      "Learn how to build servers the practical way",
			UnitPrice: decimal.NewFromFloat(14.99),
			ImageURL:  "assets/images/products/books/book-1000.png",
			Stock:     100,
			Category:  "Books",
		},
		{
			SKU:       "BOOK-TECH-1001",
			Name:      "Become a Guru in JavaScript",
			Desc:      "Everything you need to know about the language",
			UnitPrice: decimal.NewFromFloat(20.99),
			ImageURL:  "assets/images/products/books/book-1001.png",
			Stock:     100,
			Category:  "Books",
		},
		{
			SKU:       "COFFEEMUG-1000",
			Name:      "Coffee Mug Express",
			Desc:      "Ceramic mug with shop logo",
			UnitPrice: decimal.NewFromFloat(18.99),
			ImageURL:  "assets/images/products/coffeemugs/coffeemug-1000.png",
			Stock:     100,
			Category:  "Coffee Mugs",
		},
		{
			SKU:       "MOUSEPAD-1000",
			Name:      "Mouse Pad Deluxe",
			Desc:      "Smooth surface mouse pad",
			UnitPrice: decimal.NewFromFloat(17.99),
			ImageURL:  "assets/images/products/mousepads/mousepad-1000.png",
			Stock:     100,
			Category:  "Mouse Pads",
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}

	return nil
}

func upsertCountry(ctx context.Context, pool *pgxpool.Pool, c countrySeed) error {
	const q = `
INSERT INTO countries (code, name)
VALUES ($1, $2)
ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
RETURNING id
`
	var countryID int64
	if err := pool.QueryRow(ctx, q, c.Code, c.Name).Scan(&countryID); err != nil {
		return err
	}

	const stateQ = `
INSERT INTO states (code, name, country_id)
VALUES ($1, $2, $3)
ON CONFLICT (country_id, name) DO UPDATE SET code = EXCLUDED.code
`
	for _, s := range c.States {
		if _, err := pool.Exec(ctx, stateQ, s.Code, s.Name, countryID); err != nil {
			return fmt.Errorf("state %s: %w", s.Name, err)
		}
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const categoryQ = `
INSERT INTO product_categories (category_name)
VALUES ($1)
ON CONFLICT (category_name) DO UPDATE SET category_name = EXCLUDED.category_name
RETURNING id
`
	var categoryID int64
	if err := pool.QueryRow(ctx, categoryQ, p.Category).Scan(&categoryID); err != nil {
		return fmt.Errorf("category %s: %w", p.Category, err)
	}

	const q = `
INSERT INTO products (sku, name, description, unit_price, image_url, active, units_in_stock, category_id)
VALUES ($1, $2, $3, $4, $5, TRUE, $6, $7)
ON CONFLICT (sku) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    unit_price = EXCLUDED.unit_price,
    image_url = EXCLUDED.image_url,
    units_in_stock = EXCLUDED.units_in_stock,
    category_id = EXCLUDED.category_id
`
	_, err := pool.Exec(ctx, q, p.SKU, p.Name, p.Desc, p.UnitPrice, p.ImageURL, p.Stock, categoryID)
	return err
}
