package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ecommerce-backend/internal/domain"
	"github.com/shopspring/decimal"
)

type ProductWriter interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

type CategoryWriter interface {
	Upsert(ctx context.Context, c domain.ProductCategory) (*domain.ProductCategory, error)
}

// CSVImporter reads a product catalog CSV and inserts/updates products,
// creating categories on first sight.
//
// Expected columns: sku, name, description, unit_price, image_url,
// units_in_stock, category.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryWriter
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		products:   products,
		categories: categories,
	}
}

type csvRow struct {
	SKU      string
	Name     string
	Desc     string
	Price    decimal.Decimal
	ImageURL string
	Stock    int
	Category string
}

// Run parses CSV rows and upserts one product per row.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	// Category names seen so far, mapped to their row ids.
	categoryIDs := make(map[string]int64)

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}

		categoryID, ok := categoryIDs[row.Category]
		if !ok {
			cat, err := i.categories.Upsert(ctx, domain.ProductCategory{CategoryName: row.Category})
			if err != nil {
				return imported, fmt.Errorf("upsert category %q: %w", row.Category, err)
			}
			categoryID = cat.ID
			categoryIDs[row.Category] = categoryID
		}

		if _, err := i.products.Upsert(ctx, domain.Product{
			SKU:          row.SKU,
			Name:         row.Name,
			Description:  row.Desc,
			UnitPrice:    row.Price,
			ImageURL:     row.ImageURL,
			Active:       true,
			UnitsInStock: row.Stock,
			CategoryID:   categoryID,
		}); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", row.SKU, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	row := csvRow{
		SKU:      field("sku"),
		Name:     field("name"),
		Desc:     field("description"),
		ImageURL: field("image_url"),
		Category: field("category"),
	}
	if row.SKU == "" && row.Name == "" {
		return nil, nil // blank line
	}
	if row.SKU == "" || row.Name == "" || row.Category == "" {
		return nil, fmt.Errorf("invalid product row (missing required fields) for sku %q", row.SKU)
	}

	price, err := decimal.NewFromString(field("unit_price"))
	if err != nil {
		return nil, fmt.Errorf("invalid unit_price for sku %q: %w", row.SKU, err)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("unit_price must be positive for sku %q", row.SKU)
	}
	row.Price = price

	if raw := field("units_in_stock"); raw != "" {
		stock, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid units_in_stock for sku %q: %w", row.SKU, err)
		}
		row.Stock = stock
	}

	return &row, nil
}
