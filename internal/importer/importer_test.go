package importer

import (
	"context"
	"strings"
	"testing"

	"ecommerce-backend/internal/domain"
)

type stubProductWriter struct {
	products []domain.Product
	err      error
}

func (s *stubProductWriter) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p.ID = int64(len(s.products) + 1)
	s.products = append(s.products, p)
	return &p, nil
}

type stubCategoryWriter struct {
	categories []domain.ProductCategory
}

func (s *stubCategoryWriter) Upsert(_ context.Context, c domain.ProductCategory) (*domain.ProductCategory, error) {
	for _, existing := range s.categories {
		if existing.CategoryName == c.CategoryName {
			return &existing, nil
		}
	}
	c.ID = int64(len(s.categories) + 1)
	s.categories = append(s.categories, c)
	return &c, nil
}

const catalogCSV = `sku,name,description,unit_price,image_url,units_in_stock,category
BOOK-1000,Crash Course in Go,Learn Go fast,14.99,assets/images/products/books/book-1000.png,100,Books
BOOK-1001,Advanced Techniques in Go,Go deep,19.99,assets/images/products/books/book-1001.png,50,Books
MUG-1000,Coffee Mug,Ceramic mug,18.99,assets/images/products/mugs/mug-1000.png,25,Coffee Mugs
`

func TestRunImportsProducts(t *testing.T) {
	products := &stubProductWriter{}
	categories := &stubCategoryWriter{}

	imp := NewCSVImporter(strings.NewReader(catalogCSV), products, categories)
	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 imported, got %d", count)
	}

	if len(categories.categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories.categories))
	}
	if len(products.products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products.products))
	}

	first := products.products[0]
	if first.SKU != "BOOK-1000" || first.Name != "Crash Course in Go" {
		t.Fatalf("unexpected first product %+v", first)
	}
	if first.UnitPrice.String() != "14.99" {
		t.Fatalf("unexpected price %s", first.UnitPrice)
	}
	if first.UnitsInStock != 100 {
		t.Fatalf("unexpected stock %d", first.UnitsInStock)
	}
	if !first.Active {
		t.Fatal("imported products must be active")
	}

	// Both books share the Books category id.
	if products.products[0].CategoryID != products.products[1].CategoryID {
		t.Fatalf("expected shared category id, got %d and %d",
			products.products[0].CategoryID, products.products[1].CategoryID)
	}
	if products.products[2].CategoryID == products.products[0].CategoryID {
		t.Fatal("mug must not share the books category")
	}
}

func TestRunSkipsBlankLines(t *testing.T) {
	csv := "sku,name,description,unit_price,image_url,units_in_stock,category\n" +
		",,,,,,\n" +
		"BOOK-1000,Crash Course in Go,Learn Go fast,14.99,img.png,10,Books\n"

	products := &stubProductWriter{}
	imp := NewCSVImporter(strings.NewReader(csv), products, &stubCategoryWriter{})
	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 imported, got %d", count)
	}
}

func TestRunRejectsBadRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{"missing name", "BOOK-1000,,desc,14.99,img.png,10,Books"},
		{"missing category", "BOOK-1000,Crash Course,desc,14.99,img.png,10,"},
		{"bad price", "BOOK-1000,Crash Course,desc,cheap,img.png,10,Books"},
		{"zero price", "BOOK-1000,Crash Course,desc,0,img.png,10,Books"},
		{"bad stock", "BOOK-1000,Crash Course,desc,14.99,img.png,lots,Books"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			csv := "sku,name,description,unit_price,image_url,units_in_stock,category\n" + tc.row + "\n"
			products := &stubProductWriter{}
			imp := NewCSVImporter(strings.NewReader(csv), products, &stubCategoryWriter{})
			if _, err := imp.Run(context.Background()); err == nil {
				t.Fatal("expected error")
			}
			if len(products.products) != 0 {
				t.Fatalf("expected no products written, got %d", len(products.products))
			}
		})
	}
}
