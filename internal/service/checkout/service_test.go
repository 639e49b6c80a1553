package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ecommerce-backend/internal/domain"
	orderrepo "ecommerce-backend/internal/repository/order"
	"github.com/shopspring/decimal"
)

type stubOrderRepo struct {
	saved []orderrepo.SavePurchaseInput
	err   error
}

func (s *stubOrderRepo) SavePurchase(_ context.Context, in orderrepo.SavePurchaseInput) (*domain.Order, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.saved = append(s.saved, in)
	return &domain.Order{
		ID:                  int64(len(s.saved)),
		OrderTrackingNumber: in.TrackingNumber,
		TotalQuantity:       in.TotalQuantity,
		TotalPrice:          in.TotalPrice,
		Status:              in.Status,
	}, nil
}

type stubProductRepo struct {
	products []domain.Product
	err      error
}

func (s *stubProductRepo) GetByIDs(_ context.Context, ids []int64) ([]domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []domain.Product
	for _, p := range s.products {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

type stubCountryRepo struct {
	countries []domain.Country
}

func (s *stubCountryRepo) GetByCode(_ context.Context, code string) (*domain.Country, error) {
	for i := range s.countries {
		if strings.EqualFold(s.countries[i].Code, code) {
			return &s.countries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubCountryRepo) GetByName(_ context.Context, name string) (*domain.Country, error) {
	for i := range s.countries {
		if strings.EqualFold(s.countries[i].Name, name) {
			return &s.countries[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

type stubStateRepo struct {
	states []domain.State
}

func (s *stubStateRepo) GetByNameAndCountry(_ context.Context, name string, countryID int64) (*domain.State, error) {
	for i := range s.states {
		if s.states[i].CountryID == countryID && strings.EqualFold(s.states[i].Name, name) {
			return &s.states[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func testService(orders *stubOrderRepo) *Service {
	return New(
		orders,
		&stubProductRepo{products: []domain.Product{
			{ID: 1, SKU: "SKU1", Name: "Book", Active: true},
			{ID: 2, SKU: "SKU2", Name: "Mug", Active: true},
			{ID: 3, SKU: "SKU3", Name: "Retired", Active: false},
		}},
		&stubCountryRepo{countries: []domain.Country{{ID: 10, Code: "US", Name: "United States"}}},
		&stubStateRepo{states: []domain.State{{ID: 20, Name: "New York", CountryID: 10}}},
	)
}

func validPurchase() PurchaseInput {
	addr := AddressInput{
		Street:  "100 Main St",
		City:    "New York",
		State:   "New York",
		Country: "US",
		ZipCode: "10001",
	}
	return PurchaseInput{
		Customer:        CustomerInput{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"},
		ShippingAddress: addr,
		BillingAddress:  addr,
		OrderItems: []OrderItemInput{
			{ProductID: 1, Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
		},
	}
}

func TestPlaceOrderComputesTotals(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := testService(orders)

	in := validPurchase()
	// Client totals are bogus on purpose; the service must ignore them.
	in.Order = OrderInput{TotalPrice: decimal.RequireFromString("1.00"), TotalQuantity: 99}
	in.OrderItems = append(in.OrderItems, OrderItemInput{
		ProductID: 2, Quantity: 3, UnitPrice: decimal.RequireFromString("5.50"),
	})

	resp, err := svc.PlaceOrder(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.OrderTrackingNumber == "" {
		t.Fatalf("expected tracking number")
	}
	if len(orders.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(orders.saved))
	}
	saved := orders.saved[0]
	if saved.TotalQuantity != 5 {
		t.Fatalf("expected total quantity 5, got %d", saved.TotalQuantity)
	}
	if want := decimal.RequireFromString("36.50"); !saved.TotalPrice.Equal(want) {
		t.Fatalf("expected total price %s, got %s", want, saved.TotalPrice)
	}
	if saved.Status != domain.OrderStatusCreated {
		t.Fatalf("unexpected status %q", saved.Status)
	}
	if len(saved.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(saved.Items))
	}
}

func TestPlaceOrderTrackingNumbersAreUnique(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := testService(orders)

	first, err := svc.PlaceOrder(context.Background(), validPurchase())
	if err != nil {
		t.Fatalf("first order: %v", err)
	}
	second, err := svc.PlaceOrder(context.Background(), validPurchase())
	if err != nil {
		t.Fatalf("second order: %v", err)
	}
	if first.OrderTrackingNumber == second.OrderTrackingNumber {
		t.Fatalf("tracking numbers must differ, both were %s", first.OrderTrackingNumber)
	}
}

func TestPlaceOrderValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*PurchaseInput)
	}{
		{"missing email", func(in *PurchaseInput) { in.Customer.Email = " " }},
		{"missing first name", func(in *PurchaseInput) { in.Customer.FirstName = "" }},
		{"missing street", func(in *PurchaseInput) { in.ShippingAddress.Street = "" }},
		{"missing billing zip", func(in *PurchaseInput) { in.BillingAddress.ZipCode = "" }},
		{"no items", func(in *PurchaseInput) { in.OrderItems = nil }},
		{"zero quantity", func(in *PurchaseInput) { in.OrderItems[0].Quantity = 0 }},
		{"negative quantity", func(in *PurchaseInput) { in.OrderItems[0].Quantity = -1 }},
		{"zero unit price", func(in *PurchaseInput) { in.OrderItems[0].UnitPrice = decimal.Zero }},
		{"missing product id", func(in *PurchaseInput) { in.OrderItems[0].ProductID = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := &stubOrderRepo{}
			svc := testService(orders)

			in := validPurchase()
			tc.mutate(&in)

			_, err := svc.PlaceOrder(context.Background(), in)
			var vErr *domain.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(orders.saved) != 0 {
				t.Fatalf("expected no writes, got %d", len(orders.saved))
			}
		})
	}
}

func TestPlaceOrderUnknownCountry(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := testService(orders)

	in := validPurchase()
	in.ShippingAddress.Country = "Narnia"

	_, err := svc.PlaceOrder(context.Background(), in)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(orders.saved) != 0 {
		t.Fatalf("expected no writes")
	}
}

func TestPlaceOrderUnknownState(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := testService(orders)

	in := validPurchase()
	in.BillingAddress.State = "Atlantis"

	_, err := svc.PlaceOrder(context.Background(), in)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(orders.saved) != 0 {
		t.Fatalf("expected no writes")
	}
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := testService(orders)

	in := validPurchase()
	in.OrderItems[0].ProductID = 42

	_, err := svc.PlaceOrder(context.Background(), in)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(orders.saved) != 0 {
		t.Fatalf("expected no writes")
	}
}

func TestPlaceOrderInactiveProduct(t *testing.T) {
	orders := &stubOrderRepo{}
	svc := testService(orders)

	in := validPurchase()
	in.OrderItems[0].ProductID = 3

	_, err := svc.PlaceOrder(context.Background(), in)
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderRepoError(t *testing.T) {
	orders := &stubOrderRepo{err: errors.New("boom")}
	svc := testService(orders)

	_, err := svc.PlaceOrder(context.Background(), validPurchase())
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected repo error, got %v", err)
	}
}
