package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ecommerce-backend/internal/domain"
	orderrepo "ecommerce-backend/internal/repository/order"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service orchestrates a single purchase submission: validate the payload,
// resolve reference data, recompute totals, and persist the whole graph in
// one transaction.
type Service struct {
	orders    orderRepo
	products  productRepo
	countries countryRepo
	states    stateRepo
}

type orderRepo interface {
	SavePurchase(ctx context.Context, in orderrepo.SavePurchaseInput) (*domain.Order, error)
}

type productRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
}

type countryRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Country, error)
	GetByName(ctx context.Context, name string) (*domain.Country, error)
}

type stateRepo interface {
	GetByNameAndCountry(ctx context.Context, name string, countryID int64) (*domain.State, error)
}

func New(orders orderRepo, products productRepo, countries countryRepo, states stateRepo) *Service {
	return &Service{
		orders:    orders,
		products:  products,
		countries: countries,
		states:    states,
	}
}

// CustomerInput mirrors the customer section of the checkout form.
type CustomerInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// AddressInput mirrors incoming address payloads.
type AddressInput struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// OrderInput carries the client-computed totals. They are accepted for
// wire compatibility with the storefront but never trusted: the service
// recomputes both from the order items.
type OrderInput struct {
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	TotalQuantity int             `json:"totalQuantity"`
}

// OrderItemInput is one line of the purchase.
type OrderItemInput struct {
	ProductID int64           `json:"productId"`
	ImageURL  string          `json:"imageUrl"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// PurchaseInput is the transient composite payload submitted at checkout.
// It exists only for the duration of the request and is never stored as a
// single artifact.
type PurchaseInput struct {
	Customer        CustomerInput    `json:"customer"`
	ShippingAddress AddressInput     `json:"shippingAddress"`
	BillingAddress  AddressInput     `json:"billingAddress"`
	Order           OrderInput       `json:"order"`
	OrderItems      []OrderItemInput `json:"orderItems"`
}

// PurchaseResponse confirms a placed order.
type PurchaseResponse struct {
	OrderTrackingNumber string `json:"orderTrackingNumber"`
}

// PlaceOrder validates the purchase, resolves its country/state and product
// references, and persists the graph atomically. The returned tracking
// number is generated here and never derived from client input.
func (s *Service) PlaceOrder(ctx context.Context, in PurchaseInput) (*PurchaseResponse, error) {
	if err := validatePurchase(in); err != nil {
		return nil, err
	}

	if err := s.resolveAddress(ctx, "shippingAddress", in.ShippingAddress); err != nil {
		return nil, err
	}
	if err := s.resolveAddress(ctx, "billingAddress", in.BillingAddress); err != nil {
		return nil, err
	}

	if err := s.checkProducts(ctx, in.OrderItems); err != nil {
		return nil, err
	}

	totalQuantity := 0
	totalPrice := decimal.Zero
	items := make([]domain.OrderItem, 0, len(in.OrderItems))
	for _, item := range in.OrderItems {
		totalQuantity += item.Quantity
		totalPrice = totalPrice.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	totalPrice = totalPrice.Round(2)

	saved, err := s.orders.SavePurchase(ctx, orderrepo.SavePurchaseInput{
		Customer: domain.Customer{
			FirstName: strings.TrimSpace(in.Customer.FirstName),
			LastName:  strings.TrimSpace(in.Customer.LastName),
			Email:     strings.TrimSpace(in.Customer.Email),
		},
		ShippingAddress: toAddress(in.ShippingAddress),
		BillingAddress:  toAddress(in.BillingAddress),
		TrackingNumber:  uuid.New().String(),
		Status:          domain.OrderStatusCreated,
		TotalQuantity:   totalQuantity,
		TotalPrice:      totalPrice,
		Items:           items,
	})
	if err != nil {
		return nil, fmt.Errorf("save purchase: %w", err)
	}

	return &PurchaseResponse{OrderTrackingNumber: saved.OrderTrackingNumber}, nil
}

func validatePurchase(in PurchaseInput) error {
	if strings.TrimSpace(in.Customer.Email) == "" {
		return domain.NewValidationError("customer.email", "required")
	}
	if strings.TrimSpace(in.Customer.FirstName) == "" {
		return domain.NewValidationError("customer.firstName", "required")
	}
	if strings.TrimSpace(in.Customer.LastName) == "" {
		return domain.NewValidationError("customer.lastName", "required")
	}
	if err := validateAddress("shippingAddress", in.ShippingAddress); err != nil {
		return err
	}
	if err := validateAddress("billingAddress", in.BillingAddress); err != nil {
		return err
	}
	if len(in.OrderItems) == 0 {
		return domain.NewValidationError("orderItems", "at least one item required")
	}
	for i, item := range in.OrderItems {
		if item.ProductID <= 0 {
			return domain.NewValidationError(fmt.Sprintf("orderItems[%d].productId", i), "required")
		}
		if item.Quantity <= 0 {
			return domain.NewValidationError(fmt.Sprintf("orderItems[%d].quantity", i), "must be positive")
		}
		if !item.UnitPrice.IsPositive() {
			return domain.NewValidationError(fmt.Sprintf("orderItems[%d].unitPrice", i), "must be positive")
		}
	}
	return nil
}

func validateAddress(field string, a AddressInput) error {
	for _, part := range []struct {
		name  string
		value string
	}{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"country", a.Country},
		{"zipCode", a.ZipCode},
	} {
		if strings.TrimSpace(part.value) == "" {
			return domain.NewValidationError(field+"."+part.name, "required")
		}
	}
	return nil
}

// resolveAddress verifies the address references an existing country and a
// state belonging to it. The storefront submits either the ISO code or the
// display name, so both are accepted.
func (s *Service) resolveAddress(ctx context.Context, field string, a AddressInput) error {
	country, err := s.resolveCountry(ctx, a.Country)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%s.country %q: %w", field, a.Country, domain.ErrNotFound)
		}
		return fmt.Errorf("resolve %s country: %w", field, err)
	}

	if _, err := s.states.GetByNameAndCountry(ctx, a.State, country.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%s.state %q: %w", field, a.State, domain.ErrNotFound)
		}
		return fmt.Errorf("resolve %s state: %w", field, err)
	}
	return nil
}

func (s *Service) resolveCountry(ctx context.Context, value string) (*domain.Country, error) {
	value = strings.TrimSpace(value)
	if len(value) == 2 {
		return s.countries.GetByCode(ctx, value)
	}
	return s.countries.GetByName(ctx, value)
}

// checkProducts batch-fetches every referenced product and rejects the
// purchase when one is missing or inactive.
func (s *Service) checkProducts(ctx context.Context, items []OrderItemInput) error {
	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}

	fetched, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("get products: %w", err)
	}
	byID := make(map[int64]domain.Product, len(fetched))
	for _, p := range fetched {
		byID[p.ID] = p
	}

	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return fmt.Errorf("product %d: %w", item.ProductID, domain.ErrNotFound)
		}
		if !p.Active {
			return domain.NewValidationError("orderItems", fmt.Sprintf("product %d is not available", item.ProductID))
		}
	}
	return nil
}

func toAddress(a AddressInput) domain.Address {
	return domain.Address{
		Street:  strings.TrimSpace(a.Street),
		City:    strings.TrimSpace(a.City),
		State:   strings.TrimSpace(a.State),
		Country: strings.TrimSpace(a.Country),
		ZipCode: strings.TrimSpace(a.ZipCode),
	}
}
