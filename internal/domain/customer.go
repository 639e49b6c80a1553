package domain

import "time"

// Customer is the buyer behind one or more orders. Customers are resolved by
// email at checkout, so resubmitting a purchase reuses the existing row.
type Customer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Address is a shipping or billing destination. The same row may serve both
// roles for a single order. State and country are stored as the display
// strings the storefront submits, validated against the reference tables
// before the purchase is persisted.
type Address struct {
	ID        int64     `json:"id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Country   string    `json:"country"`
	ZipCode   string    `json:"zipCode"`
	CreatedAt time.Time `json:"createdAt"`
}
