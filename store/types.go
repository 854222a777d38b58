// Package store holds well-formed record types: every property binds to
// exactly one getter and at most one setter.
package store

import (
	"strings"
	"time"

	"beanpath/errors"
)

// 1. Product represents an individual item available for sale.
// Tags are kept normalized behind accessors.
type Product struct {
	ID         int64     `json:"id"`
	SKU        string    `json:"sku"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	Inventory  int       `json:"inventory_count"`
	CreatedAt  time.Time `json:"created_at"`

	tags []string
}

func (p *Product) GetTags() []string { return p.tags }

func (p *Product) SetTags(tags []string) {
	p.tags = p.tags[:0]
	for _, t := range tags {
		p.tags = append(p.tags, strings.ToLower(t))
	}
}

// IsAvailable is a read-only property.
func (p *Product) IsAvailable() bool { return p.Inventory > 0 }

// 2. Customer represents the user placing orders.
// Both GetActive and IsActive exist; the boolean "Is" getter wins.
type Customer struct {
	ID       int64    `json:"id"`
	Email    string   `json:"email"`
	FullName string   `json:"full_name"`
	Address  *Address `json:"address"`

	active bool
}

func (c *Customer) GetActive() bool   { return c.active }
func (c *Customer) IsActive() bool    { return c.active }
func (c *Customer) SetActive(on bool) { c.active = on }

// 3. Address is reached through Customer.Address and created on demand.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// 4. Audit is embedded by Order; its fields and methods are promoted.
type Audit struct {
	CreatedBy string    `json:"created_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetRevision is declared on Audit and read through Order.
func (a *Audit) GetRevision() int { return a.UpdatedAt.Second() }

// 5. Order represents a transaction made by a customer.
type Order struct {
	Audit

	ID         int64             `json:"id"`
	Customer   *Customer         `json:"customer"`
	TotalCents int64             `json:"total_cents"`
	Items      []OrderItem       `json:"items"`
	Notes      map[string]string `json:"notes"`
	OrderedAt  time.Time         `json:"ordered_at"`

	status OrderStatus
}

func (o *Order) GetStatus() OrderStatus { return o.status }

// SetStatus rejects unknown statuses.
func (o *Order) SetStatus(s OrderStatus) error {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusCancelled:
		o.status = s
		return nil
	default:
		return errors.Wrapf(errors.ErrTypeMismatch, "unknown order status %q", s)
	}
}

// 6. OrderItem represents a specific product line within an order.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

// 7. OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// 8. Voucher has a write-only code.
type Voucher struct {
	code string
}

func (v *Voucher) SetCode(code string) { v.code = strings.ToUpper(code) }

// Redeem is not an accessor.
func (v *Voucher) Redeem() string { return v.code }

// 9. Ledger has methods named like accessors that cannot bind.
type Ledger struct {
	Owner string `json:"owner"`

	balances map[string]int64
}

// GetBalance takes a currency, so it is not a getter.
func (l *Ledger) GetBalance(currency string) int64 { return l.balances[currency] }

// SetLimits is variadic, so it is not a setter.
func (l *Ledger) SetLimits(limits ...int64) { _ = limits }
