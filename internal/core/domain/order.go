// internal/core/domain/order.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusComplete  OrderStatus = "Complete"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// ValidOrderStatuses lists the accepted order statuses
var ValidOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusComplete,
	OrderStatusCancelled,
}

// IsValid reports whether the status is one of the known states
func (s OrderStatus) IsValid() bool {
	for _, v := range ValidOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order is the header of a replenishment order placed with a supplier
// and received into a single inventory. Committing an order applies
// every line's quantity to the target inventory atomically.
type Order struct {
	ID          int64           `json:"id"`
	SupplierID  int64           `json:"supplier_id"`
	InventoryID int64           `json:"inventory_id"`
	OrderDate   time.Time       `json:"order_date"`
	Status      OrderStatus     `json:"status"`
	Total       decimal.Decimal `json:"total"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	SupplierName  string `json:"supplier_name,omitempty"`
	InventoryName string `json:"inventory_name,omitempty"`

	Products []OrderProduct `json:"products,omitempty"`
}

// OrderProduct is a single line of an order: a product and the
// quantity received at the line's unit price.
type OrderProduct struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`

	ProductName string `json:"product_name,omitempty"`
}

// Validate checks the order header and every line
func (o *Order) Validate() error {
	if o.SupplierID <= 0 {
		return &ValidationError{Field: "supplier_id", Detail: "supplier_id is required"}
	}
	if o.InventoryID <= 0 {
		return &ValidationError{Field: "inventory_id", Detail: "inventory_id is required"}
	}
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if !o.Status.IsValid() {
		return &ValidationError{Field: "status", Detail: "invalid order status"}
	}
	// The order date records when the order was placed, which can
	// predate its registration here.
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	if len(o.Products) == 0 {
		return &ValidationError{Field: "products", Detail: "order requires at least one product line"}
	}
	seen := make(map[int64]struct{}, len(o.Products))
	for i := range o.Products {
		if err := o.Products[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[o.Products[i].ProductID]; dup {
			return &ValidationError{Field: "products", Detail: "duplicate product line in order"}
		}
		seen[o.Products[i].ProductID] = struct{}{}
	}
	return nil
}

// Validate checks a single order line
func (p *OrderProduct) Validate() error {
	if p.ProductID <= 0 {
		return &ValidationError{Field: "product_id", Detail: "product_id is required"}
	}
	if p.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Detail: "quantity must be positive"}
	}
	if p.UnitPrice.IsNegative() {
		return &ValidationError{Field: "unit_price", Detail: "unit_price cannot be negative"}
	}
	return nil
}

// ComputeTotal sums quantity * unit price across all lines.
func (o *Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Products {
		line := o.Products[i].UnitPrice.Mul(decimal.NewFromInt(int64(o.Products[i].Quantity)))
		total = total.Add(line)
	}
	return total
}
