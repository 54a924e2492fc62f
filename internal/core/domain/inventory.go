// internal/core/domain/inventory.go
package domain

import (
	"time"
)

// Inventory represents a physical storage location with a stock ceiling.
// Its current stock is never stored: it is always derived as the sum of
// its product association quantities.
type Inventory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	MaxStock  int       `json:"max_stock"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs domain validation on the inventory
func (i *Inventory) Validate() error {
	if i.Name == "" {
		return &ValidationError{Field: "name", Detail: "name is required"}
	}
	if i.MaxStock <= 0 {
		return &ValidationError{Field: "max_stock", Detail: "max_stock must be positive"}
	}
	return nil
}

// ProductInventory links a product to an inventory with the quantity
// currently held there. At most one association may exist per
// (product, inventory) pair; the storage layer enforces this with a
// unique constraint as the final backstop.
type ProductInventory struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	InventoryID int64     `json:"inventory_id"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Denormalized labels populated by read queries, never persisted.
	ProductName   string `json:"product_name,omitempty"`
	InventoryName string `json:"inventory_name,omitempty"`
}

// Validate checks the association invariants
func (a *ProductInventory) Validate() error {
	if a.ProductID <= 0 {
		return &ValidationError{Field: "product_id", Detail: "product_id is required"}
	}
	if a.InventoryID <= 0 {
		return &ValidationError{Field: "inventory_id", Detail: "inventory_id is required"}
	}
	if a.Quantity < 0 {
		return &ValidationError{Field: "quantity", Detail: "quantity cannot be negative"}
	}
	return nil
}

// ProductSupplier links a product to one of its suppliers. Unique per
// pair; carries no quantity.
type ProductSupplier struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	SupplierID int64     `json:"supplier_id"`
	CreatedAt  time.Time `json:"created_at"`

	ProductName  string `json:"product_name,omitempty"`
	SupplierName string `json:"supplier_name,omitempty"`
}

// InventoryStock is the derived stock position of one inventory.
type InventoryStock struct {
	InventoryID  int64  `json:"inventory_id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
	MaxStock     int    `json:"max_stock"`
}

// ProductStock is a product's stock aggregated across every inventory.
type ProductStock struct {
	ProductID   int64  `json:"product_id"`
	Name        string `json:"name"`
	GlobalStock int    `json:"global_stock"`
}
