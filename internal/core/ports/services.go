// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
)

// OrderService defines the application service port for orders.
type OrderService interface {
	// CreateOrder commits an order atomically: it validates the
	// supplier, inventory and every product line, persists the header
	// and lines, and applies each line's quantity to the target
	// inventory's associations. Any failure leaves no trace.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, params OrderListParams) (*OrderListResult, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	DeleteOrder(ctx context.Context, id int64) error
}

// AssociationInput is one requested (inventory, quantity) pairing for
// a product.
type AssociationInput struct {
	InventoryID int64 `json:"inventory_id"`
	Quantity    int   `json:"quantity"`
}

// AssociationUpdateResult reports what a multi-pair update did:
// associations created for pairs that did not exist, and the inventory
// ids of pairs that were refused because they already existed.
type AssociationUpdateResult struct {
	Created  []domain.ProductInventory `json:"created"`
	Existing []int64                   `json:"existing,omitempty"`
}

// AssociationService defines the application service port for
// product-inventory and product-supplier associations.
type AssociationService interface {
	// CreateAssociations links a product to several inventories in one
	// call. All-or-nothing: if any inventory id is missing or any pair
	// already exists, nothing is created.
	CreateAssociations(ctx context.Context, productID int64, inputs []AssociationInput) ([]domain.ProductInventory, error)
	// UpdateAssociations creates the pairs that do not exist yet and
	// refuses the ones that do, reporting both.
	UpdateAssociations(ctx context.Context, productID int64, inputs []AssociationInput) (*AssociationUpdateResult, error)
	GetAssociation(ctx context.Context, id int64) (*domain.ProductInventory, error)
	ListByProduct(ctx context.Context, productID int64) ([]domain.ProductInventory, error)
	ListByInventory(ctx context.Context, inventoryID int64) ([]domain.ProductInventory, error)
	DeleteAssociation(ctx context.Context, id int64) error
	// UpdateQuantity overwrites the association's quantity with an
	// authoritative absolute value.
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.ProductInventory, error)

	LinkSupplier(ctx context.Context, productID, supplierID int64) (*domain.ProductSupplier, error)
	ListSuppliersByProduct(ctx context.Context, productID int64) ([]domain.ProductSupplier, error)
	UnlinkSupplier(ctx context.Context, id int64) error
}

// SweepResult summarizes one monitor sweep.
type SweepResult struct {
	Deleted  int64           `json:"deleted_pending"`
	Reports  []domain.Report `json:"reports"`
	Failures []string        `json:"failures,omitempty"`
}

// MonitorService defines the threshold monitor port.
type MonitorService interface {
	// RunSweep wipes pending reports and rebuilds them from current
	// stock levels. Per-report failures are collected, not fatal.
	RunSweep(ctx context.Context) (*SweepResult, error)
}

// ReportService defines the application service port for reports.
type ReportService interface {
	GetReport(ctx context.Context, id int64) (*domain.Report, error)
	ListReports(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error)
	ResolveReport(ctx context.Context, id int64) error
	DeleteReport(ctx context.Context, id int64) error
}

// DashboardService aggregates stock positions for read-side consumers.
type DashboardService interface {
	StockSummary(ctx context.Context) (*StockSummary, error)
}

// StockSummary is the cached dashboard view of current stock.
type StockSummary struct {
	Inventories []domain.InventoryStock `json:"inventories"`
	Products    []domain.ProductStock   `json:"products"`
}

// CatalogService defines the application service port for the catalog
// entities: products, inventories and suppliers.
type CatalogService interface {
	SaveProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, params ProductListParams) (*ProductListResult, error)
	DeleteProduct(ctx context.Context, id int64) error

	SaveInventory(ctx context.Context, inventory *domain.Inventory) error
	UpdateInventory(ctx context.Context, inventory *domain.Inventory) error
	GetInventory(ctx context.Context, id int64) (*domain.Inventory, error)
	ListInventories(ctx context.Context) ([]domain.Inventory, error)
	DeleteInventory(ctx context.Context, id int64) error

	SaveSupplier(ctx context.Context, supplier *domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error
	GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	DeleteSupplier(ctx context.Context, id int64) error
}
