// internal/core/ports/inventory_repository.go
package ports

import (
	"context"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
)

// InventoryRepository defines the persistence port for inventories.
type InventoryRepository interface {
	Save(ctx context.Context, inventory *domain.Inventory) error
	Update(ctx context.Context, inventory *domain.Inventory) error
	FindByID(ctx context.Context, id int64) (*domain.Inventory, error)
	FindAll(ctx context.Context) ([]domain.Inventory, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
	// Touch bumps updated_at without changing any other column. Called
	// when an order commits stock into the inventory.
	Touch(ctx context.Context, id int64) error
	// StockSummary derives each inventory's current stock as the sum of
	// its association quantities.
	StockSummary(ctx context.Context) ([]domain.InventoryStock, error)
}

// SupplierRepository defines the persistence port for suppliers.
type SupplierRepository interface {
	Save(ctx context.Context, supplier *domain.Supplier) error
	Update(ctx context.Context, supplier *domain.Supplier) error
	FindByID(ctx context.Context, id int64) (*domain.Supplier, error)
	FindAll(ctx context.Context) ([]domain.Supplier, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
