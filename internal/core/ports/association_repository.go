// internal/core/ports/association_repository.go
package ports

import (
	"context"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
)

// ProductInventoryRepository defines the persistence port for
// product-inventory associations. At most one row exists per
// (product, inventory) pair; the adapter translates unique-constraint
// violations into domain.ConflictError.
type ProductInventoryRepository interface {
	Save(ctx context.Context, assoc *domain.ProductInventory) error
	FindByID(ctx context.Context, id int64) (*domain.ProductInventory, error)
	FindByPair(ctx context.Context, productID, inventoryID int64) (*domain.ProductInventory, error)
	// FindByPairForUpdate reads the association under a row lock so a
	// read-increment-write sequence cannot lose updates. Only
	// meaningful inside a transaction.
	FindByPairForUpdate(ctx context.Context, productID, inventoryID int64) (*domain.ProductInventory, error)
	FindByProduct(ctx context.Context, productID int64) ([]domain.ProductInventory, error)
	FindByInventory(ctx context.Context, inventoryID int64) ([]domain.ProductInventory, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
	// LowQuantity returns every association holding fewer units than
	// the given watermark.
	LowQuantity(ctx context.Context, watermark int) ([]domain.ProductInventory, error)
}

// ProductSupplierRepository defines the persistence port for
// product-supplier associations, unique per (product, supplier) pair.
type ProductSupplierRepository interface {
	Save(ctx context.Context, assoc *domain.ProductSupplier) error
	FindByID(ctx context.Context, id int64) (*domain.ProductSupplier, error)
	FindByPair(ctx context.Context, productID, supplierID int64) (*domain.ProductSupplier, error)
	FindByProduct(ctx context.Context, productID int64) ([]domain.ProductSupplier, error)
	FindBySupplier(ctx context.Context, supplierID int64) ([]domain.ProductSupplier, error)
	Delete(ctx context.Context, id int64) error
}
