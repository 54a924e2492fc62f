// internal/core/ports/unit_of_work.go
package ports

import (
	"context"
)

// UnitOfWork exposes every repository bound to a single database
// transaction. Repositories obtained from the same unit observe each
// other's uncommitted writes and commit or roll back together.
type UnitOfWork interface {
	Products() ProductRepository
	Inventories() InventoryRepository
	Suppliers() SupplierRepository
	ProductInventories() ProductInventoryRepository
	ProductSuppliers() ProductSupplierRepository
	Orders() OrderRepository
	Reports() ReportRepository
}

// TransactionManager runs a function inside one database transaction.
// If fn returns an error or panics the transaction is rolled back,
// otherwise it is committed.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(uow UnitOfWork) error) error
}
