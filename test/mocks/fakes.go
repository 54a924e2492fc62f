// test/mocks/fakes.go
package mocks

import (
	"context"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// FakeUnitOfWork wires mock repositories into a ports.UnitOfWork so
// service tests can exercise transactional code paths without a
// database.
type FakeUnitOfWork struct {
	ProductsRepo           *MockProductRepository
	InventoriesRepo        *MockInventoryRepository
	SuppliersRepo          *MockSupplierRepository
	ProductInventoriesRepo *MockProductInventoryRepository
	ProductSuppliersRepo   *MockProductSupplierRepository
	OrdersRepo             *MockOrderRepository
	ReportsRepo            *MockReportRepository
}

var _ ports.UnitOfWork = (*FakeUnitOfWork)(nil)

func (f *FakeUnitOfWork) Products() ports.ProductRepository { return f.ProductsRepo }

func (f *FakeUnitOfWork) Inventories() ports.InventoryRepository { return f.InventoriesRepo }

func (f *FakeUnitOfWork) Suppliers() ports.SupplierRepository { return f.SuppliersRepo }

func (f *FakeUnitOfWork) ProductInventories() ports.ProductInventoryRepository {
	return f.ProductInventoriesRepo
}

func (f *FakeUnitOfWork) ProductSuppliers() ports.ProductSupplierRepository {
	return f.ProductSuppliersRepo
}

func (f *FakeUnitOfWork) Orders() ports.OrderRepository { return f.OrdersRepo }

func (f *FakeUnitOfWork) Reports() ports.ReportRepository { return f.ReportsRepo }

// FakeTxManager runs the transactional function against the fake unit
// of work. BeginErr, when set, fails the transaction up front; the Err
// returned by fn propagates unchanged, mirroring the real manager's
// rollback-on-error contract.
type FakeTxManager struct {
	UOW      ports.UnitOfWork
	BeginErr error
	Calls    int
}

var _ ports.TransactionManager = (*FakeTxManager)(nil)

func (f *FakeTxManager) WithinTx(ctx context.Context, fn func(uow ports.UnitOfWork) error) error {
	f.Calls++
	if f.BeginErr != nil {
		return f.BeginErr
	}
	return fn(f.UOW)
}
