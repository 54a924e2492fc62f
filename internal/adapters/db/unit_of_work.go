// internal/adapters/db/unit_of_work.go
package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// Querier is the subset of pgx operations the repositories need. Both
// *Database and pgx.Tx satisfy it, so the same repository code runs
// against the pool or inside a transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// unitOfWork binds every repository to one Querier.
type unitOfWork struct {
	products           ports.ProductRepository
	inventories        ports.InventoryRepository
	suppliers          ports.SupplierRepository
	productInventories ports.ProductInventoryRepository
	productSuppliers   ports.ProductSupplierRepository
	orders             ports.OrderRepository
	reports            ports.ReportRepository
}

func newUnitOfWork(q Querier, logger *slog.Logger) *unitOfWork {
	return &unitOfWork{
		products:           NewProductRepository(q, logger),
		inventories:        NewInventoryRepository(q, logger),
		suppliers:          NewSupplierRepository(q, logger),
		productInventories: NewProductInventoryRepository(q, logger),
		productSuppliers:   NewProductSupplierRepository(q, logger),
		orders:             NewOrderRepository(q, logger),
		reports:            NewReportRepository(q, logger),
	}
}

func (u *unitOfWork) Products() ports.ProductRepository { return u.products }

func (u *unitOfWork) Inventories() ports.InventoryRepository { return u.inventories }

func (u *unitOfWork) Suppliers() ports.SupplierRepository { return u.suppliers }

func (u *unitOfWork) ProductInventories() ports.ProductInventoryRepository {
	return u.productInventories
}

func (u *unitOfWork) ProductSuppliers() ports.ProductSupplierRepository { return u.productSuppliers }

func (u *unitOfWork) Orders() ports.OrderRepository { return u.orders }

func (u *unitOfWork) Reports() ports.ReportRepository { return u.reports }

// TxManager runs units of work inside database transactions.
type TxManager struct {
	db     *Database
	logger *slog.Logger
}

// NewTxManager creates a transaction manager over the database
func NewTxManager(database *Database, logger *slog.Logger) *TxManager {
	return &TxManager{
		db:     database,
		logger: logger.With(slog.String("component", "tx_manager")),
	}
}

// WithinTx runs fn with repositories bound to a single transaction.
func (m *TxManager) WithinTx(ctx context.Context, fn func(uow ports.UnitOfWork) error) error {
	return m.db.Transaction(ctx, func(tx pgx.Tx) error {
		return fn(newUnitOfWork(tx, m.logger))
	})
}

// NewRepositories returns a unit of work bound directly to the pool
// for non-transactional access.
func NewRepositories(database *Database, logger *slog.Logger) ports.UnitOfWork {
	return newUnitOfWork(database, logger)
}
