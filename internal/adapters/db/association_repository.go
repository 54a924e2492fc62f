// internal/adapters/db/association_repository.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The unique indexes on the association tables are the final
// backstop against racing duplicate inserts.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// productInventoryRepository implements ports.ProductInventoryRepository
type productInventoryRepository struct {
	q      Querier
	logger *slog.Logger
}

// NewProductInventoryRepository creates a new product-inventory association repository
func NewProductInventoryRepository(q Querier, logger *slog.Logger) ports.ProductInventoryRepository {
	return &productInventoryRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "product_inventory")),
	}
}

const assocSelect = `
	SELECT pi.id, pi.product_id, pi.inventory_id, pi.quantity, pi.created_at, pi.updated_at,
	       p.name, i.name
	FROM product_inventory pi
	JOIN products p ON p.id = pi.product_id
	JOIN inventories i ON i.id = pi.inventory_id`

func scanAssoc(row pgx.Row, a *domain.ProductInventory) error {
	return row.Scan(
		&a.ID, &a.ProductID, &a.InventoryID, &a.Quantity, &a.CreatedAt, &a.UpdatedAt,
		&a.ProductName, &a.InventoryName,
	)
}

// Save creates a new association. A duplicate (product, inventory)
// pair surfaces as domain.ConflictError.
func (r *productInventoryRepository) Save(ctx context.Context, assoc *domain.ProductInventory) error {
	query := `
		INSERT INTO product_inventory (product_id, inventory_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.q.QueryRow(ctx, query, assoc.ProductID, assoc.InventoryID, assoc.Quantity).
		Scan(&assoc.ID, &assoc.CreatedAt, &assoc.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{
				Entity: "producto-inventario",
				Detail: fmt.Sprintf("pair (%d, %d) already exists", assoc.ProductID, assoc.InventoryID),
			}
		}
		return fmt.Errorf("failed to save association: %w", err)
	}

	r.logger.DebugContext(ctx, "association saved",
		slog.Int64("association_id", assoc.ID),
		slog.Int64("product_id", assoc.ProductID),
		slog.Int64("inventory_id", assoc.InventoryID))

	return nil
}

// FindByID retrieves an association by id
func (r *productInventoryRepository) FindByID(ctx context.Context, id int64) (*domain.ProductInventory, error) {
	assoc := &domain.ProductInventory{}
	err := scanAssoc(r.q.QueryRow(ctx, assocSelect+` WHERE pi.id = $1`, id), assoc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("producto-inventario", id)
		}
		return nil, fmt.Errorf("failed to find association: %w", err)
	}
	return assoc, nil
}

// FindByPair retrieves the association for a (product, inventory) pair
func (r *productInventoryRepository) FindByPair(ctx context.Context, productID, inventoryID int64) (*domain.ProductInventory, error) {
	assoc := &domain.ProductInventory{}
	err := scanAssoc(
		r.q.QueryRow(ctx, assocSelect+` WHERE pi.product_id = $1 AND pi.inventory_id = $2`, productID, inventoryID),
		assoc,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("producto-inventario")
		}
		return nil, fmt.Errorf("failed to find association: %w", err)
	}
	return assoc, nil
}

// FindByPairForUpdate reads the association under FOR UPDATE so the
// caller's read-increment-write cannot lose a concurrent update. The
// plain columns are selected here because FOR UPDATE does not allow
// the joined lookup tables to be locked alongside.
func (r *productInventoryRepository) FindByPairForUpdate(ctx context.Context, productID, inventoryID int64) (*domain.ProductInventory, error) {
	query := `
		SELECT id, product_id, inventory_id, quantity, created_at, updated_at
		FROM product_inventory
		WHERE product_id = $1 AND inventory_id = $2
		FOR UPDATE`

	assoc := &domain.ProductInventory{}
	err := r.q.QueryRow(ctx, query, productID, inventoryID).Scan(
		&assoc.ID, &assoc.ProductID, &assoc.InventoryID, &assoc.Quantity,
		&assoc.CreatedAt, &assoc.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("producto-inventario")
		}
		return nil, fmt.Errorf("failed to lock association: %w", err)
	}
	return assoc, nil
}

// FindByProduct lists a product's associations across inventories
func (r *productInventoryRepository) FindByProduct(ctx context.Context, productID int64) ([]domain.ProductInventory, error) {
	return r.findMany(ctx, assocSelect+` WHERE pi.product_id = $1 ORDER BY pi.inventory_id`, productID)
}

// FindByInventory lists every association held by an inventory
func (r *productInventoryRepository) FindByInventory(ctx context.Context, inventoryID int64) ([]domain.ProductInventory, error) {
	return r.findMany(ctx, assocSelect+` WHERE pi.inventory_id = $1 ORDER BY pi.product_id`, inventoryID)
}

// LowQuantity lists associations holding fewer units than the watermark
func (r *productInventoryRepository) LowQuantity(ctx context.Context, watermark int) ([]domain.ProductInventory, error) {
	return r.findMany(ctx, assocSelect+` WHERE pi.quantity < $1 ORDER BY pi.inventory_id, pi.product_id`, watermark)
}

func (r *productInventoryRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]domain.ProductInventory, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query associations: %w", err)
	}
	defer rows.Close()

	var assocs []domain.ProductInventory
	for rows.Next() {
		var a domain.ProductInventory
		if err := scanAssoc(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan association: %w", err)
		}
		assocs = append(assocs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return assocs, nil
}

// UpdateQuantity overwrites the association's quantity
func (r *productInventoryRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	query := `UPDATE product_inventory SET quantity = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.q.Exec(ctx, query, id, quantity, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update association quantity: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("producto-inventario", id)
	}

	return nil
}

// Delete removes an association
func (r *productInventoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM product_inventory WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete association: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("producto-inventario", id)
	}

	r.logger.InfoContext(ctx, "association deleted", slog.Int64("association_id", id))
	return nil
}

// productSupplierRepository implements ports.ProductSupplierRepository
type productSupplierRepository struct {
	q      Querier
	logger *slog.Logger
}

// NewProductSupplierRepository creates a new product-supplier association repository
func NewProductSupplierRepository(q Querier, logger *slog.Logger) ports.ProductSupplierRepository {
	return &productSupplierRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "product_supplier")),
	}
}

const supplierAssocSelect = `
	SELECT ps.id, ps.product_id, ps.supplier_id, ps.created_at, p.name, s.name
	FROM product_supplier ps
	JOIN products p ON p.id = ps.product_id
	JOIN suppliers s ON s.id = ps.supplier_id`

func scanSupplierAssoc(row pgx.Row, a *domain.ProductSupplier) error {
	return row.Scan(&a.ID, &a.ProductID, &a.SupplierID, &a.CreatedAt, &a.ProductName, &a.SupplierName)
}

// Save creates a new product-supplier link
func (r *productSupplierRepository) Save(ctx context.Context, assoc *domain.ProductSupplier) error {
	query := `
		INSERT INTO product_supplier (product_id, supplier_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.q.QueryRow(ctx, query, assoc.ProductID, assoc.SupplierID).
		Scan(&assoc.ID, &assoc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{
				Entity: "producto-proveedor",
				Detail: fmt.Sprintf("pair (%d, %d) already exists", assoc.ProductID, assoc.SupplierID),
			}
		}
		return fmt.Errorf("failed to save supplier association: %w", err)
	}

	return nil
}

// FindByID retrieves a product-supplier link by id
func (r *productSupplierRepository) FindByID(ctx context.Context, id int64) (*domain.ProductSupplier, error) {
	assoc := &domain.ProductSupplier{}
	err := scanSupplierAssoc(r.q.QueryRow(ctx, supplierAssocSelect+` WHERE ps.id = $1`, id), assoc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("producto-proveedor", id)
		}
		return nil, fmt.Errorf("failed to find supplier association: %w", err)
	}
	return assoc, nil
}

// FindByPair retrieves the link for a (product, supplier) pair
func (r *productSupplierRepository) FindByPair(ctx context.Context, productID, supplierID int64) (*domain.ProductSupplier, error) {
	assoc := &domain.ProductSupplier{}
	err := scanSupplierAssoc(
		r.q.QueryRow(ctx, supplierAssocSelect+` WHERE ps.product_id = $1 AND ps.supplier_id = $2`, productID, supplierID),
		assoc,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("producto-proveedor")
		}
		return nil, fmt.Errorf("failed to find supplier association: %w", err)
	}
	return assoc, nil
}

// FindByProduct lists a product's suppliers
func (r *productSupplierRepository) FindByProduct(ctx context.Context, productID int64) ([]domain.ProductSupplier, error) {
	return r.findMany(ctx, supplierAssocSelect+` WHERE ps.product_id = $1 ORDER BY ps.supplier_id`, productID)
}

// FindBySupplier lists every product a supplier provides
func (r *productSupplierRepository) FindBySupplier(ctx context.Context, supplierID int64) ([]domain.ProductSupplier, error) {
	return r.findMany(ctx, supplierAssocSelect+` WHERE ps.supplier_id = $1 ORDER BY ps.product_id`, supplierID)
}

func (r *productSupplierRepository) findMany(ctx context.Context, query string, args ...interface{}) ([]domain.ProductSupplier, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query supplier associations: %w", err)
	}
	defer rows.Close()

	var assocs []domain.ProductSupplier
	for rows.Next() {
		var a domain.ProductSupplier
		if err := scanSupplierAssoc(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan supplier association: %w", err)
		}
		assocs = append(assocs, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return assocs, nil
}

// Delete removes a product-supplier link
func (r *productSupplierRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM product_supplier WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete supplier association: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("producto-proveedor", id)
	}

	return nil
}
