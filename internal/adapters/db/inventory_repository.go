// internal/adapters/db/inventory_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// inventoryRepository implements ports.InventoryRepository
type inventoryRepository struct {
	q      Querier
	logger *slog.Logger
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(q Querier, logger *slog.Logger) ports.InventoryRepository {
	return &inventoryRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "inventory")),
	}
}

// Save creates a new inventory
func (r *inventoryRepository) Save(ctx context.Context, inventory *domain.Inventory) error {
	query := `
		INSERT INTO inventories (name, max_stock)
		VALUES ($1, $2)
		RETURNING id, updated_at`

	err := r.q.QueryRow(ctx, query, inventory.Name, inventory.MaxStock).
		Scan(&inventory.ID, &inventory.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save inventory: %w", err)
	}

	r.logger.DebugContext(ctx, "inventory saved",
		slog.Int64("inventory_id", inventory.ID),
		slog.String("name", inventory.Name))

	return nil
}

// Update updates an existing inventory
func (r *inventoryRepository) Update(ctx context.Context, inventory *domain.Inventory) error {
	query := `
		UPDATE inventories SET name = $2, max_stock = $3, updated_at = $4
		WHERE id = $1`

	inventory.UpdatedAt = time.Now()

	tag, err := r.q.Exec(ctx, query,
		inventory.ID, inventory.Name, inventory.MaxStock, inventory.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("inventario", inventory.ID)
	}

	return nil
}

// FindByID retrieves an inventory by id
func (r *inventoryRepository) FindByID(ctx context.Context, id int64) (*domain.Inventory, error) {
	query := `SELECT id, name, max_stock, updated_at FROM inventories WHERE id = $1`

	inventory := &domain.Inventory{}
	err := r.q.QueryRow(ctx, query, id).
		Scan(&inventory.ID, &inventory.Name, &inventory.MaxStock, &inventory.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("inventario", id)
		}
		return nil, fmt.Errorf("failed to find inventory: %w", err)
	}

	return inventory, nil
}

// FindAll retrieves every inventory
func (r *inventoryRepository) FindAll(ctx context.Context) ([]domain.Inventory, error) {
	query := `SELECT id, name, max_stock, updated_at FROM inventories ORDER BY name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventories: %w", err)
	}
	defer rows.Close()

	var inventories []domain.Inventory
	for rows.Next() {
		var inv domain.Inventory
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.MaxStock, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inventory: %w", err)
		}
		inventories = append(inventories, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return inventories, nil
}

// Delete removes an inventory
func (r *inventoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("inventario", id)
	}

	r.logger.InfoContext(ctx, "inventory deleted", slog.Int64("inventory_id", id))
	return nil
}

// Exists checks if an inventory exists
func (r *inventoryRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM inventories WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// Touch bumps updated_at on the inventory
func (r *inventoryRepository) Touch(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `UPDATE inventories SET updated_at = $2 WHERE id = $1`, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to touch inventory: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("inventario", id)
	}

	return nil
}

// StockSummary derives each inventory's stock from its associations
func (r *inventoryRepository) StockSummary(ctx context.Context) ([]domain.InventoryStock, error) {
	query := `
		SELECT i.id, i.name, COALESCE(SUM(pi.quantity), 0) AS current_stock, i.max_stock
		FROM inventories i
		LEFT JOIN product_inventory pi ON pi.inventory_id = i.id
		GROUP BY i.id, i.name, i.max_stock
		ORDER BY i.id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock summary: %w", err)
	}
	defer rows.Close()

	var stocks []domain.InventoryStock
	for rows.Next() {
		var s domain.InventoryStock
		if err := rows.Scan(&s.InventoryID, &s.Name, &s.CurrentStock, &s.MaxStock); err != nil {
			return nil, fmt.Errorf("failed to scan inventory stock: %w", err)
		}
		stocks = append(stocks, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stocks, nil
}
