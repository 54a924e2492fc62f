// internal/adapters/db/order_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// orderRepository implements ports.OrderRepository
type orderRepository struct {
	q      Querier
	logger *slog.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(q Querier, logger *slog.Logger) ports.OrderRepository {
	return &orderRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "order")),
	}
}

// Save inserts the order header
func (r *orderRepository) Save(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (supplier_id, inventory_id, order_date, status, total, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.q.QueryRow(ctx, query,
		order.SupplierID, order.InventoryID, order.OrderDate, order.Status, order.Total, nullable(order.Notes),
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	r.logger.DebugContext(ctx, "order saved",
		slog.Int64("order_id", order.ID),
		slog.Int64("supplier_id", order.SupplierID),
		slog.Int64("inventory_id", order.InventoryID))

	return nil
}

// SaveProducts batch-inserts the order's lines
func (r *orderRepository) SaveProducts(ctx context.Context, orderID int64, lines []domain.OrderProduct) error {
	if len(lines) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO order_products (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	for i := range lines {
		batch.Queue(query, orderID, lines[i].ProductID, lines[i].Quantity, lines[i].UnitPrice)
	}

	br := r.q.SendBatch(ctx, batch)
	defer br.Close()

	for i := range lines {
		lines[i].OrderID = orderID
		if err := br.QueryRow().Scan(&lines[i].ID); err != nil {
			return fmt.Errorf("failed to save order line %d: %w", i, err)
		}
	}

	return nil
}

// FindByID retrieves an order with its lines
func (r *orderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT o.id, o.supplier_id, o.inventory_id, o.order_date, o.status, o.total, o.notes,
		       o.created_at, o.updated_at, s.name, i.name
		FROM orders o
		JOIN suppliers s ON s.id = o.supplier_id
		JOIN inventories i ON i.id = o.inventory_id
		WHERE o.id = $1`

	order := &domain.Order{}
	var notes sql.NullString
	err := r.q.QueryRow(ctx, query, id).Scan(
		&order.ID, &order.SupplierID, &order.InventoryID, &order.OrderDate, &order.Status,
		&order.Total, &notes, &order.CreatedAt, &order.UpdatedAt,
		&order.SupplierName, &order.InventoryName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("pedido", id)
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	order.Notes = notes.String

	lines, err := r.findLines(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Products = lines

	return order, nil
}

func (r *orderRepository) findLines(ctx context.Context, orderID int64) ([]domain.OrderProduct, error) {
	query := `
		SELECT op.id, op.order_id, op.product_id, op.quantity, op.unit_price, p.name
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = $1
		ORDER BY op.id`

	rows, err := r.q.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.OrderProduct
	for rows.Next() {
		var l domain.OrderProduct
		err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.ProductName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lines, nil
}

// FindAll retrieves orders with filtering and pagination, headers only
func (r *orderRepository) FindAll(ctx context.Context, params ports.OrderListParams) (*ports.OrderListResult, error) {
	applyFilters := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.SupplierID > 0 {
			qb = qb.Where(squirrel.Eq{"o.supplier_id": params.SupplierID})
		}
		if params.InventoryID > 0 {
			qb = qb.Where(squirrel.Eq{"o.inventory_id": params.InventoryID})
		}
		if params.Status != "" {
			qb = qb.Where(squirrel.Eq{"o.status": params.Status})
		}
		return qb
	}

	countSQL, countArgs, err := applyFilters(
		squirrel.Select("COUNT(*)").From("orders o").PlaceholderFormat(squirrel.Dollar),
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	qb := applyFilters(squirrel.Select(
		"o.id", "o.supplier_id", "o.inventory_id", "o.order_date", "o.status", "o.total",
		"o.notes", "o.created_at", "o.updated_at", "s.name", "i.name",
	).From("orders o").
		Join("suppliers s ON s.id = o.supplier_id").
		Join("inventories i ON i.id = o.inventory_id").
		PlaceholderFormat(squirrel.Dollar))

	direction := "DESC"
	if params.SortOrder == "asc" {
		direction = "ASC"
	}
	orderBy := fmt.Sprintf("o.created_at %s", direction)
	switch params.SortBy {
	case "date":
		orderBy = fmt.Sprintf("o.order_date %s", direction)
	case "total":
		orderBy = fmt.Sprintf("o.total %s", direction)
	case "updated":
		orderBy = fmt.Sprintf("o.updated_at %s", direction)
	case "status":
		orderBy = fmt.Sprintf("o.status %s", direction)
	}
	qb = qb.OrderBy(orderBy)

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	qb = qb.Limit(uint64(pageSize)).Offset(uint64((page - 1) * pageSize))

	listSQL, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.q.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o := &domain.Order{}
		var notes sql.NullString
		err := rows.Scan(
			&o.ID, &o.SupplierID, &o.InventoryID, &o.OrderDate, &o.Status, &o.Total,
			&notes, &o.CreatedAt, &o.UpdatedAt, &o.SupplierName, &o.InventoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.Notes = notes.String
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	return &ports.OrderListResult{
		Orders:     orders,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

// UpdateStatus changes the order's lifecycle state
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.q.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("pedido", id)
	}

	return nil
}

// Delete removes an order and, through ON DELETE CASCADE, its lines
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("pedido", id)
	}

	r.logger.InfoContext(ctx, "order deleted", slog.Int64("order_id", id))
	return nil
}
