// internal/adapters/db/product_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// productRepository implements ports.ProductRepository
type productRepository struct {
	q      Querier
	logger *slog.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(q Querier, logger *slog.Logger) ports.ProductRepository {
	return &productRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "product")),
	}
}

const productColumns = `id, name, description, brand, content, unit, price, category, type, image_url, created_at, updated_at`

func scanProduct(row pgx.Row, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Brand, &p.Content, &p.Unit,
		&p.Price, &p.Category, &p.Type, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
}

// Save creates a new product
func (r *productRepository) Save(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (
			name, description, brand, content, unit, price, category, type, image_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := r.q.QueryRow(ctx, query,
		product.Name, product.Description, product.Brand, product.Content,
		product.Unit, product.Price, product.Category, product.Type, product.ImageURL,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}

	r.logger.DebugContext(ctx, "product saved",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name))

	return nil
}

// Update updates an existing product
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products SET
			name = $2, description = $3, brand = $4, content = $5, unit = $6,
			price = $7, category = $8, type = $9, image_url = $10, updated_at = $11
		WHERE id = $1
		RETURNING created_at`

	product.UpdatedAt = time.Now()

	err := r.q.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Brand, product.Content,
		product.Unit, product.Price, product.Category, product.Type, product.ImageURL,
		product.UpdatedAt,
	).Scan(&product.CreatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.NewNotFoundError("producto", product.ID)
		}
		return fmt.Errorf("failed to update product: %w", err)
	}

	return nil
}

// FindByID retrieves a product by id
func (r *productRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product := &domain.Product{}
	if err := scanProduct(r.q.QueryRow(ctx, query, id), product); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("producto", id)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

// FindByIDs resolves a batch of product ids in one query
func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) ORDER BY id`

	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return products, nil
}

// FindAll retrieves products with filtering and pagination
func (r *productRepository) FindAll(ctx context.Context, params ports.ProductListParams) (*ports.ProductListResult, error) {
	applyFilters := func(qb squirrel.SelectBuilder) squirrel.SelectBuilder {
		if params.Search != "" {
			qb = qb.Where("name ILIKE ?", "%"+params.Search+"%")
		}
		if params.Category != "" {
			qb = qb.Where(squirrel.Eq{"category": params.Category})
		}
		if params.Type != "" {
			qb = qb.Where(squirrel.Eq{"type": params.Type})
		}
		return qb
	}

	countSQL, countArgs, err := applyFilters(
		squirrel.Select("COUNT(*)").From("products").PlaceholderFormat(squirrel.Dollar),
	).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build count query: %w", err)
	}

	var totalCount int64
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	qb := applyFilters(squirrel.Select(
		"id", "name", "description", "brand", "content", "unit",
		"price", "category", "type", "image_url", "created_at", "updated_at",
	).From("products").
		PlaceholderFormat(squirrel.Dollar))

	direction := "ASC"
	if params.SortOrder == "desc" {
		direction = "DESC"
	}
	orderBy := "created_at DESC"
	switch params.SortBy {
	case "name":
		orderBy = fmt.Sprintf("name %s", direction)
	case "price":
		orderBy = fmt.Sprintf("price %s", direction)
	case "updated":
		orderBy = fmt.Sprintf("updated_at %s", direction)
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
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p := &domain.Product{}
		if err := scanProduct(rows, p); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))

	return &ports.ProductListResult{
		Products:   products,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}, nil
}

// Delete removes a product
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("producto", id)
	}

	r.logger.InfoContext(ctx, "product deleted", slog.Int64("product_id", id))
	return nil
}

// Count returns the total number of products
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// GlobalStock aggregates each product's stock across all inventories.
// The LEFT JOIN keeps products with no associations in the result with
// stock zero.
func (r *productRepository) GlobalStock(ctx context.Context) ([]domain.ProductStock, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(pi.quantity), 0) AS global_stock
		FROM products p
		LEFT JOIN product_inventory pi ON pi.product_id = p.id
		GROUP BY p.id, p.name
		ORDER BY p.id`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query global stock: %w", err)
	}
	defer rows.Close()

	var stocks []domain.ProductStock
	for rows.Next() {
		var s domain.ProductStock
		if err := rows.Scan(&s.ProductID, &s.Name, &s.GlobalStock); err != nil {
			return nil, fmt.Errorf("failed to scan product stock: %w", err)
		}
		stocks = append(stocks, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return stocks, nil
}
