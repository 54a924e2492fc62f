// internal/core/ports/product_repository.go
package ports

import (
	"context"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
)

// ProductRepository defines the persistence port for products.
// This interface is implemented by the database adapter.
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// FindByIDs resolves a batch of product ids in one round trip. The
	// returned slice preserves the order of the ids that were found;
	// missing ids are simply absent, not an error.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	FindAll(ctx context.Context, params ProductListParams) (*ProductListResult, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	// GlobalStock aggregates every product's quantity across all
	// inventories. Products with no associations appear with stock 0.
	GlobalStock(ctx context.Context) ([]domain.ProductStock, error)
}

// ProductListParams holds filters for listing products
type ProductListParams struct {
	Search    string
	Category  string
	Type      string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ProductListResult holds a page of products
type ProductListResult struct {
	Products   []*domain.Product `json:"products"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalCount int64             `json:"total_count"`
	TotalPages int               `json:"total_pages"`
}
