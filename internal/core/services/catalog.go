// internal/core/services/catalog.go
package services

import (
	"context"
	"log/slog"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// CatalogService manages the catalog entities behind orders and
// associations. Deleting a product or an inventory cascades over its
// associations in the database, so those deletes also drop derived
// stock and invalidate the dashboard cache.
type CatalogService struct {
	repos  ports.UnitOfWork
	cache  ports.CacheRepository
	logger *slog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(repos ports.UnitOfWork, cache ports.CacheRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repos:  repos,
		cache:  cache,
		logger: logger.With(slog.String("service", "catalog")),
	}
}

// SaveProduct validates and persists a new product
func (s *CatalogService) SaveProduct(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}
	return s.repos.Products().Save(ctx, product)
}

// UpdateProduct validates and updates an existing product
func (s *CatalogService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if product.ID <= 0 {
		return &domain.ValidationError{Field: "id", Detail: "id is required"}
	}
	if err := product.Validate(); err != nil {
		return err
	}
	return s.repos.Products().Update(ctx, product)
}

// GetProduct retrieves a product by id
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repos.Products().FindByID(ctx, id)
}

// ListProducts retrieves products with filtering and pagination
func (s *CatalogService) ListProducts(ctx context.Context, params ports.ProductListParams) (*ports.ProductListResult, error) {
	return s.repos.Products().FindAll(ctx, params)
}

// DeleteProduct removes a product and, via cascade, its associations
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repos.Products().Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateStockCache(ctx)

	s.logger.InfoContext(ctx, "product deleted", slog.Int64("product_id", id))
	return nil
}

// SaveInventory validates and persists a new inventory
func (s *CatalogService) SaveInventory(ctx context.Context, inventory *domain.Inventory) error {
	if err := inventory.Validate(); err != nil {
		return err
	}
	return s.repos.Inventories().Save(ctx, inventory)
}

// UpdateInventory validates and updates an existing inventory
func (s *CatalogService) UpdateInventory(ctx context.Context, inventory *domain.Inventory) error {
	if inventory.ID <= 0 {
		return &domain.ValidationError{Field: "id", Detail: "id is required"}
	}
	if err := inventory.Validate(); err != nil {
		return err
	}
	if err := s.repos.Inventories().Update(ctx, inventory); err != nil {
		return err
	}

	// Max stock feeds the monitor's watermark and the dashboard.
	s.invalidateStockCache(ctx)
	return nil
}

// GetInventory retrieves an inventory by id
func (s *CatalogService) GetInventory(ctx context.Context, id int64) (*domain.Inventory, error) {
	return s.repos.Inventories().FindByID(ctx, id)
}

// ListInventories retrieves every inventory
func (s *CatalogService) ListInventories(ctx context.Context) ([]domain.Inventory, error) {
	return s.repos.Inventories().FindAll(ctx)
}

// DeleteInventory removes an inventory and, via cascade, its associations
func (s *CatalogService) DeleteInventory(ctx context.Context, id int64) error {
	if err := s.repos.Inventories().Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateStockCache(ctx)

	s.logger.InfoContext(ctx, "inventory deleted", slog.Int64("inventory_id", id))
	return nil
}

// SaveSupplier validates and persists a new supplier
func (s *CatalogService) SaveSupplier(ctx context.Context, supplier *domain.Supplier) error {
	if err := supplier.Validate(); err != nil {
		return err
	}
	return s.repos.Suppliers().Save(ctx, supplier)
}

// UpdateSupplier validates and updates an existing supplier
func (s *CatalogService) UpdateSupplier(ctx context.Context, supplier *domain.Supplier) error {
	if supplier.ID <= 0 {
		return &domain.ValidationError{Field: "id", Detail: "id is required"}
	}
	if err := supplier.Validate(); err != nil {
		return err
	}
	return s.repos.Suppliers().Update(ctx, supplier)
}

// GetSupplier retrieves a supplier by id
func (s *CatalogService) GetSupplier(ctx context.Context, id int64) (*domain.Supplier, error) {
	return s.repos.Suppliers().FindByID(ctx, id)
}

// ListSuppliers retrieves every supplier
func (s *CatalogService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.repos.Suppliers().FindAll(ctx)
}

// DeleteSupplier removes a supplier. The database refuses the delete
// while orders still reference it.
func (s *CatalogService) DeleteSupplier(ctx context.Context, id int64) error {
	return s.repos.Suppliers().Delete(ctx, id)
}

func (s *CatalogService) invalidateStockCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "dashboard:*"); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate stock cache", "err", err)
	}
}
