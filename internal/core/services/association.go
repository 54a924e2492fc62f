// internal/core/services/association.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// AssociationService manages product-inventory and product-supplier
// relationships. The duplicate checks here are a courtesy to callers;
// the unique indexes in the database remain the final arbiter when
// two calls race past the check.
type AssociationService struct {
	tx     ports.TransactionManager
	repos  ports.UnitOfWork
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *AssociationService implements the AssociationService interface.
var _ ports.AssociationService = (*AssociationService)(nil)

// NewAssociationService creates a new association service
func NewAssociationService(tx ports.TransactionManager, repos ports.UnitOfWork, cache ports.CacheRepository, logger *slog.Logger) *AssociationService {
	return &AssociationService{
		tx:     tx,
		repos:  repos,
		cache:  cache,
		logger: logger.With(slog.String("service", "association")),
	}
}

func validateInputs(inputs []ports.AssociationInput) error {
	if len(inputs) == 0 {
		return &domain.ValidationError{Field: "inventories", Detail: "at least one inventory is required"}
	}
	seen := make(map[int64]struct{}, len(inputs))
	for _, in := range inputs {
		if in.InventoryID <= 0 {
			return &domain.ValidationError{Field: "inventory_id", Detail: "inventory_id is required"}
		}
		if in.Quantity < 0 {
			return &domain.ValidationError{Field: "quantity", Detail: "quantity cannot be negative"}
		}
		if _, dup := seen[in.InventoryID]; dup {
			return &domain.ValidationError{Field: "inventories", Detail: "duplicate inventory in request"}
		}
		seen[in.InventoryID] = struct{}{}
	}
	return nil
}

// checkReferences verifies the product and every inventory exist,
// collecting all missing inventory ids into a single error.
func checkReferences(ctx context.Context, uow ports.UnitOfWork, productID int64, inputs []ports.AssociationInput) error {
	if _, err := uow.Products().FindByID(ctx, productID); err != nil {
		return err
	}

	var missing []int64
	for _, in := range inputs {
		ok, err := uow.Inventories().Exists(ctx, in.InventoryID)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, in.InventoryID)
		}
	}
	if len(missing) > 0 {
		return domain.NewNotFoundError("inventario", missing...)
	}

	return nil
}

// CreateAssociations links a product to several inventories in one
// all-or-nothing transaction. Any missing reference or existing pair
// aborts the whole call.
func (s *AssociationService) CreateAssociations(ctx context.Context, productID int64, inputs []ports.AssociationInput) ([]domain.ProductInventory, error) {
	if productID <= 0 {
		return nil, &domain.ValidationError{Field: "product_id", Detail: "product_id is required"}
	}
	if err := validateInputs(inputs); err != nil {
		return nil, err
	}

	var created []domain.ProductInventory
	err := s.tx.WithinTx(ctx, func(uow ports.UnitOfWork) error {
		if err := checkReferences(ctx, uow, productID, inputs); err != nil {
			return err
		}

		for _, in := range inputs {
			if _, err := uow.ProductInventories().FindByPair(ctx, productID, in.InventoryID); err == nil {
				return &domain.ConflictError{
					Entity: "producto-inventario",
					Detail: fmt.Sprintf("pair (%d, %d) already exists", productID, in.InventoryID),
				}
			} else if !domain.IsNotFound(err) {
				return err
			}
		}

		created = make([]domain.ProductInventory, 0, len(inputs))
		for _, in := range inputs {
			assoc := domain.ProductInventory{
				ProductID:   productID,
				InventoryID: in.InventoryID,
				Quantity:    in.Quantity,
			}
			if err := uow.ProductInventories().Save(ctx, &assoc); err != nil {
				return err
			}
			created = append(created, assoc)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStockCache(ctx)

	s.logger.InfoContext(ctx, "associations created",
		slog.Int64("product_id", productID),
		slog.Int("count", len(created)))

	return created, nil
}

// UpdateAssociations creates the requested pairs that do not exist
// yet. Pairs that already exist are refused and reported back, they
// are never overwritten from here.
func (s *AssociationService) UpdateAssociations(ctx context.Context, productID int64, inputs []ports.AssociationInput) (*ports.AssociationUpdateResult, error) {
	if productID <= 0 {
		return nil, &domain.ValidationError{Field: "product_id", Detail: "product_id is required"}
	}
	if err := validateInputs(inputs); err != nil {
		return nil, err
	}

	result := &ports.AssociationUpdateResult{}
	err := s.tx.WithinTx(ctx, func(uow ports.UnitOfWork) error {
		if err := checkReferences(ctx, uow, productID, inputs); err != nil {
			return err
		}

		for _, in := range inputs {
			_, err := uow.ProductInventories().FindByPair(ctx, productID, in.InventoryID)
			if err == nil {
				result.Existing = append(result.Existing, in.InventoryID)
				continue
			}
			if !domain.IsNotFound(err) {
				return err
			}

			assoc := domain.ProductInventory{
				ProductID:   productID,
				InventoryID: in.InventoryID,
				Quantity:    in.Quantity,
			}
			if err := uow.ProductInventories().Save(ctx, &assoc); err != nil {
				return err
			}
			result.Created = append(result.Created, assoc)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(result.Created) > 0 {
		s.invalidateStockCache(ctx)
	}

	if len(result.Existing) > 0 {
		return result, &domain.ConflictError{
			Entity: "producto-inventario",
			Detail: fmt.Sprintf("associations already registered for inventories %v", result.Existing),
		}
	}

	return result, nil
}

// GetAssociation retrieves an association by id
func (s *AssociationService) GetAssociation(ctx context.Context, id int64) (*domain.ProductInventory, error) {
	return s.repos.ProductInventories().FindByID(ctx, id)
}

// ListByProduct lists a product's associations across inventories
func (s *AssociationService) ListByProduct(ctx context.Context, productID int64) ([]domain.ProductInventory, error) {
	return s.repos.ProductInventories().FindByProduct(ctx, productID)
}

// ListByInventory lists every association an inventory holds
func (s *AssociationService) ListByInventory(ctx context.Context, inventoryID int64) ([]domain.ProductInventory, error) {
	return s.repos.ProductInventories().FindByInventory(ctx, inventoryID)
}

// DeleteAssociation removes an association by id
func (s *AssociationService) DeleteAssociation(ctx context.Context, id int64) error {
	if err := s.repos.ProductInventories().Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateStockCache(ctx)
	return nil
}

// UpdateQuantity overwrites an association's quantity with the given
// absolute value. This is the one mutator that deliberately skips the
// read-modify-write path.
func (s *AssociationService) UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.ProductInventory, error) {
	if quantity < 0 {
		return nil, &domain.ValidationError{Field: "quantity", Detail: "quantity cannot be negative"}
	}

	if err := s.repos.ProductInventories().UpdateQuantity(ctx, id, quantity); err != nil {
		return nil, err
	}

	s.invalidateStockCache(ctx)

	s.logger.InfoContext(ctx, "association quantity overwritten",
		slog.Int64("association_id", id),
		slog.Int("quantity", quantity))

	return s.repos.ProductInventories().FindByID(ctx, id)
}

// LinkSupplier registers a supplier for a product
func (s *AssociationService) LinkSupplier(ctx context.Context, productID, supplierID int64) (*domain.ProductSupplier, error) {
	if productID <= 0 {
		return nil, &domain.ValidationError{Field: "product_id", Detail: "product_id is required"}
	}
	if supplierID <= 0 {
		return nil, &domain.ValidationError{Field: "supplier_id", Detail: "supplier_id is required"}
	}

	var assoc domain.ProductSupplier
	err := s.tx.WithinTx(ctx, func(uow ports.UnitOfWork) error {
		if _, err := uow.Products().FindByID(ctx, productID); err != nil {
			return err
		}
		ok, err := uow.Suppliers().Exists(ctx, supplierID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.NewNotFoundError("proveedor", supplierID)
		}

		assoc = domain.ProductSupplier{ProductID: productID, SupplierID: supplierID}
		return uow.ProductSuppliers().Save(ctx, &assoc)
	})
	if err != nil {
		return nil, err
	}

	return &assoc, nil
}

// ListSuppliersByProduct lists a product's registered suppliers
func (s *AssociationService) ListSuppliersByProduct(ctx context.Context, productID int64) ([]domain.ProductSupplier, error) {
	return s.repos.ProductSuppliers().FindByProduct(ctx, productID)
}

// UnlinkSupplier removes a product-supplier link by id
func (s *AssociationService) UnlinkSupplier(ctx context.Context, id int64) error {
	return s.repos.ProductSuppliers().Delete(ctx, id)
}

func (s *AssociationService) invalidateStockCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "dashboard:*"); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate stock cache", "err", err)
	}
}
