// internal/core/services/order.go
package services

import (
	"context"
	"log/slog"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// OrderService commits replenishment orders. The whole fulfillment
// runs inside one database transaction: the order header, every line
// and every stock increment land together or not at all.
type OrderService struct {
	tx     ports.TransactionManager
	repos  ports.UnitOfWork
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *OrderService implements the OrderService interface.
var _ ports.OrderService = (*OrderService)(nil)

// NewOrderService creates a new order service
func NewOrderService(tx ports.TransactionManager, repos ports.UnitOfWork, cache ports.CacheRepository, logger *slog.Logger) *OrderService {
	return &OrderService{
		tx:     tx,
		repos:  repos,
		cache:  cache,
		logger: logger.With(slog.String("service", "order")),
	}
}

// CreateOrder validates the order's references, persists it and applies
// each line's quantity to the target inventory's associations. A line
// whose (product, inventory) association exists is incremented under a
// row lock; a missing association is created with the line quantity.
func (s *OrderService) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	if order.Total.IsZero() {
		order.Total = order.ComputeTotal()
	}

	err := s.tx.WithinTx(ctx, func(uow ports.UnitOfWork) error {
		supplier, err := uow.Suppliers().FindByID(ctx, order.SupplierID)
		if err != nil {
			return err
		}

		inventory, err := uow.Inventories().FindByID(ctx, order.InventoryID)
		if err != nil {
			return err
		}

		if err := s.resolveProducts(ctx, uow, order); err != nil {
			return err
		}

		if err := uow.Orders().Save(ctx, order); err != nil {
			return err
		}
		if err := uow.Orders().SaveProducts(ctx, order.ID, order.Products); err != nil {
			return err
		}

		for i := range order.Products {
			line := &order.Products[i]
			if err := s.applyLine(ctx, uow, inventory.ID, line); err != nil {
				return err
			}
		}

		// Receiving stock counts as inventory activity.
		if err := uow.Inventories().Touch(ctx, inventory.ID); err != nil {
			return err
		}

		order.SupplierName = supplier.Name
		order.InventoryName = inventory.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateStockCache(ctx)

	s.logger.InfoContext(ctx, "order committed",
		slog.Int64("order_id", order.ID),
		slog.Int64("supplier_id", order.SupplierID),
		slog.Int64("inventory_id", order.InventoryID),
		slog.Int("lines", len(order.Products)))

	return order, nil
}

// resolveProducts loads every line's product in one batch and rejects
// the order naming all missing ids at once.
func (s *OrderService) resolveProducts(ctx context.Context, uow ports.UnitOfWork, order *domain.Order) error {
	ids := make([]int64, len(order.Products))
	for i := range order.Products {
		ids[i] = order.Products[i].ProductID
	}

	products, err := uow.Products().FindByIDs(ctx, ids)
	if err != nil {
		return err
	}

	found := make(map[int64]*domain.Product, len(products))
	for i := range products {
		found[products[i].ID] = &products[i]
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return domain.NewNotFoundError("producto", missing...)
	}

	for i := range order.Products {
		order.Products[i].ProductName = found[order.Products[i].ProductID].Name
	}

	return nil
}

// applyLine increments the existing association under a row lock or
// creates a fresh one holding the line quantity.
func (s *OrderService) applyLine(ctx context.Context, uow ports.UnitOfWork, inventoryID int64, line *domain.OrderProduct) error {
	assoc, err := uow.ProductInventories().FindByPairForUpdate(ctx, line.ProductID, inventoryID)
	if err != nil {
		if domain.IsNotFound(err) {
			fresh := &domain.ProductInventory{
				ProductID:   line.ProductID,
				InventoryID: inventoryID,
				Quantity:    line.Quantity,
			}
			return uow.ProductInventories().Save(ctx, fresh)
		}
		return err
	}

	return uow.ProductInventories().UpdateQuantity(ctx, assoc.ID, assoc.Quantity+line.Quantity)
}

// GetOrder retrieves an order with its lines
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repos.Orders().FindByID(ctx, id)
}

// ListOrders retrieves orders with filtering and pagination
func (s *OrderService) ListOrders(ctx context.Context, params ports.OrderListParams) (*ports.OrderListResult, error) {
	return s.repos.Orders().FindAll(ctx, params)
}

// UpdateOrderStatus changes an order's lifecycle state. It never
// re-applies stock: stock moved when the order was created.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	if !status.IsValid() {
		return &domain.ValidationError{Field: "status", Detail: "invalid order status"}
	}
	return s.repos.Orders().UpdateStatus(ctx, id, status)
}

// DeleteOrder removes an order record
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	return s.repos.Orders().Delete(ctx, id)
}

func (s *OrderService) invalidateStockCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, "dashboard:*"); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate stock cache", "err", err)
	}
}
