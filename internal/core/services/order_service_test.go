// internal/core/services/order_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/services"
	"github.com/alezcf/ProyectoGestion-sub000/test/helpers"
	"github.com/alezcf/ProyectoGestion-sub000/test/mocks"
)

// serviceFixtures bundles the mocked unit of work, the fake transaction
// manager running against it and a mocked cache.
type serviceFixtures struct {
	uow   *mocks.FakeUnitOfWork
	tx    *mocks.FakeTxManager
	cache *mocks.MockCacheRepository
}

func newServiceFixtures(ctrl *gomock.Controller) *serviceFixtures {
	uow := &mocks.FakeUnitOfWork{
		ProductsRepo:           mocks.NewMockProductRepository(ctrl),
		InventoriesRepo:        mocks.NewMockInventoryRepository(ctrl),
		SuppliersRepo:          mocks.NewMockSupplierRepository(ctrl),
		ProductInventoriesRepo: mocks.NewMockProductInventoryRepository(ctrl),
		ProductSuppliersRepo:   mocks.NewMockProductSupplierRepository(ctrl),
		OrdersRepo:             mocks.NewMockOrderRepository(ctrl),
		ReportsRepo:            mocks.NewMockReportRepository(ctrl),
	}

	return &serviceFixtures{
		uow:   uow,
		tx:    &mocks.FakeTxManager{UOW: uow},
		cache: mocks.NewMockCacheRepository(ctrl),
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	supplier := helpers.CreateTestSupplier(func(s *domain.Supplier) { s.ID = 1 })
	inventory := helpers.CreateTestInventory(func(i *domain.Inventory) { i.ID = 1 })
	product := helpers.CreateTestProduct(func(p *domain.Product) { p.ID = 1 })

	tests := []struct {
		name          string
		order         *domain.Order
		setupMocks    func(t *testing.T, f *serviceFixtures)
		expectedError bool
		errorContains string
	}{
		{
			name:  "increments_existing_association_under_lock",
			order: helpers.CreateTestOrder(),
			setupMocks: func(t *testing.T, f *serviceFixtures) {
				f.uow.SuppliersRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(supplier, nil)
				f.uow.InventoriesRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(inventory, nil)
				f.uow.ProductsRepo.EXPECT().
					FindByIDs(gomock.Any(), []int64{1}).
					Return([]domain.Product{*product}, nil)
				f.uow.OrdersRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, order *domain.Order) error {
						order.ID = 42
						return nil
					})
				f.uow.OrdersRepo.EXPECT().
					SaveProducts(gomock.Any(), int64(42), gomock.Any()).
					Return(nil)
				f.uow.ProductInventoriesRepo.EXPECT().
					FindByPairForUpdate(gomock.Any(), int64(1), int64(1)).
					Return(&domain.ProductInventory{ID: 7, ProductID: 1, InventoryID: 1, Quantity: 5}, nil)
				f.uow.ProductInventoriesRepo.EXPECT().
					UpdateQuantity(gomock.Any(), int64(7), 15).
					Return(nil)
				f.uow.InventoriesRepo.EXPECT().
					Touch(gomock.Any(), int64(1)).
					Return(nil)
				f.cache.EXPECT().
					DeletePattern(gomock.Any(), "dashboard:*").
					Return(nil)
			},
		},
		{
			name:  "creates_association_when_pair_is_missing",
			order: helpers.CreateTestOrder(),
			setupMocks: func(t *testing.T, f *serviceFixtures) {
				f.uow.SuppliersRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(supplier, nil)
				f.uow.InventoriesRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(inventory, nil)
				f.uow.ProductsRepo.EXPECT().
					FindByIDs(gomock.Any(), []int64{1}).
					Return([]domain.Product{*product}, nil)
				f.uow.OrdersRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
				f.uow.OrdersRepo.EXPECT().
					SaveProducts(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				f.uow.ProductInventoriesRepo.EXPECT().
					FindByPairForUpdate(gomock.Any(), int64(1), int64(1)).
					Return(nil, domain.NewNotFoundError("producto-inventario", 1))
				f.uow.ProductInventoriesRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, assoc *domain.ProductInventory) error {
						assert.Equal(t, int64(1), assoc.ProductID)
						assert.Equal(t, int64(1), assoc.InventoryID)
						assert.Equal(t, 10, assoc.Quantity)
						return nil
					})
				f.uow.InventoriesRepo.EXPECT().
					Touch(gomock.Any(), int64(1)).
					Return(nil)
				f.cache.EXPECT().
					DeletePattern(gomock.Any(), "dashboard:*").
					Return(nil)
			},
		},
		{
			name: "rejects_order_with_missing_supplier",
			order: helpers.CreateTestOrder(func(o *domain.Order) {
				o.SupplierID = 999
			}),
			setupMocks: func(t *testing.T, f *serviceFixtures) {
				f.uow.SuppliersRepo.EXPECT().
					FindByID(gomock.Any(), int64(999)).
					Return(nil, domain.NewNotFoundError("proveedor", 999))
			},
			expectedError: true,
			errorContains: "proveedor not found: 999",
		},
		{
			name:  "rejects_order_with_missing_inventory",
			order: helpers.CreateTestOrder(),
			setupMocks: func(t *testing.T, f *serviceFixtures) {
				f.uow.SuppliersRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(supplier, nil)
				f.uow.InventoriesRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(nil, domain.NewNotFoundError("inventario", 1))
			},
			expectedError: true,
			errorContains: "inventario not found: 1",
		},
		{
			name: "names_every_missing_product_at_once",
			order: helpers.CreateTestOrder(func(o *domain.Order) {
				o.Products = []domain.OrderProduct{
					{ProductID: 7, Quantity: 2, UnitPrice: decimal.NewFromInt(1000)},
					{ProductID: 9, Quantity: 3, UnitPrice: decimal.NewFromInt(500)},
				}
			}),
			setupMocks: func(t *testing.T, f *serviceFixtures) {
				f.uow.SuppliersRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(supplier, nil)
				f.uow.InventoriesRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(inventory, nil)
				f.uow.ProductsRepo.EXPECT().
					FindByIDs(gomock.Any(), []int64{7, 9}).
					Return(nil, nil)
			},
			expectedError: true,
			errorContains: "producto not found: 7, 9",
		},
		{
			name: "validation_fails_for_order_without_lines",
			order: helpers.CreateTestOrder(func(o *domain.Order) {
				o.Products = nil
			}),
			setupMocks:    func(t *testing.T, f *serviceFixtures) {},
			expectedError: true,
			errorContains: "at least one product",
		},
		{
			name: "validation_fails_for_duplicate_product_lines",
			order: helpers.CreateTestOrder(func(o *domain.Order) {
				o.Products = []domain.OrderProduct{
					{ProductID: 1, Quantity: 2, UnitPrice: decimal.NewFromInt(1000)},
					{ProductID: 1, Quantity: 3, UnitPrice: decimal.NewFromInt(1000)},
				}
			}),
			setupMocks:    func(t *testing.T, f *serviceFixtures) {},
			expectedError: true,
			errorContains: "duplicate",
		},
		{
			name:  "line_save_error_aborts_the_whole_order",
			order: helpers.CreateTestOrder(),
			setupMocks: func(t *testing.T, f *serviceFixtures) {
				f.uow.SuppliersRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(supplier, nil)
				f.uow.InventoriesRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(inventory, nil)
				f.uow.ProductsRepo.EXPECT().
					FindByIDs(gomock.Any(), []int64{1}).
					Return([]domain.Product{*product}, nil)
				f.uow.OrdersRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
				f.uow.OrdersRepo.EXPECT().
					SaveProducts(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database connection failed"))
			},
			expectedError: true,
			errorContains: "database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newServiceFixtures(ctrl)
			tt.setupMocks(t, f)

			service := services.NewOrderService(f.tx, f.uow, f.cache, helpers.TestLogger())
			created, err := service.CreateOrder(context.Background(), tt.order)

			if tt.expectedError {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				require.NotNil(t, created)
				assert.Equal(t, supplier.Name, created.SupplierName)
				assert.Equal(t, inventory.Name, created.InventoryName)
			}
		})
	}
}

func TestOrderService_CreateOrder_ComputesTotalFromLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	order := helpers.CreateTestOrder(func(o *domain.Order) {
		o.Products = []domain.OrderProduct{
			{ProductID: 1, Quantity: 10, UnitPrice: decimal.NewFromInt(2990)},
		}
	})

	f.uow.SuppliersRepo.EXPECT().
		FindByID(gomock.Any(), int64(1)).
		Return(helpers.CreateTestSupplier(), nil)
	f.uow.InventoriesRepo.EXPECT().
		FindByID(gomock.Any(), int64(1)).
		Return(helpers.CreateTestInventory(func(i *domain.Inventory) { i.ID = 1 }), nil)
	f.uow.ProductsRepo.EXPECT().
		FindByIDs(gomock.Any(), []int64{1}).
		Return([]domain.Product{*helpers.CreateTestProduct(func(p *domain.Product) { p.ID = 1 })}, nil)
	f.uow.OrdersRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, o *domain.Order) error {
			assert.True(t, o.Total.Equal(decimal.NewFromInt(29900)),
				"Expected total 29900, got %s", o.Total)
			return nil
		})
	f.uow.OrdersRepo.EXPECT().
		SaveProducts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	f.uow.ProductInventoriesRepo.EXPECT().
		FindByPairForUpdate(gomock.Any(), int64(1), int64(1)).
		Return(nil, domain.NewNotFoundError("producto-inventario", 1))
	f.uow.ProductInventoriesRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(nil)
	f.uow.InventoriesRepo.EXPECT().
		Touch(gomock.Any(), int64(1)).
		Return(nil)
	f.cache.EXPECT().
		DeletePattern(gomock.Any(), "dashboard:*").
		Return(nil)

	service := services.NewOrderService(f.tx, f.uow, f.cache, helpers.TestLogger())
	_, err := service.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, 1, f.tx.Calls)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        domain.OrderStatus
		setupMocks    func(f *serviceFixtures)
		expectedError bool
		errorContains string
	}{
		{
			name:   "updates_to_valid_status",
			status: domain.OrderStatusCancelled,
			setupMocks: func(f *serviceFixtures) {
				f.uow.OrdersRepo.EXPECT().
					UpdateStatus(gomock.Any(), int64(42), domain.OrderStatusCancelled).
					Return(nil)
			},
		},
		{
			name:          "rejects_unknown_status",
			status:        domain.OrderStatus("Shipped"),
			setupMocks:    func(f *serviceFixtures) {},
			expectedError: true,
			errorContains: "invalid order status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newServiceFixtures(ctrl)
			tt.setupMocks(f)

			service := services.NewOrderService(f.tx, f.uow, f.cache, helpers.TestLogger())
			err := service.UpdateOrderStatus(context.Background(), 42, tt.status)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.True(t, domain.IsValidation(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	params := ports.OrderListParams{Page: 1, PageSize: 20}
	f.uow.OrdersRepo.EXPECT().
		FindAll(gomock.Any(), params).
		Return(&ports.OrderListResult{TotalCount: 0}, nil)

	service := services.NewOrderService(f.tx, f.uow, f.cache, helpers.TestLogger())
	result, err := service.ListOrders(context.Background(), params)
	require.NoError(t, err)
	assert.Zero(t, result.TotalCount)
}
