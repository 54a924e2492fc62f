// internal/core/services/association_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/services"
	"github.com/alezcf/ProyectoGestion-sub000/test/helpers"
)

func TestAssociationService_CreateAssociations(t *testing.T) {
	product := helpers.CreateTestProduct(func(p *domain.Product) { p.ID = 1 })

	tests := []struct {
		name          string
		productID     int64
		inputs        []ports.AssociationInput
		setupMocks    func(f *serviceFixtures)
		expectedCount int
		expectedError bool
		errorContains string
	}{
		{
			name:      "creates_every_requested_pair",
			productID: 1,
			inputs: []ports.AssociationInput{
				{InventoryID: 1, Quantity: 50},
				{InventoryID: 2, Quantity: 0},
			},
			setupMocks: func(f *serviceFixtures) {
				f.uow.ProductsRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(product, nil)
				f.uow.InventoriesRepo.EXPECT().
					Exists(gomock.Any(), int64(1)).
					Return(true, nil)
				f.uow.InventoriesRepo.EXPECT().
					Exists(gomock.Any(), int64(2)).
					Return(true, nil)
				f.uow.ProductInventoriesRepo.EXPECT().
					FindByPair(gomock.Any(), int64(1), int64(1)).
					Return(nil, domain.NewNotFoundError("producto-inventario", 1))
				f.uow.ProductInventoriesRepo.EXPECT().
					FindByPair(gomock.Any(), int64(1), int64(2)).
					Return(nil, domain.NewNotFoundError("producto-inventario", 2))
				f.uow.ProductInventoriesRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Times(2).
					Return(nil)
				f.cache.EXPECT().
					DeletePattern(gomock.Any(), "dashboard:*").
					Return(nil)
			},
			expectedCount: 2,
		},
		{
			name:      "aborts_when_any_pair_exists",
			productID: 1,
			inputs: []ports.AssociationInput{
				{InventoryID: 1, Quantity: 50},
				{InventoryID: 2, Quantity: 20},
			},
			setupMocks: func(f *serviceFixtures) {
				f.uow.ProductsRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(product, nil)
				f.uow.InventoriesRepo.EXPECT().
					Exists(gomock.Any(), gomock.Any()).
					Times(2).
					Return(true, nil)
				f.uow.ProductInventoriesRepo.EXPECT().
					FindByPair(gomock.Any(), int64(1), int64(1)).
					Return(&domain.ProductInventory{ID: 9, ProductID: 1, InventoryID: 1}, nil)
			},
			expectedError: true,
			errorContains: "pair (1, 1) already exists",
		},
		{
			name:      "collects_all_missing_inventories",
			productID: 1,
			inputs: []ports.AssociationInput{
				{InventoryID: 5, Quantity: 10},
				{InventoryID: 6, Quantity: 10},
			},
			setupMocks: func(f *serviceFixtures) {
				f.uow.ProductsRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(product, nil)
				f.uow.InventoriesRepo.EXPECT().
					Exists(gomock.Any(), int64(5)).
					Return(false, nil)
				f.uow.InventoriesRepo.EXPECT().
					Exists(gomock.Any(), int64(6)).
					Return(false, nil)
			},
			expectedError: true,
			errorContains: "inventario not found: 5, 6",
		},
		{
			name:      "rejects_missing_product",
			productID: 404,
			inputs:    []ports.AssociationInput{{InventoryID: 1, Quantity: 10}},
			setupMocks: func(f *serviceFixtures) {
				f.uow.ProductsRepo.EXPECT().
					FindByID(gomock.Any(), int64(404)).
					Return(nil, domain.NewNotFoundError("producto", 404))
			},
			expectedError: true,
			errorContains: "producto not found: 404",
		},
		{
			name:          "validation_fails_for_empty_inputs",
			productID:     1,
			inputs:        nil,
			setupMocks:    func(f *serviceFixtures) {},
			expectedError: true,
			errorContains: "at least one inventory",
		},
		{
			name:      "validation_fails_for_duplicate_inventory",
			productID: 1,
			inputs: []ports.AssociationInput{
				{InventoryID: 1, Quantity: 10},
				{InventoryID: 1, Quantity: 20},
			},
			setupMocks:    func(f *serviceFixtures) {},
			expectedError: true,
			errorContains: "duplicate inventory",
		},
		{
			name:      "validation_fails_for_negative_quantity",
			productID: 1,
			inputs: []ports.AssociationInput{
				{InventoryID: 1, Quantity: -3},
			},
			setupMocks:    func(f *serviceFixtures) {},
			expectedError: true,
			errorContains: "quantity cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newServiceFixtures(ctrl)
			tt.setupMocks(f)

			service := services.NewAssociationService(f.tx, f.uow, f.cache, helpers.TestLogger())
			created, err := service.CreateAssociations(context.Background(), tt.productID, tt.inputs)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, created)
			} else {
				require.NoError(t, err)
				assert.Len(t, created, tt.expectedCount)
			}
		})
	}
}

func TestAssociationService_UpdateAssociations(t *testing.T) {
	product := helpers.CreateTestProduct(func(p *domain.Product) { p.ID = 1 })

	t.Run("creates_missing_and_reports_existing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)

		f.uow.ProductsRepo.EXPECT().
			FindByID(gomock.Any(), int64(1)).
			Return(product, nil)
		f.uow.InventoriesRepo.EXPECT().
			Exists(gomock.Any(), gomock.Any()).
			Times(2).
			Return(true, nil)
		f.uow.ProductInventoriesRepo.EXPECT().
			FindByPair(gomock.Any(), int64(1), int64(1)).
			Return(&domain.ProductInventory{ID: 9, ProductID: 1, InventoryID: 1}, nil)
		f.uow.ProductInventoriesRepo.EXPECT().
			FindByPair(gomock.Any(), int64(1), int64(2)).
			Return(nil, domain.NewNotFoundError("producto-inventario", 2))
		f.uow.ProductInventoriesRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)
		f.cache.EXPECT().
			DeletePattern(gomock.Any(), "dashboard:*").
			Return(nil)

		service := services.NewAssociationService(f.tx, f.uow, f.cache, helpers.TestLogger())
		result, err := service.UpdateAssociations(context.Background(), 1, []ports.AssociationInput{
			{InventoryID: 1, Quantity: 10},
			{InventoryID: 2, Quantity: 30},
		})

		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
		require.NotNil(t, result)
		assert.Len(t, result.Created, 1)
		assert.Equal(t, []int64{1}, result.Existing)
	})

	t.Run("clean_result_when_nothing_existed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)

		f.uow.ProductsRepo.EXPECT().
			FindByID(gomock.Any(), int64(1)).
			Return(product, nil)
		f.uow.InventoriesRepo.EXPECT().
			Exists(gomock.Any(), int64(3)).
			Return(true, nil)
		f.uow.ProductInventoriesRepo.EXPECT().
			FindByPair(gomock.Any(), int64(1), int64(3)).
			Return(nil, domain.NewNotFoundError("producto-inventario", 3))
		f.uow.ProductInventoriesRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil)
		f.cache.EXPECT().
			DeletePattern(gomock.Any(), "dashboard:*").
			Return(nil)

		service := services.NewAssociationService(f.tx, f.uow, f.cache, helpers.TestLogger())
		result, err := service.UpdateAssociations(context.Background(), 1, []ports.AssociationInput{
			{InventoryID: 3, Quantity: 15},
		})

		require.NoError(t, err)
		assert.Len(t, result.Created, 1)
		assert.Empty(t, result.Existing)
	})
}

func TestAssociationService_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		setupMocks    func(f *serviceFixtures)
		expectedError bool
		errorContains string
	}{
		{
			name:     "overwrites_with_absolute_value",
			quantity: 75,
			setupMocks: func(f *serviceFixtures) {
				f.uow.ProductInventoriesRepo.EXPECT().
					UpdateQuantity(gomock.Any(), int64(9), 75).
					Return(nil)
				f.cache.EXPECT().
					DeletePattern(gomock.Any(), "dashboard:*").
					Return(nil)
				f.uow.ProductInventoriesRepo.EXPECT().
					FindByID(gomock.Any(), int64(9)).
					Return(&domain.ProductInventory{ID: 9, Quantity: 75}, nil)
			},
		},
		{
			name:     "overwrite_to_zero_is_allowed",
			quantity: 0,
			setupMocks: func(f *serviceFixtures) {
				f.uow.ProductInventoriesRepo.EXPECT().
					UpdateQuantity(gomock.Any(), int64(9), 0).
					Return(nil)
				f.cache.EXPECT().
					DeletePattern(gomock.Any(), "dashboard:*").
					Return(nil)
				f.uow.ProductInventoriesRepo.EXPECT().
					FindByID(gomock.Any(), int64(9)).
					Return(&domain.ProductInventory{ID: 9, Quantity: 0}, nil)
			},
		},
		{
			name:          "rejects_negative_quantity",
			quantity:      -1,
			setupMocks:    func(f *serviceFixtures) {},
			expectedError: true,
			errorContains: "quantity cannot be negative",
		},
		{
			name:     "missing_association_surfaces_not_found",
			quantity: 10,
			setupMocks: func(f *serviceFixtures) {
				f.uow.ProductInventoriesRepo.EXPECT().
					UpdateQuantity(gomock.Any(), int64(9), 10).
					Return(domain.NewNotFoundError("producto-inventario", 9))
			},
			expectedError: true,
			errorContains: "producto-inventario not found: 9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newServiceFixtures(ctrl)
			tt.setupMocks(f)

			service := services.NewAssociationService(f.tx, f.uow, f.cache, helpers.TestLogger())
			assoc, err := service.UpdateQuantity(context.Background(), 9, tt.quantity)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				require.NotNil(t, assoc)
				assert.Equal(t, tt.quantity, assoc.Quantity)
			}
		})
	}
}

func TestAssociationService_LinkSupplier(t *testing.T) {
	product := helpers.CreateTestProduct(func(p *domain.Product) { p.ID = 1 })

	tests := []struct {
		name          string
		productID     int64
		supplierID    int64
		setupMocks    func(f *serviceFixtures)
		expectedError bool
		errorContains string
	}{
		{
			name:       "links_existing_pair_of_references",
			productID:  1,
			supplierID: 2,
			setupMocks: func(f *serviceFixtures) {
				f.uow.ProductsRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(product, nil)
				f.uow.SuppliersRepo.EXPECT().
					Exists(gomock.Any(), int64(2)).
					Return(true, nil)
				f.uow.ProductSuppliersRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:       "rejects_missing_supplier",
			productID:  1,
			supplierID: 404,
			setupMocks: func(f *serviceFixtures) {
				f.uow.ProductsRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(product, nil)
				f.uow.SuppliersRepo.EXPECT().
					Exists(gomock.Any(), int64(404)).
					Return(false, nil)
			},
			expectedError: true,
			errorContains: "proveedor not found: 404",
		},
		{
			name:       "duplicate_link_surfaces_conflict",
			productID:  1,
			supplierID: 2,
			setupMocks: func(f *serviceFixtures) {
				f.uow.ProductsRepo.EXPECT().
					FindByID(gomock.Any(), int64(1)).
					Return(product, nil)
				f.uow.SuppliersRepo.EXPECT().
					Exists(gomock.Any(), int64(2)).
					Return(true, nil)
				f.uow.ProductSuppliersRepo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(&domain.ConflictError{Entity: "producto-proveedor", Detail: "pair (1, 2) already exists"})
			},
			expectedError: true,
			errorContains: "already exists",
		},
		{
			name:          "validation_fails_for_zero_product",
			productID:     0,
			supplierID:    2,
			setupMocks:    func(f *serviceFixtures) {},
			expectedError: true,
			errorContains: "product_id is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newServiceFixtures(ctrl)
			tt.setupMocks(f)

			service := services.NewAssociationService(f.tx, f.uow, f.cache, helpers.TestLogger())
			assoc, err := service.LinkSupplier(context.Background(), tt.productID, tt.supplierID)

			if tt.expectedError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
			} else {
				require.NoError(t, err)
				require.NotNil(t, assoc)
				assert.Equal(t, tt.productID, assoc.ProductID)
				assert.Equal(t, tt.supplierID, assoc.SupplierID)
			}
		})
	}
}

func TestAssociationService_DeleteAssociation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	f.uow.ProductInventoriesRepo.EXPECT().
		Delete(gomock.Any(), int64(9)).
		Return(nil)
	f.cache.EXPECT().
		DeletePattern(gomock.Any(), "dashboard:*").
		Return(nil)

	service := services.NewAssociationService(f.tx, f.uow, f.cache, helpers.TestLogger())
	require.NoError(t, service.DeleteAssociation(context.Background(), 9))
}

func TestAssociationService_DeleteAssociation_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	f.uow.ProductInventoriesRepo.EXPECT().
		Delete(gomock.Any(), int64(9)).
		Return(errors.New("database connection failed"))

	service := services.NewAssociationService(f.tx, f.uow, f.cache, helpers.TestLogger())
	err := service.DeleteAssociation(context.Background(), 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database connection failed")
}
