// internal/core/services/catalog_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/services"
	"github.com/alezcf/ProyectoGestion-sub000/test/helpers"
)

func TestCatalogService_SaveProduct(t *testing.T) {
	t.Run("validates_before_saving", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		service := services.NewCatalogService(f.uow, f.cache, helpers.TestLogger())

		err := service.SaveProduct(context.Background(), &domain.Product{})
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("persists_valid_product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		product := helpers.CreateTestProduct()
		f.uow.ProductsRepo.EXPECT().Save(gomock.Any(), product).Return(nil)

		service := services.NewCatalogService(f.uow, f.cache, helpers.TestLogger())
		require.NoError(t, service.SaveProduct(context.Background(), product))
	})
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	t.Run("rejects_missing_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		service := services.NewCatalogService(f.uow, f.cache, helpers.TestLogger())

		product := helpers.CreateTestProduct()
		product.ID = 0
		err := service.UpdateProduct(context.Background(), product)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("updates_existing_product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		product := helpers.CreateTestProduct(func(p *domain.Product) { p.ID = 3 })
		f.uow.ProductsRepo.EXPECT().Update(gomock.Any(), product).Return(nil)

		service := services.NewCatalogService(f.uow, f.cache, helpers.TestLogger())
		require.NoError(t, service.UpdateProduct(context.Background(), product))
	})
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	t.Run("delete_invalidates_stock_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		f.uow.ProductsRepo.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
		f.cache.EXPECT().DeletePattern(gomock.Any(), "dashboard:*").Return(nil)

		service := services.NewCatalogService(f.uow, f.cache, helpers.TestLogger())
		require.NoError(t, service.DeleteProduct(context.Background(), 3))
	})

	t.Run("missing_product_keeps_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		f.uow.ProductsRepo.EXPECT().
			Delete(gomock.Any(), int64(99)).
			Return(domain.NewNotFoundError("producto", 99))

		service := services.NewCatalogService(f.uow, f.cache, helpers.TestLogger())
		err := service.DeleteProduct(context.Background(), 99)
		require.Error(t, err)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestCatalogService_UpdateInventory(t *testing.T) {
	t.Run("max_stock_change_invalidates_stock_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		inventory := helpers.CreateTestInventory(func(i *domain.Inventory) {
			i.ID = 1
			i.MaxStock = 500
		})
		f.uow.InventoriesRepo.EXPECT().Update(gomock.Any(), inventory).Return(nil)
		f.cache.EXPECT().DeletePattern(gomock.Any(), "dashboard:*").Return(nil)

		service := services.NewCatalogService(f.uow, f.cache, helpers.TestLogger())
		require.NoError(t, service.UpdateInventory(context.Background(), inventory))
	})

	t.Run("rejects_nonpositive_max_stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		service := services.NewCatalogService(f.uow, f.cache, helpers.TestLogger())

		inventory := helpers.CreateTestInventory(func(i *domain.Inventory) {
			i.ID = 1
			i.MaxStock = 0
		})
		err := service.UpdateInventory(context.Background(), inventory)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestCatalogService_DeleteSupplier(t *testing.T) {
	t.Run("referenced_supplier_surfaces_conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		f.uow.SuppliersRepo.EXPECT().
			Delete(gomock.Any(), int64(2)).
			Return(&domain.ConflictError{Entity: "proveedor", Detail: "has orders referencing it"})

		service := services.NewCatalogService(f.uow, f.cache, helpers.TestLogger())
		err := service.DeleteSupplier(context.Background(), 2)
		require.Error(t, err)
		assert.True(t, domain.IsConflict(err))
	})
}
