// internal/core/services/dashboard_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/services"
	"github.com/alezcf/ProyectoGestion-sub000/test/helpers"
)

func TestDashboardService_StockSummary(t *testing.T) {
	t.Run("fetches_through_the_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)

		// GetOrSet misses and runs the fetch closure, which must hit
		// both repositories.
		f.cache.EXPECT().
			GetOrSet(gomock.Any(), "dashboard:stock", gomock.Any(), gomock.Any(), 5*time.Minute).
			DoAndReturn(func(ctx context.Context, key string, dest any, fetch func() (any, error), ttl time.Duration) error {
				fetched, err := fetch()
				if err != nil {
					return err
				}
				*dest.(*ports.StockSummary) = *fetched.(*ports.StockSummary)
				return nil
			})
		f.uow.InventoriesRepo.EXPECT().
			StockSummary(gomock.Any()).
			Return([]domain.InventoryStock{
				{InventoryID: 1, Name: "Bodega Central", CurrentStock: 120, MaxStock: 300},
			}, nil)
		f.uow.ProductsRepo.EXPECT().
			GlobalStock(gomock.Any()).
			Return([]domain.ProductStock{
				{ProductID: 1, Name: "Detergente Liquido 1L", GlobalStock: 120},
			}, nil)

		service := services.NewDashboardService(f.uow, f.cache, helpers.TestLogger())
		summary, err := service.StockSummary(context.Background())

		require.NoError(t, err)
		require.Len(t, summary.Inventories, 1)
		require.Len(t, summary.Products, 1)
		assert.Equal(t, 120, summary.Inventories[0].CurrentStock)
	})

	t.Run("works_without_a_cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		f.uow.InventoriesRepo.EXPECT().
			StockSummary(gomock.Any()).
			Return(nil, nil)
		f.uow.ProductsRepo.EXPECT().
			GlobalStock(gomock.Any()).
			Return(nil, nil)

		service := services.NewDashboardService(f.uow, nil, helpers.TestLogger())
		summary, err := service.StockSummary(context.Background())

		require.NoError(t, err)
		assert.Empty(t, summary.Inventories)
		assert.Empty(t, summary.Products)
	})

	t.Run("repository_error_propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newServiceFixtures(ctrl)
		f.cache.EXPECT().
			GetOrSet(gomock.Any(), "dashboard:stock", gomock.Any(), gomock.Any(), 5*time.Minute).
			DoAndReturn(func(ctx context.Context, key string, dest any, fetch func() (any, error), ttl time.Duration) error {
				_, err := fetch()
				return err
			})
		f.uow.InventoriesRepo.EXPECT().
			StockSummary(gomock.Any()).
			Return(nil, errors.New("database connection failed"))

		service := services.NewDashboardService(f.uow, f.cache, helpers.TestLogger())
		_, err := service.StockSummary(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "database connection failed")
	})
}
