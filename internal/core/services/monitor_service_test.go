// internal/core/services/monitor_service_test.go
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
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/services"
	"github.com/alezcf/ProyectoGestion-sub000/test/helpers"
)

// expectSweepLock wires the lock acquisition and release around a sweep.
func expectSweepLock(f *serviceFixtures) {
	f.cache.EXPECT().
		SetNX(gomock.Any(), "monitor:sweep:lock", gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.cache.EXPECT().
		Delete(gomock.Any(), "monitor:sweep:lock").
		Return(nil)
}

func TestMonitorService_RunSweep_WatermarkMath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	expectSweepLock(f)

	// One inventory with 50 of 300 units. 50 is under the 20% mark
	// (60) so the inventory is reported, but the single association
	// and the product's global stock both hold 50 units, which clears
	// the 10-unit product watermark.
	f.uow.ReportsRepo.EXPECT().
		DeleteByStatus(gomock.Any(), domain.ReportStatusPending).
		Return(int64(3), nil)
	f.uow.InventoriesRepo.EXPECT().
		StockSummary(gomock.Any()).
		Return([]domain.InventoryStock{
			{InventoryID: 1, Name: "Bodega Central", CurrentStock: 50, MaxStock: 300},
		}, nil)
	f.uow.ProductInventoriesRepo.EXPECT().
		LowQuantity(gomock.Any(), 10).
		Return(nil, nil)
	f.uow.ProductsRepo.EXPECT().
		GlobalStock(gomock.Any()).
		Return([]domain.ProductStock{
			{ProductID: 1, Name: "Detergente Liquido 1L", GlobalStock: 50},
		}, nil)
	f.uow.ReportsRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, report *domain.Report) error {
			assert.Equal(t, "Inventario bajo: Bodega Central", report.Title)
			assert.Equal(t, domain.ReportTypeInventory, report.Type)
			assert.Equal(t, domain.ReportStatusPending, report.Status)
			return nil
		})

	service := services.NewMonitorService(f.uow, f.cache, services.DefaultMonitorConfig(), helpers.TestLogger())
	result, err := service.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Deleted)
	assert.Len(t, result.Reports, 1)
	assert.Empty(t, result.Failures)
}

func TestMonitorService_RunSweep_EmitsAllThreeReportKinds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	expectSweepLock(f)

	f.uow.ReportsRepo.EXPECT().
		DeleteByStatus(gomock.Any(), domain.ReportStatusPending).
		Return(int64(0), nil)
	f.uow.InventoriesRepo.EXPECT().
		StockSummary(gomock.Any()).
		Return([]domain.InventoryStock{
			{InventoryID: 1, Name: "Bodega Central", CurrentStock: 4, MaxStock: 300},
			{InventoryID: 2, Name: "Bodega Sur", CurrentStock: 250, MaxStock: 300},
		}, nil)
	f.uow.ProductInventoriesRepo.EXPECT().
		LowQuantity(gomock.Any(), 10).
		Return([]domain.ProductInventory{
			{ID: 9, ProductID: 1, InventoryID: 1, Quantity: 4,
				ProductName: "Detergente Liquido 1L", InventoryName: "Bodega Central"},
		}, nil)
	f.uow.ProductsRepo.EXPECT().
		GlobalStock(gomock.Any()).
		Return([]domain.ProductStock{
			{ProductID: 1, Name: "Detergente Liquido 1L", GlobalStock: 4},
			{ProductID: 2, Name: "Cloro Gel 900ml", GlobalStock: 0},
		}, nil)

	titles := make([]string, 0, 4)
	f.uow.ReportsRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Times(4).
		DoAndReturn(func(ctx context.Context, report *domain.Report) error {
			titles = append(titles, report.Title)
			return nil
		})

	service := services.NewMonitorService(f.uow, f.cache, services.DefaultMonitorConfig(), helpers.TestLogger())
	result, err := service.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Len(t, result.Reports, 4)
	assert.Contains(t, titles, "Inventario bajo: Bodega Central")
	assert.Contains(t, titles, "Producto bajo en inventario: Detergente Liquido 1L en Bodega Central")
	assert.Contains(t, titles, "Stock global bajo: Detergente Liquido 1L")
	assert.Contains(t, titles, "Stock global bajo: Cloro Gel 900ml")
}

func TestMonitorService_RunSweep_FailedEmissionDoesNotStopTheSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	expectSweepLock(f)

	f.uow.ReportsRepo.EXPECT().
		DeleteByStatus(gomock.Any(), domain.ReportStatusPending).
		Return(int64(0), nil)
	f.uow.InventoriesRepo.EXPECT().
		StockSummary(gomock.Any()).
		Return([]domain.InventoryStock{
			{InventoryID: 1, Name: "Bodega Central", CurrentStock: 0, MaxStock: 300},
			{InventoryID: 2, Name: "Bodega Sur", CurrentStock: 0, MaxStock: 300},
		}, nil)
	f.uow.ProductInventoriesRepo.EXPECT().
		LowQuantity(gomock.Any(), 10).
		Return(nil, nil)
	f.uow.ProductsRepo.EXPECT().
		GlobalStock(gomock.Any()).
		Return(nil, nil)

	gomock.InOrder(
		f.uow.ReportsRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return(errors.New("database connection failed")),
		f.uow.ReportsRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return(nil),
	)

	service := services.NewMonitorService(f.uow, f.cache, services.DefaultMonitorConfig(), helpers.TestLogger())
	result, err := service.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Len(t, result.Reports, 1)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "database connection failed")
}

func TestMonitorService_RunSweep_QueryFailureIsolatedPerPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	expectSweepLock(f)

	f.uow.ReportsRepo.EXPECT().
		DeleteByStatus(gomock.Any(), domain.ReportStatusPending).
		Return(int64(0), nil)
	f.uow.InventoriesRepo.EXPECT().
		StockSummary(gomock.Any()).
		Return(nil, errors.New("relation vanished"))
	f.uow.ProductInventoriesRepo.EXPECT().
		LowQuantity(gomock.Any(), 10).
		Return(nil, nil)
	f.uow.ProductsRepo.EXPECT().
		GlobalStock(gomock.Any()).
		Return([]domain.ProductStock{
			{ProductID: 2, Name: "Cloro Gel 900ml", GlobalStock: 2},
		}, nil)
	f.uow.ReportsRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil)

	service := services.NewMonitorService(f.uow, f.cache, services.DefaultMonitorConfig(), helpers.TestLogger())
	result, err := service.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Len(t, result.Reports, 1)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "inventory stock summary")
}

func TestMonitorService_RunSweep_WipeFailureAbortsTheSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	expectSweepLock(f)

	f.uow.ReportsRepo.EXPECT().
		DeleteByStatus(gomock.Any(), domain.ReportStatusPending).
		Return(int64(0), errors.New("database connection failed"))

	service := services.NewMonitorService(f.uow, f.cache, services.DefaultMonitorConfig(), helpers.TestLogger())
	result, err := service.RunSweep(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear pending reports")
	assert.Nil(t, result)
}

func TestMonitorService_RunSweep_SkipsWhenLockIsHeld(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	f.cache.EXPECT().
		SetNX(gomock.Any(), "monitor:sweep:lock", gomock.Any(), gomock.Any()).
		Return(false, nil)

	service := services.NewMonitorService(f.uow, f.cache, services.DefaultMonitorConfig(), helpers.TestLogger())
	result, err := service.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Zero(t, result.Deleted)
	assert.Empty(t, result.Reports)
}

func TestMonitorService_RunSweep_ReleasesLockWhenCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	// The caller gives up right after the lock is taken.
	f.cache.EXPECT().
		SetNX(gomock.Any(), "monitor:sweep:lock", gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string, interface{}, time.Duration) (bool, error) {
			cancel()
			return true, nil
		})
	f.uow.ReportsRepo.EXPECT().
		DeleteByStatus(gomock.Any(), domain.ReportStatusPending).
		Return(int64(0), context.Canceled)

	// The lock must still come off, on a context that outlives the
	// cancellation, or it would linger for the full TTL.
	f.cache.EXPECT().
		Delete(gomock.Any(), "monitor:sweep:lock").
		DoAndReturn(func(releaseCtx context.Context, keys ...string) error {
			assert.NoError(t, releaseCtx.Err())
			return nil
		})

	service := services.NewMonitorService(f.uow, f.cache, services.DefaultMonitorConfig(), helpers.TestLogger())
	_, err := service.RunSweep(ctx)
	require.Error(t, err)
}

func TestMonitorService_RunSweep_ProceedsWhenLockErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	f.cache.EXPECT().
		SetNX(gomock.Any(), "monitor:sweep:lock", gomock.Any(), gomock.Any()).
		Return(false, errors.New("redis unreachable"))

	f.uow.ReportsRepo.EXPECT().
		DeleteByStatus(gomock.Any(), domain.ReportStatusPending).
		Return(int64(0), nil)
	f.uow.InventoriesRepo.EXPECT().
		StockSummary(gomock.Any()).
		Return(nil, nil)
	f.uow.ProductInventoriesRepo.EXPECT().
		LowQuantity(gomock.Any(), 10).
		Return(nil, nil)
	f.uow.ProductsRepo.EXPECT().
		GlobalStock(gomock.Any()).
		Return(nil, nil)

	service := services.NewMonitorService(f.uow, f.cache, services.DefaultMonitorConfig(), helpers.TestLogger())
	result, err := service.RunSweep(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result.Reports)
}

func TestNewMonitorService_AppliesDefaultWatermarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newServiceFixtures(ctrl)
	expectSweepLock(f)

	f.uow.ReportsRepo.EXPECT().
		DeleteByStatus(gomock.Any(), domain.ReportStatusPending).
		Return(int64(0), nil)
	f.uow.InventoriesRepo.EXPECT().
		StockSummary(gomock.Any()).
		Return(nil, nil)
	// A zero-valued config falls back to the 10-unit product watermark.
	f.uow.ProductInventoriesRepo.EXPECT().
		LowQuantity(gomock.Any(), 10).
		Return(nil, nil)
	f.uow.ProductsRepo.EXPECT().
		GlobalStock(gomock.Any()).
		Return(nil, nil)

	service := services.NewMonitorService(f.uow, f.cache, services.MonitorConfig{}, helpers.TestLogger())
	_, err := service.RunSweep(context.Background())
	require.NoError(t, err)
}
