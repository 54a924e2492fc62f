// internal/core/services/monitor.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

const sweepLockKey = "monitor:sweep:lock"

// MonitorConfig holds the threshold watermarks for the sweep.
type MonitorConfig struct {
	// InventoryLowWaterMark is the fraction of max stock below which
	// an inventory is reported.
	InventoryLowWaterMark float64
	// ProductLowWaterMark is the unit count below which a product is
	// reported, per inventory and globally.
	ProductLowWaterMark int
	// LockTTL bounds how long an in-flight sweep holds the lock.
	LockTTL time.Duration
}

// DefaultMonitorConfig returns the standard watermarks
func DefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		InventoryLowWaterMark: 0.20,
		ProductLowWaterMark:   10,
		LockTTL:               time.Minute * 5,
	}
}

// MonitorService runs the stock threshold sweep. Each sweep wipes the
// pending reports and rebuilds them from current stock, so the pending
// set always mirrors the latest observed breaches. The sweep takes no
// database locks; a snapshot skewed by concurrent writes is corrected
// by the next sweep.
type MonitorService struct {
	repos  ports.UnitOfWork
	cache  ports.CacheRepository
	config MonitorConfig
	logger *slog.Logger
}

// Statically assert that *MonitorService implements the MonitorService interface.
var _ ports.MonitorService = (*MonitorService)(nil)

// NewMonitorService creates a new monitor service
func NewMonitorService(repos ports.UnitOfWork, cache ports.CacheRepository, config MonitorConfig, logger *slog.Logger) *MonitorService {
	if config.InventoryLowWaterMark <= 0 {
		config.InventoryLowWaterMark = 0.20
	}
	if config.ProductLowWaterMark <= 0 {
		config.ProductLowWaterMark = 10
	}
	if config.LockTTL <= 0 {
		config.LockTTL = time.Minute * 5
	}

	return &MonitorService{
		repos:  repos,
		cache:  cache,
		config: config,
		logger: logger.With(slog.String("service", "monitor")),
	}
}

// RunSweep executes one full sweep. Report emissions are independent
// steps: a failed upsert is recorded in the result and the sweep moves
// on to the next candidate.
func (s *MonitorService) RunSweep(ctx context.Context) (*ports.SweepResult, error) {
	if s.cache != nil {
		acquired, err := s.cache.SetNX(ctx, sweepLockKey, time.Now().Unix(), s.config.LockTTL)
		if err != nil {
			s.logger.WarnContext(ctx, "sweep lock unavailable, proceeding without it", "err", err)
		} else if !acquired {
			s.logger.InfoContext(ctx, "sweep already in progress, skipping")
			return &ports.SweepResult{}, nil
		} else {
			defer func() {
				// Release even when the sweep's context was cancelled,
				// otherwise the lock lingers for the full TTL.
				releaseCtx := context.WithoutCancel(ctx)
				if err := s.cache.Delete(releaseCtx, sweepLockKey); err != nil {
					s.logger.WarnContext(releaseCtx, "failed to release sweep lock", "err", err)
				}
			}()
		}
	}

	started := time.Now()
	result := &ports.SweepResult{}

	deleted, err := s.repos.Reports().DeleteByStatus(ctx, domain.ReportStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to clear pending reports: %w", err)
	}
	result.Deleted = deleted

	s.sweepInventories(ctx, result)
	s.sweepAssociations(ctx, result)
	s.sweepGlobalStock(ctx, result)

	s.logger.InfoContext(ctx, "monitor sweep finished",
		slog.Int64("deleted_pending", result.Deleted),
		slog.Int("reports", len(result.Reports)),
		slog.Int("failures", len(result.Failures)),
		slog.Duration("elapsed", time.Since(started)))

	return result, nil
}

// sweepInventories reports inventories whose derived stock fell under
// the low-water fraction of max stock.
func (s *MonitorService) sweepInventories(ctx context.Context, result *ports.SweepResult) {
	stocks, err := s.repos.Inventories().StockSummary(ctx)
	if err != nil {
		s.recordFailure(ctx, result, fmt.Errorf("inventory stock summary: %w", err))
		return
	}

	for _, stock := range stocks {
		threshold := float64(stock.MaxStock) * s.config.InventoryLowWaterMark
		if float64(stock.CurrentStock) >= threshold {
			continue
		}

		report := domain.Report{
			Title:  fmt.Sprintf("Inventario bajo: %s", stock.Name),
			Type:   domain.ReportTypeInventory,
			Status: domain.ReportStatusPending,
			Description: fmt.Sprintf(
				"El inventario %s tiene %d unidades de un máximo de %d.",
				stock.Name, stock.CurrentStock, stock.MaxStock),
		}
		report.Payload = mustPayload(map[string]interface{}{
			"inventory_id":  stock.InventoryID,
			"current_stock": stock.CurrentStock,
			"max_stock":     stock.MaxStock,
		})

		s.emit(ctx, result, report)
	}
}

// sweepAssociations reports (product, inventory) pairs holding fewer
// units than the product watermark.
func (s *MonitorService) sweepAssociations(ctx context.Context, result *ports.SweepResult) {
	assocs, err := s.repos.ProductInventories().LowQuantity(ctx, s.config.ProductLowWaterMark)
	if err != nil {
		s.recordFailure(ctx, result, fmt.Errorf("low quantity associations: %w", err))
		return
	}

	for _, assoc := range assocs {
		report := domain.Report{
			Title:  fmt.Sprintf("Producto bajo en inventario: %s en %s", assoc.ProductName, assoc.InventoryName),
			Type:   domain.ReportTypeProduct,
			Status: domain.ReportStatusPending,
			Description: fmt.Sprintf(
				"El producto %s tiene %d unidades en el inventario %s.",
				assoc.ProductName, assoc.Quantity, assoc.InventoryName),
		}
		report.Payload = mustPayload(map[string]interface{}{
			"product_id":   assoc.ProductID,
			"inventory_id": assoc.InventoryID,
			"quantity":     assoc.Quantity,
		})

		s.emit(ctx, result, report)
	}
}

// sweepGlobalStock reports products whose stock summed across every
// inventory is under the watermark, including products that are not
// associated to any inventory at all.
func (s *MonitorService) sweepGlobalStock(ctx context.Context, result *ports.SweepResult) {
	stocks, err := s.repos.Products().GlobalStock(ctx)
	if err != nil {
		s.recordFailure(ctx, result, fmt.Errorf("global product stock: %w", err))
		return
	}

	for _, stock := range stocks {
		if stock.GlobalStock >= s.config.ProductLowWaterMark {
			continue
		}

		report := domain.Report{
			Title:  fmt.Sprintf("Stock global bajo: %s", stock.Name),
			Type:   domain.ReportTypeProduct,
			Status: domain.ReportStatusPending,
			Description: fmt.Sprintf(
				"El producto %s tiene %d unidades en total.",
				stock.Name, stock.GlobalStock),
		}
		report.Payload = mustPayload(map[string]interface{}{
			"product_id":   stock.ProductID,
			"global_stock": stock.GlobalStock,
		})

		s.emit(ctx, result, report)
	}
}

func (s *MonitorService) emit(ctx context.Context, result *ports.SweepResult, report domain.Report) {
	if err := s.repos.Reports().Upsert(ctx, &report); err != nil {
		s.recordFailure(ctx, result, fmt.Errorf("upsert report %q: %w", report.Title, err))
		return
	}
	result.Reports = append(result.Reports, report)
}

func (s *MonitorService) recordFailure(ctx context.Context, result *ports.SweepResult, err error) {
	s.logger.ErrorContext(ctx, "sweep step failed", "err", err)
	result.Failures = append(result.Failures, err.Error())
}

func mustPayload(v map[string]interface{}) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
