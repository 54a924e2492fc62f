// internal/core/services/dashboard.go
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

const (
	dashboardStockKey = "dashboard:stock"
	dashboardStockTTL = time.Minute * 5
)

// DashboardService serves the stock overview, cached in Redis and
// invalidated whenever orders or association edits move stock.
type DashboardService struct {
	repos  ports.UnitOfWork
	cache  ports.CacheRepository
	logger *slog.Logger
}

var _ ports.DashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos ports.UnitOfWork, cache ports.CacheRepository, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		repos:  repos,
		cache:  cache,
		logger: logger.With(slog.String("service", "dashboard")),
	}
}

// StockSummary returns every inventory's and product's stock position
func (s *DashboardService) StockSummary(ctx context.Context) (*ports.StockSummary, error) {
	fetch := func() (interface{}, error) {
		inventories, err := s.repos.Inventories().StockSummary(ctx)
		if err != nil {
			return nil, err
		}
		products, err := s.repos.Products().GlobalStock(ctx)
		if err != nil {
			return nil, err
		}
		return &ports.StockSummary{Inventories: inventories, Products: products}, nil
	}

	if s.cache == nil {
		summary, err := fetch()
		if err != nil {
			return nil, err
		}
		return summary.(*ports.StockSummary), nil
	}

	var summary ports.StockSummary
	if err := s.cache.GetOrSet(ctx, dashboardStockKey, &summary, fetch, dashboardStockTTL); err != nil {
		return nil, err
	}

	return &summary, nil
}
