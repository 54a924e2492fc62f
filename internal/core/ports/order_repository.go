// internal/core/ports/order_repository.go
package ports

import (
	"context"
	"time"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
)

// OrderRepository defines the persistence port for orders.
type OrderRepository interface {
	// Save inserts the order header and sets order.ID.
	Save(ctx context.Context, order *domain.Order) error
	// SaveProducts batch-inserts the order's lines.
	SaveProducts(ctx context.Context, orderID int64, lines []domain.OrderProduct) error
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindAll(ctx context.Context, params OrderListParams) (*OrderListResult, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	Delete(ctx context.Context, id int64) error
}

// OrderListParams holds filters for listing orders
type OrderListParams struct {
	SupplierID  int64
	InventoryID int64
	Status      string
	SortBy      string
	SortOrder   string
	Page        int
	PageSize    int
}

// OrderListResult holds a page of orders
type OrderListResult struct {
	Orders     []*domain.Order `json:"orders"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalCount int64           `json:"total_count"`
	TotalPages int             `json:"total_pages"`
}

// ReportRepository defines the persistence port for monitor reports.
type ReportRepository interface {
	// Upsert inserts the report or, when one with the same (title,
	// type) exists, refreshes its description and payload in place.
	Upsert(ctx context.Context, report *domain.Report) error
	FindByID(ctx context.Context, id int64) (*domain.Report, error)
	FindAll(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReportStatus) error
	Delete(ctx context.Context, id int64) error
	// DeleteByStatus removes every report in the given status and
	// reports how many rows went away.
	DeleteByStatus(ctx context.Context, status domain.ReportStatus) (int64, error)
	// DeleteResolvedBefore purges resolved reports older than the
	// cutoff. Used by the cleanup worker.
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
