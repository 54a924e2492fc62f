// internal/handlers/dashboard.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// DashboardHandler serves the aggregated stock view
type DashboardHandler struct {
	service ports.DashboardService
	logger  *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service ports.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "dashboard")),
	}
}

// StockSummary handles GET /api/v1/dashboard/stock
func (h *DashboardHandler) StockSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.service.StockSummary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build stock summary",
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, summary)
}
