// internal/handlers/reports.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// ReportHandler handles stock report HTTP requests
type ReportHandler struct {
	service ports.ReportService
	monitor ports.MonitorService
	logger  *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(service ports.ReportService, monitor ports.MonitorService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		monitor: monitor,
		logger:  logger.With(slog.String("handler", "report")),
	}
}

// ListReports handles GET /api/v1/reportes?status=
func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := domain.ReportStatus(r.URL.Query().Get("status"))

	reports, err := h.service.ListReports(ctx, status)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list reports",
			slog.String("status", string(status)),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, reports)
}

// GetReport handles GET /api/v1/reportes/{id}
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid report ID")
		return
	}

	report, err := h.service.GetReport(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get report",
			slog.Int64("report_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, report)
}

// ResolveReport handles PATCH /api/v1/reportes/{id}/resolver
func (h *ReportHandler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid report ID")
		return
	}

	if err := h.service.ResolveReport(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to resolve report",
			slog.Int64("report_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":   "Report resolved successfully",
		"report_id": id,
	})
}

// DeleteReport handles DELETE /api/v1/reportes/{id}
func (h *ReportHandler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid report ID")
		return
	}

	if err := h.service.DeleteReport(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete report",
			slog.Int64("report_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":   "Report deleted successfully",
		"report_id": id,
	})
}

// TriggerSweep handles POST /api/v1/reportes/sweep
//
// The sweep normally runs on the worker's schedule. This endpoint
// forces one immediately, useful after bulk catalog changes.
func (h *ReportHandler) TriggerSweep(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.monitor.RunSweep(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "manual sweep failed",
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}
