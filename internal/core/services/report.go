// internal/core/services/report.go
package services

import (
	"context"
	"log/slog"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// ReportService exposes read and resolution operations over the
// monitor's reports.
type ReportService struct {
	repos  ports.UnitOfWork
	logger *slog.Logger
}

var _ ports.ReportService = (*ReportService)(nil)

// NewReportService creates a new report service
func NewReportService(repos ports.UnitOfWork, logger *slog.Logger) *ReportService {
	return &ReportService{
		repos:  repos,
		logger: logger.With(slog.String("service", "report")),
	}
}

// GetReport retrieves a report by id
func (s *ReportService) GetReport(ctx context.Context, id int64) (*domain.Report, error) {
	return s.repos.Reports().FindByID(ctx, id)
}

// ListReports lists reports, optionally filtered by status
func (s *ReportService) ListReports(ctx context.Context, status domain.ReportStatus) ([]domain.Report, error) {
	if status != "" && status != domain.ReportStatusPending && status != domain.ReportStatusResolved {
		return nil, &domain.ValidationError{Field: "status", Detail: "invalid report status"}
	}
	return s.repos.Reports().FindAll(ctx, status)
}

// ResolveReport marks a report as handled. Resolved reports survive
// the monitor's pending wipe; a later sweep may still refresh their
// description if the breach persists.
func (s *ReportService) ResolveReport(ctx context.Context, id int64) error {
	if err := s.repos.Reports().UpdateStatus(ctx, id, domain.ReportStatusResolved); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "report resolved", slog.Int64("report_id", id))
	return nil
}

// DeleteReport removes a report outright. A deleted pending report
// comes back on the next sweep if the breach persists, so resolving
// is usually the better call.
func (s *ReportService) DeleteReport(ctx context.Context, id int64) error {
	if err := s.repos.Reports().Delete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "report deleted", slog.Int64("report_id", id))
	return nil
}
