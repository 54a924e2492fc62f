// internal/core/domain/report.go
package domain

import (
	"encoding/json"
	"time"
)

// ReportType distinguishes what kind of entity a report is about.
// The monitor emits the two types below; callers may define others.
type ReportType string

const (
	ReportTypeInventory ReportType = "inventario"
	ReportTypeProduct   ReportType = "producto"
)

// ReportStatus is the handling state of a report.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "Pendiente"
	ReportStatusResolved ReportStatus = "Resuelto"
)

// Report is a persisted alert produced by the threshold monitor.
// Reports are unique per (title, type); a sweep that regenerates an
// existing report refreshes its description and payload in place so a
// manually resolved report keeps its status.
type Report struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Type        ReportType      `json:"type"`
	Status      ReportStatus    `json:"status"`
	Description string          `json:"description"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the report
func (r *Report) Validate() error {
	if r.Title == "" {
		return &ValidationError{Field: "title", Detail: "title is required"}
	}
	if r.Type == "" {
		return &ValidationError{Field: "type", Detail: "type is required"}
	}
	if r.Status == "" {
		r.Status = ReportStatusPending
	}
	if r.Status != ReportStatusPending && r.Status != ReportStatusResolved {
		return &ValidationError{Field: "status", Detail: "invalid report status"}
	}
	return nil
}
