// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
)

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondServiceError maps the domain error taxonomy onto HTTP codes.
// Unknown errors become an opaque 500 so internals never leak.
func respondServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(w, logger, http.StatusBadRequest, err.Error())
	case domain.IsNotFound(err):
		respondError(w, logger, http.StatusNotFound, err.Error())
	case domain.IsConflict(err):
		respondError(w, logger, http.StatusConflict, err.Error())
	default:
		respondError(w, logger, http.StatusInternalServerError, "internal server error")
	}
}

// parseID reads the {id} path value as a positive int64
func parseID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
