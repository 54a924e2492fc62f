// internal/handlers/associations.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// AssociationHandler handles product-inventory and product-supplier
// association HTTP requests
type AssociationHandler struct {
	service ports.AssociationService
	logger  *slog.Logger
}

// NewAssociationHandler creates a new association handler
func NewAssociationHandler(service ports.AssociationService, logger *slog.Logger) *AssociationHandler {
	return &AssociationHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "association")),
	}
}

// CreateAssociations handles POST /api/v1/producto-inventario
func (h *AssociationHandler) CreateAssociations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AssociationBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.CreateAssociations(ctx, req.ProductID, req.Inventories)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create associations",
			slog.Int64("product_id", req.ProductID),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, created)
}

// UpdateAssociations handles PUT /api/v1/producto-inventario
func (h *AssociationHandler) UpdateAssociations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AssociationBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpdateAssociations(ctx, req.ProductID, req.Inventories)
	if err != nil {
		// Existing pairs come back as a conflict alongside the pairs
		// that were created. The caller gets both lists either way.
		if domain.IsConflict(err) && result != nil {
			respondJSON(w, h.logger, http.StatusConflict, result)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update associations",
			slog.Int64("product_id", req.ProductID),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// GetAssociation handles GET /api/v1/producto-inventario/{id}
func (h *AssociationHandler) GetAssociation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid association ID")
		return
	}

	assoc, err := h.service.GetAssociation(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get association",
			slog.Int64("association_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, assoc)
}

// ListAssociations handles GET /api/v1/producto-inventario filtered by
// product_id or inventory_id
func (h *AssociationHandler) ListAssociations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if productID := r.URL.Query().Get("product_id"); productID != "" {
		id, err := strconv.ParseInt(productID, 10, 64)
		if err != nil || id <= 0 {
			respondError(w, h.logger, http.StatusBadRequest, "Invalid product_id")
			return
		}
		assocs, err := h.service.ListByProduct(ctx, id)
		if err != nil {
			respondServiceError(w, h.logger, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, assocs)
		return
	}

	if inventoryID := r.URL.Query().Get("inventory_id"); inventoryID != "" {
		id, err := strconv.ParseInt(inventoryID, 10, 64)
		if err != nil || id <= 0 {
			respondError(w, h.logger, http.StatusBadRequest, "Invalid inventory_id")
			return
		}
		assocs, err := h.service.ListByInventory(ctx, id)
		if err != nil {
			respondServiceError(w, h.logger, err)
			return
		}
		respondJSON(w, h.logger, http.StatusOK, assocs)
		return
	}

	respondError(w, h.logger, http.StatusBadRequest, "Either product_id or inventory_id is required")
}

// UpdateQuantity handles PATCH /api/v1/producto-inventario/{id}/cantidad
func (h *AssociationHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid association ID")
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	assoc, err := h.service.UpdateQuantity(ctx, id, req.Quantity)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update association quantity",
			slog.Int64("association_id", id),
			slog.Int("quantity", req.Quantity),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, assoc)
}

// DeleteAssociation handles DELETE /api/v1/producto-inventario/{id}
func (h *AssociationHandler) DeleteAssociation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid association ID")
		return
	}

	if err := h.service.DeleteAssociation(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete association",
			slog.Int64("association_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":        "Association deleted successfully",
		"association_id": id,
	})
}

// LinkSupplier handles POST /api/v1/producto-proveedor
func (h *AssociationHandler) LinkSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LinkSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	link, err := h.service.LinkSupplier(ctx, req.ProductID, req.SupplierID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to link supplier",
			slog.Int64("product_id", req.ProductID),
			slog.Int64("supplier_id", req.SupplierID),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, link)
}

// ListSuppliersByProduct handles GET /api/v1/producto-proveedor?product_id=
func (h *AssociationHandler) ListSuppliersByProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := strconv.ParseInt(r.URL.Query().Get("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid product_id")
		return
	}

	links, err := h.service.ListSuppliersByProduct(ctx, productID)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, links)
}

// UnlinkSupplier handles DELETE /api/v1/producto-proveedor/{id}
func (h *AssociationHandler) UnlinkSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid link ID")
		return
	}

	if err := h.service.UnlinkSupplier(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to unlink supplier",
			slog.Int64("link_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message": "Supplier unlinked successfully",
		"link_id": id,
	})
}

// Request DTOs

// AssociationBatchRequest links a product to several inventories in
// one request
type AssociationBatchRequest struct {
	ProductID   int64                    `json:"product_id"`
	Inventories []ports.AssociationInput `json:"inventories"`
}

// UpdateQuantityRequest carries an absolute replacement quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// LinkSupplierRequest pairs a product with a supplier
type LinkSupplierRequest struct {
	ProductID  int64 `json:"product_id"`
	SupplierID int64 `json:"supplier_id"`
}
