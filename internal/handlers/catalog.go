// internal/handlers/catalog.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service ports.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "product")),
	}
}

// CreateProduct handles POST /api/v1/productos
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SaveProduct(ctx, &product); err != nil {
		h.logger.ErrorContext(ctx, "failed to create product",
			slog.String("name", product.Name),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, product)
}

// GetProduct handles GET /api/v1/productos/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.service.GetProduct(ctx, id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, product)
}

// ListProducts handles GET /api/v1/productos
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.ListProducts(ctx, h.parseListParams(r))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// UpdateProduct handles PUT /api/v1/productos/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	product.ID = id

	if err := h.service.UpdateProduct(ctx, &product); err != nil {
		h.logger.ErrorContext(ctx, "failed to update product",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/productos/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.service.DeleteProduct(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete product",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":    "Product deleted successfully",
		"product_id": id,
	})
}

// parseListParams parses query parameters for listing products
func (h *ProductHandler) parseListParams(r *http.Request) ports.ProductListParams {
	params := ports.ProductListParams{
		Page:      1,
		PageSize:  20,
		SortBy:    "name",
		SortOrder: "asc",
	}

	if page := r.URL.Query().Get("page"); page != "" {
		if p, err := strconv.Atoi(page); err == nil && p > 0 {
			params.Page = p
		}
	}

	if limit := r.URL.Query().Get("limit"); limit != "" {
		if l, err := strconv.Atoi(limit); err == nil && l > 0 {
			if l > 100 {
				params.PageSize = 100
			} else {
				params.PageSize = l
			}
		}
	}

	params.Search = r.URL.Query().Get("search")
	params.Category = r.URL.Query().Get("category")
	params.Type = r.URL.Query().Get("type")

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}

	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}

// InventoryHandler handles inventory catalog HTTP requests
type InventoryHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service ports.CatalogService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "inventory")),
	}
}

// CreateInventory handles POST /api/v1/inventarios
func (h *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var inventory domain.Inventory
	if err := json.NewDecoder(r.Body).Decode(&inventory); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SaveInventory(ctx, &inventory); err != nil {
		h.logger.ErrorContext(ctx, "failed to create inventory",
			slog.String("name", inventory.Name),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, inventory)
}

// GetInventory handles GET /api/v1/inventarios/{id}
func (h *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid inventory ID")
		return
	}

	inventory, err := h.service.GetInventory(ctx, id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, inventory)
}

// ListInventories handles GET /api/v1/inventarios
func (h *InventoryHandler) ListInventories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	inventories, err := h.service.ListInventories(ctx)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, inventories)
}

// UpdateInventory handles PUT /api/v1/inventarios/{id}
func (h *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid inventory ID")
		return
	}

	var inventory domain.Inventory
	if err := json.NewDecoder(r.Body).Decode(&inventory); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	inventory.ID = id

	if err := h.service.UpdateInventory(ctx, &inventory); err != nil {
		h.logger.ErrorContext(ctx, "failed to update inventory",
			slog.Int64("inventory_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, inventory)
}

// DeleteInventory handles DELETE /api/v1/inventarios/{id}
func (h *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid inventory ID")
		return
	}

	if err := h.service.DeleteInventory(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete inventory",
			slog.Int64("inventory_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":      "Inventory deleted successfully",
		"inventory_id": id,
	})
}

// SupplierHandler handles supplier catalog HTTP requests
type SupplierHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(service ports.CatalogService, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "supplier")),
	}
}

// CreateSupplier handles POST /api/v1/proveedores
func (h *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var supplier domain.Supplier
	if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.SaveSupplier(ctx, &supplier); err != nil {
		h.logger.ErrorContext(ctx, "failed to create supplier",
			slog.String("name", supplier.Name),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, supplier)
}

// GetSupplier handles GET /api/v1/proveedores/{id}
func (h *SupplierHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	supplier, err := h.service.GetSupplier(ctx, id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, supplier)
}

// ListSuppliers handles GET /api/v1/proveedores
func (h *SupplierHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	suppliers, err := h.service.ListSuppliers(ctx)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, suppliers)
}

// UpdateSupplier handles PUT /api/v1/proveedores/{id}
func (h *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	var supplier domain.Supplier
	if err := json.NewDecoder(r.Body).Decode(&supplier); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	supplier.ID = id

	if err := h.service.UpdateSupplier(ctx, &supplier); err != nil {
		h.logger.ErrorContext(ctx, "failed to update supplier",
			slog.Int64("supplier_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, supplier)
}

// DeleteSupplier handles DELETE /api/v1/proveedores/{id}
func (h *SupplierHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid supplier ID")
		return
	}

	if err := h.service.DeleteSupplier(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete supplier",
			slog.Int64("supplier_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":     "Supplier deleted successfully",
		"supplier_id": id,
	})
}
