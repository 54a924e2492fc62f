// internal/handlers/orders.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	service ports.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service ports.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "order")),
	}
}

// CreateOrder handles POST /api/v1/pedidos
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.service.CreateOrder(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order",
			slog.Int64("supplier_id", req.SupplierID),
			slog.Int64("inventory_id", req.InventoryID),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, order)
}

// GetOrder handles GET /api/v1/pedidos/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := h.service.GetOrder(ctx, id)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.Int64("order_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, order)
}

// ListOrders handles GET /api/v1/pedidos
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.ListOrders(ctx, h.parseListParams(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders",
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// UpdateOrderStatus handles PATCH /api/v1/pedidos/{id}/estado
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid order ID")
		return
	}

	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.UpdateOrderStatus(ctx, id, domain.OrderStatus(req.Status)); err != nil {
		h.logger.ErrorContext(ctx, "failed to update order status",
			slog.Int64("order_id", id),
			slog.String("status", req.Status),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":  "Order status updated successfully",
		"order_id": id,
		"status":   req.Status,
	})
}

// DeleteOrder handles DELETE /api/v1/pedidos/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(r)
	if !ok {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := h.service.DeleteOrder(ctx, id); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order",
			slog.Int64("order_id", id),
			slog.String("error", err.Error()))
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"message":  "Order deleted successfully",
		"order_id": id,
	})
}

// parseListParams parses query parameters for listing orders
func (h *OrderHandler) parseListParams(r *http.Request) ports.OrderListParams {
	params := ports.OrderListParams{
		Page:      1,
		PageSize:  20,
		SortBy:    "created_at",
		SortOrder: "desc",
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

	if supplierID := r.URL.Query().Get("supplier_id"); supplierID != "" {
		if id, err := strconv.ParseInt(supplierID, 10, 64); err == nil && id > 0 {
			params.SupplierID = id
		}
	}

	if inventoryID := r.URL.Query().Get("inventory_id"); inventoryID != "" {
		if id, err := strconv.ParseInt(inventoryID, 10, 64); err == nil && id > 0 {
			params.InventoryID = id
		}
	}

	params.Status = r.URL.Query().Get("status")

	if sortBy := r.URL.Query().Get("sort"); sortBy != "" {
		params.SortBy = sortBy
	}

	if order := r.URL.Query().Get("order"); order == "asc" || order == "desc" {
		params.SortOrder = order
	}

	return params
}

// Request/Response DTOs

// OrderLineRequest is one product line in an order request
type OrderLineRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	SupplierID  int64              `json:"supplier_id"`
	InventoryID int64              `json:"inventory_id"`
	OrderDate   time.Time          `json:"order_date,omitempty"`
	Status      string             `json:"status,omitempty"`
	Notes       string             `json:"notes,omitempty"`
	Products    []OrderLineRequest `json:"products"`
}

// ToDomain converts the request to a domain order
func (r *CreateOrderRequest) ToDomain() *domain.Order {
	order := &domain.Order{
		SupplierID:  r.SupplierID,
		InventoryID: r.InventoryID,
		OrderDate:   r.OrderDate,
		Status:      domain.OrderStatus(r.Status),
		Notes:       r.Notes,
		Products:    make([]domain.OrderProduct, 0, len(r.Products)),
	}

	for _, line := range r.Products {
		order.Products = append(order.Products, domain.OrderProduct{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}

	return order
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
