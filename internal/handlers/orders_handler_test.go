// internal/handlers/orders_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
	"github.com/alezcf/ProyectoGestion-sub000/internal/handlers"
	"github.com/alezcf/ProyectoGestion-sub000/test/helpers"
	"github.com/alezcf/ProyectoGestion-sub000/test/mocks"
)

func TestOrderHandler_CreateOrder(t *testing.T) {
	placedAt := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	validBody := handlers.CreateOrderRequest{
		SupplierID:  1,
		InventoryID: 2,
		OrderDate:   placedAt,
		Products: []handlers.OrderLineRequest{
			{ProductID: 3, Quantity: 10, UnitPrice: decimal.NewFromInt(2990)},
		},
	}

	tests := []struct {
		name           string
		body           interface{}
		rawBody        string
		setupMocks     func(*mocks.MockOrderService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "successfully_creates_order",
			body: validBody,
			setupMocks: func(m *mocks.MockOrderService) {
				m.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
						assert.True(t, order.OrderDate.Equal(placedAt))
						order.ID = 42
						order.Status = domain.OrderStatusPending
						order.Total = decimal.NewFromInt(29900)
						return order, nil
					})
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.Order
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, int64(42), response.ID)
				assert.Equal(t, domain.OrderStatusPending, response.Status)
				assert.True(t, response.Total.Equal(decimal.NewFromInt(29900)))
				assert.True(t, response.OrderDate.Equal(placedAt))
				require.Len(t, response.Products, 1)
				assert.Equal(t, int64(3), response.Products[0].ProductID)
			},
		},
		{
			name:           "malformed_json_body",
			rawBody:        `{"supplier_id": `,
			setupMocks:     func(m *mocks.MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "Invalid request body", response["error"])
			},
		},
		{
			name: "validation_error_becomes_400",
			body: handlers.CreateOrderRequest{SupplierID: 1, InventoryID: 2},
			setupMocks: func(m *mocks.MockOrderService) {
				m.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, &domain.ValidationError{Field: "products", Detail: "at least one product is required"})
			},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Contains(t, response["error"], "products")
			},
		},
		{
			name: "unknown_product_becomes_404",
			body: validBody,
			setupMocks: func(m *mocks.MockOrderService) {
				m.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewNotFoundError("producto", 3))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "producto not found: 3", response["error"])
			},
		},
		{
			name: "service_error_is_opaque_500",
			body: validBody,
			setupMocks: func(m *mocks.MockOrderService) {
				m.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("pq: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "internal server error", response["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockOrderService(ctrl)
			handler := handlers.NewOrderHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			var buf bytes.Buffer
			if tt.rawBody != "" {
				buf.WriteString(tt.rawBody)
			} else {
				require.NoError(t, json.NewEncoder(&buf).Encode(tt.body))
			}

			req := httptest.NewRequest("POST", "/api/v1/pedidos", &buf)
			w := httptest.NewRecorder()

			handler.CreateOrder(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateBody(t, w.Body.Bytes())
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	tests := []struct {
		name           string
		orderID        string
		setupMocks     func(*mocks.MockOrderService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:    "successfully_retrieves_order",
			orderID: "7",
			setupMocks: func(m *mocks.MockOrderService) {
				m.EXPECT().
					GetOrder(gomock.Any(), int64(7)).
					Return(&domain.Order{ID: 7, SupplierID: 1, InventoryID: 2, Status: domain.OrderStatusComplete}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var response domain.Order
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, int64(7), response.ID)
				assert.Equal(t, domain.OrderStatusComplete, response.Status)
			},
		},
		{
			name:           "non_numeric_id",
			orderID:        "abc",
			setupMocks:     func(m *mocks.MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Equal(t, "Invalid order ID", response["error"])
			},
		},
		{
			name:    "order_not_found",
			orderID: "99",
			setupMocks: func(m *mocks.MockOrderService) {
				m.EXPECT().
					GetOrder(gomock.Any(), int64(99)).
					Return(nil, domain.NewNotFoundError("pedido", 99))
			},
			expectedStatus: http.StatusNotFound,
			validateBody: func(t *testing.T, body []byte) {
				var response map[string]string
				require.NoError(t, json.Unmarshal(body, &response))
				assert.Contains(t, response["error"], "pedido")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockOrderService(ctrl)
			handler := handlers.NewOrderHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/pedidos/"+tt.orderID, nil)
			req.SetPathValue("id", tt.orderID)
			w := httptest.NewRecorder()

			handler.GetOrder(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			tt.validateBody(t, w.Body.Bytes())
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	t.Run("defaults_and_filters_reach_the_service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockOrderService(ctrl)
		handler := handlers.NewOrderHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			ListOrders(gomock.Any(), ports.OrderListParams{
				Page:       2,
				PageSize:   100,
				SupplierID: 5,
				Status:     string(domain.OrderStatusPending),
				SortBy:     "created_at",
				SortOrder:  "desc",
			}).
			Return(&ports.OrderListResult{Orders: []*domain.Order{}, Page: 2, PageSize: 100}, nil)

		// limit above the cap collapses to 100
		req := httptest.NewRequest("GET", "/api/v1/pedidos?page=2&limit=500&supplier_id=5&status=Pending", nil)
		w := httptest.NewRecorder()

		handler.ListOrders(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("service_error_is_opaque_500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockOrderService(ctrl)
		handler := handlers.NewOrderHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			ListOrders(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout"))

		req := httptest.NewRequest("GET", "/api/v1/pedidos", nil)
		w := httptest.NewRecorder()

		handler.ListOrders(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name           string
		orderID        string
		rawBody        string
		setupMocks     func(*mocks.MockOrderService)
		expectedStatus int
	}{
		{
			name:    "successfully_updates_status",
			orderID: "7",
			rawBody: `{"status":"Complete"}`,
			setupMocks: func(m *mocks.MockOrderService) {
				m.EXPECT().
					UpdateOrderStatus(gomock.Any(), int64(7), domain.OrderStatusComplete).
					Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "invalid_status_becomes_400",
			orderID: "7",
			rawBody: `{"status":"Shipped"}`,
			setupMocks: func(m *mocks.MockOrderService) {
				m.EXPECT().
					UpdateOrderStatus(gomock.Any(), int64(7), domain.OrderStatus("Shipped")).
					Return(&domain.ValidationError{Field: "status", Detail: "invalid order status"})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid_id",
			orderID:        "0",
			rawBody:        `{"status":"Complete"}`,
			setupMocks:     func(m *mocks.MockOrderService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockOrderService(ctrl)
			handler := handlers.NewOrderHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("PATCH", "/api/v1/pedidos/"+tt.orderID+"/estado", bytes.NewBufferString(tt.rawBody))
			req.SetPathValue("id", tt.orderID)
			w := httptest.NewRecorder()

			handler.UpdateOrderStatus(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	tests := []struct {
		name           string
		orderID        string
		setupMocks     func(*mocks.MockOrderService)
		expectedStatus int
	}{
		{
			name:    "successfully_deletes_order",
			orderID: "7",
			setupMocks: func(m *mocks.MockOrderService) {
				m.EXPECT().DeleteOrder(gomock.Any(), int64(7)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "order_not_found",
			orderID: "99",
			setupMocks: func(m *mocks.MockOrderService) {
				m.EXPECT().
					DeleteOrder(gomock.Any(), int64(99)).
					Return(domain.NewNotFoundError("pedido", 99))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mocks.NewMockOrderService(ctrl)
			handler := handlers.NewOrderHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("DELETE", "/api/v1/pedidos/"+tt.orderID, nil)
			req.SetPathValue("id", tt.orderID)
			w := httptest.NewRecorder()

			handler.DeleteOrder(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
