// internal/handlers/dashboard_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
	"github.com/alezcf/ProyectoGestion-sub000/internal/handlers"
	"github.com/alezcf/ProyectoGestion-sub000/test/helpers"
	"github.com/alezcf/ProyectoGestion-sub000/test/mocks"
)

func TestDashboardHandler_StockSummary(t *testing.T) {
	t.Run("returns_aggregated_stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockDashboardService(ctrl)
		handler := handlers.NewDashboardHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			StockSummary(gomock.Any()).
			Return(&ports.StockSummary{
				Inventories: []domain.InventoryStock{
					{InventoryID: 1, Name: "Bodega Central", CurrentStock: 42, MaxStock: 300},
				},
				Products: []domain.ProductStock{
					{ProductID: 3, Name: "Detergente Liquido 1L", GlobalStock: 42},
				},
			}, nil)

		req := httptest.NewRequest("GET", "/api/v1/dashboard/stock", nil)
		w := httptest.NewRecorder()

		handler.StockSummary(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response ports.StockSummary
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Inventories, 1)
		assert.Equal(t, 42, response.Inventories[0].CurrentStock)
		assert.Equal(t, 300, response.Inventories[0].MaxStock)
		require.Len(t, response.Products, 1)
		assert.Equal(t, 42, response.Products[0].GlobalStock)
	})

	t.Run("service_error_is_opaque_500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockDashboardService(ctrl)
		handler := handlers.NewDashboardHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().
			StockSummary(gomock.Any()).
			Return(nil, errors.New("redis: connection pool exhausted"))

		req := httptest.NewRequest("GET", "/api/v1/dashboard/stock", nil)
		w := httptest.NewRecorder()

		handler.StockSummary(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "internal server error", response["error"])
	})
}
