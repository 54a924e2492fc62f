package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
)

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name      string
		product   *domain.Product
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid_product",
			product: &domain.Product{
				Name:     "Detergente 1L",
				Price:    decimal.NewFromInt(2500),
				Category: domain.CategoryCleaning,
				Type:     domain.TypePackaged,
			},
			wantError: false,
		},
		{
			name: "missing_name",
			product: &domain.Product{
				Price: decimal.NewFromInt(1000),
			},
			wantError: true,
			errorMsg:  "name is required",
		},
		{
			name: "negative_price",
			product: &domain.Product{
				Name:  "Arroz",
				Price: decimal.NewFromInt(-10),
			},
			wantError: true,
			errorMsg:  "price cannot be negative",
		},
		{
			name: "unknown_category",
			product: &domain.Product{
				Name:     "Arroz",
				Price:    decimal.NewFromInt(100),
				Category: "juguetes",
			},
			wantError: true,
			errorMsg:  "invalid product category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProduct_Validate_DefaultsCategoryAndType(t *testing.T) {
	p := &domain.Product{
		Name:  "Sin clasificar",
		Price: decimal.NewFromInt(100),
	}
	require.NoError(t, p.Validate())
	assert.Equal(t, domain.CategoryOther, p.Category)
	assert.Equal(t, domain.TypeUnit, p.Type)
}

func TestInventory_Validate(t *testing.T) {
	tests := []struct {
		name      string
		inv       *domain.Inventory
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid",
			inv:       &domain.Inventory{Name: "Bodega Central", MaxStock: 300},
			wantError: false,
		},
		{
			name:      "missing_name",
			inv:       &domain.Inventory{MaxStock: 300},
			wantError: true,
			errorMsg:  "name is required",
		},
		{
			name:      "zero_max_stock",
			inv:       &domain.Inventory{Name: "Bodega"},
			wantError: true,
			errorMsg:  "max_stock must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inv.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductInventory_Validate(t *testing.T) {
	valid := &domain.ProductInventory{ProductID: 1, InventoryID: 2, Quantity: 0}
	assert.NoError(t, valid.Validate())

	negative := &domain.ProductInventory{ProductID: 1, InventoryID: 2, Quantity: -1}
	err := negative.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity cannot be negative")

	missing := &domain.ProductInventory{InventoryID: 2}
	err = missing.Validate()
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestSupplier_Validate(t *testing.T) {
	valid := &domain.Supplier{Name: "Distribuidora Sur", Email: "ventas@sur.cl"}
	assert.NoError(t, valid.Validate())

	badEmail := &domain.Supplier{Name: "Distribuidora Sur", Email: "not-an-email"}
	err := badEmail.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email address")
}

func TestOrder_Validate(t *testing.T) {
	line := domain.OrderProduct{ProductID: 1, Quantity: 5, UnitPrice: decimal.NewFromInt(100)}

	tests := []struct {
		name      string
		order     *domain.Order
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid_order",
			order: &domain.Order{
				SupplierID:  1,
				InventoryID: 2,
				Status:      domain.OrderStatusComplete,
				Products:    []domain.OrderProduct{line},
			},
			wantError: false,
		},
		{
			name: "missing_supplier",
			order: &domain.Order{
				InventoryID: 2,
				Products:    []domain.OrderProduct{line},
			},
			wantError: true,
			errorMsg:  "supplier_id is required",
		},
		{
			name: "no_lines",
			order: &domain.Order{
				SupplierID:  1,
				InventoryID: 2,
			},
			wantError: true,
			errorMsg:  "at least one product line",
		},
		{
			name: "duplicate_product_line",
			order: &domain.Order{
				SupplierID:  1,
				InventoryID: 2,
				Products:    []domain.OrderProduct{line, line},
			},
			wantError: true,
			errorMsg:  "duplicate product line",
		},
		{
			name: "zero_quantity_line",
			order: &domain.Order{
				SupplierID:  1,
				InventoryID: 2,
				Products: []domain.OrderProduct{
					{ProductID: 1, Quantity: 0, UnitPrice: decimal.NewFromInt(100)},
				},
			},
			wantError: true,
			errorMsg:  "quantity must be positive",
		},
		{
			name: "invalid_status",
			order: &domain.Order{
				SupplierID:  1,
				InventoryID: 2,
				Status:      "Shipped",
				Products:    []domain.OrderProduct{line},
			},
			wantError: true,
			errorMsg:  "invalid order status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOrder_Validate_DefaultsStatus(t *testing.T) {
	o := &domain.Order{
		SupplierID:  1,
		InventoryID: 2,
		Products: []domain.OrderProduct{
			{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
		},
	}
	require.NoError(t, o.Validate())
	assert.Equal(t, domain.OrderStatusPending, o.Status)
}

func TestOrder_Validate_OrderDate(t *testing.T) {
	line := domain.OrderProduct{ProductID: 1, Quantity: 1, UnitPrice: decimal.NewFromInt(50)}

	// A caller-supplied date is kept as given, even in the past.
	placed := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	o := &domain.Order{
		SupplierID:  1,
		InventoryID: 2,
		OrderDate:   placed,
		Products:    []domain.OrderProduct{line},
	}
	require.NoError(t, o.Validate())
	assert.True(t, o.OrderDate.Equal(placed))

	// Without a date the order is dated at registration time.
	o = &domain.Order{
		SupplierID:  1,
		InventoryID: 2,
		Products:    []domain.OrderProduct{line},
	}
	require.NoError(t, o.Validate())
	assert.WithinDuration(t, time.Now(), o.OrderDate, time.Minute)
}

func TestOrder_ComputeTotal(t *testing.T) {
	o := &domain.Order{
		Products: []domain.OrderProduct{
			{ProductID: 1, Quantity: 3, UnitPrice: decimal.NewFromFloat(10.5)},
			{ProductID: 2, Quantity: 2, UnitPrice: decimal.NewFromInt(200)},
		},
	}
	assert.True(t, decimal.NewFromFloat(431.5).Equal(o.ComputeTotal()))
}

func TestReport_Validate(t *testing.T) {
	r := &domain.Report{
		Title: "Inventario bajo: Bodega Central",
		Type:  domain.ReportTypeInventory,
	}
	require.NoError(t, r.Validate())
	assert.Equal(t, domain.ReportStatusPending, r.Status)

	// Types beyond the two the monitor emits are caller-defined.
	custom := &domain.Report{Title: "Cierre mensual", Type: "operaciones"}
	assert.NoError(t, custom.Validate())

	bad := &domain.Report{Title: "x"}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type is required")
}

func TestErrorHelpers(t *testing.T) {
	nf := domain.NewNotFoundError("producto", 3, 9)
	assert.Equal(t, "producto not found: 3, 9", nf.Error())
	assert.True(t, domain.IsNotFound(fmt.Errorf("lookup: %w", nf)))
	assert.False(t, domain.IsConflict(nf))

	conflict := &domain.ConflictError{Entity: "producto-inventario", Detail: "pair (1, 2) already exists"}
	assert.True(t, domain.IsConflict(fmt.Errorf("create: %w", conflict)))
	assert.Contains(t, conflict.Error(), "pair (1, 2)")

	v := &domain.ValidationError{Field: "name", Detail: "name is required"}
	assert.True(t, domain.IsValidation(v))
	assert.False(t, domain.IsNotFound(v))
}
