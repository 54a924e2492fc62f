// internal/core/domain/product.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory represents product categories
type ProductCategory string

// Category constants
const (
	CategoryBeverages ProductCategory = "bebidas"
	CategoryFood      ProductCategory = "alimentos"
	CategoryCleaning  ProductCategory = "limpieza"
	CategoryPersonal  ProductCategory = "cuidado_personal"
	CategoryHousehold ProductCategory = "hogar"
	CategoryOther     ProductCategory = "otros"
)

// ProductType distinguishes how the product is handled in stock
type ProductType string

const (
	TypeUnit       ProductType = "unitario"
	TypeBulk       ProductType = "granel"
	TypePackaged   ProductType = "envasado"
	TypePerishable ProductType = "perecible"
)

// Product represents a catalog product tracked across inventories
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	Content     decimal.Decimal `json:"content"`
	Unit        string          `json:"unit,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    ProductCategory `json:"category"`
	Type        ProductType     `json:"type"`
	ImageURL    string          `json:"image_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate performs domain validation on the product
func (p *Product) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Detail: "name is required"}
	}
	if p.Price.IsNegative() {
		return &ValidationError{Field: "price", Detail: "price cannot be negative"}
	}
	if p.Content.IsNegative() {
		return &ValidationError{Field: "content", Detail: "content cannot be negative"}
	}
	if p.Category == "" {
		p.Category = CategoryOther
	}
	if p.Type == "" {
		p.Type = TypeUnit
	}
	return nil
}
