// internal/core/domain/supplier.go
package domain

import (
	"net/mail"
	"time"
)

// Supplier represents a provider that orders are placed against.
type Supplier struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	RUT       string    `json:"rut,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate performs domain validation on the supplier
func (s *Supplier) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Detail: "name is required"}
	}
	if s.Email != "" {
		if _, err := mail.ParseAddress(s.Email); err != nil {
			return &ValidationError{Field: "email", Detail: "invalid email address"}
		}
	}
	return nil
}
