// internal/adapters/db/supplier_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/alezcf/ProyectoGestion-sub000/internal/core/domain"
	"github.com/alezcf/ProyectoGestion-sub000/internal/core/ports"
)

const foreignKeyViolationCode = "23503"

// isForeignKeyViolation reports whether err is a Postgres FK violation.
// Orders reference suppliers with ON DELETE RESTRICT, so deleting a
// supplier with order history trips this.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// supplierRepository implements ports.SupplierRepository
type supplierRepository struct {
	q      Querier
	logger *slog.Logger
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(q Querier, logger *slog.Logger) ports.SupplierRepository {
	return &supplierRepository{
		q:      q,
		logger: logger.With(slog.String("repository", "supplier")),
	}
}

// Save creates a new supplier
func (r *supplierRepository) Save(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		INSERT INTO suppliers (name, rut, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.q.QueryRow(ctx, query,
		supplier.Name, nullable(supplier.RUT), nullable(supplier.Email),
		nullable(supplier.Phone), nullable(supplier.Address),
	).Scan(&supplier.ID, &supplier.CreatedAt, &supplier.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save supplier: %w", err)
	}

	r.logger.DebugContext(ctx, "supplier saved",
		slog.Int64("supplier_id", supplier.ID),
		slog.String("name", supplier.Name))

	return nil
}

// Update updates an existing supplier
func (r *supplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, rut = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1`

	supplier.UpdatedAt = time.Now()

	tag, err := r.q.Exec(ctx, query,
		supplier.ID, supplier.Name, nullable(supplier.RUT), nullable(supplier.Email),
		nullable(supplier.Phone), nullable(supplier.Address), supplier.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update supplier: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("proveedor", supplier.ID)
	}

	return nil
}

// FindByID retrieves a supplier by id
func (r *supplierRepository) FindByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	query := `SELECT id, name, rut, email, phone, address, created_at, updated_at FROM suppliers WHERE id = $1`

	supplier := &domain.Supplier{}
	var rut, email, phone, address sql.NullString
	err := r.q.QueryRow(ctx, query, id).Scan(
		&supplier.ID, &supplier.Name, &rut, &email, &phone, &address,
		&supplier.CreatedAt, &supplier.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NewNotFoundError("proveedor", id)
		}
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}

	supplier.RUT = rut.String
	supplier.Email = email.String
	supplier.Phone = phone.String
	supplier.Address = address.String

	return supplier, nil
}

// FindAll retrieves every supplier
func (r *supplierRepository) FindAll(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT id, name, rut, email, phone, address, created_at, updated_at FROM suppliers ORDER BY name`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		var rut, email, phone, address sql.NullString
		err := rows.Scan(&s.ID, &s.Name, &rut, &email, &phone, &address, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier: %w", err)
		}
		s.RUT = rut.String
		s.Email = email.String
		s.Phone = phone.String
		s.Address = address.String
		suppliers = append(suppliers, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return suppliers, nil
}

// Delete removes a supplier
func (r *supplierRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return &domain.ConflictError{Entity: "proveedor", Detail: "has orders referencing it"}
		}
		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("proveedor", id)
	}

	r.logger.InfoContext(ctx, "supplier deleted", slog.Int64("supplier_id", id))
	return nil
}

// Exists checks if a supplier exists
func (r *supplierRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM suppliers WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return exists, nil
}

// nullable maps an empty string to SQL NULL
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
