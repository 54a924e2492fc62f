// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NotFoundError indicates that one or more entities of a kind do not
// exist. IDs carries every missing identifier so callers can report
// all misses at once instead of failing on the first.
type NotFoundError struct {
	Entity string
	IDs    []int64
}

func (e *NotFoundError) Error() string {
	if len(e.IDs) == 0 {
		return fmt.Sprintf("%s not found", e.Entity)
	}
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, strings.Join(ids, ", "))
}

// NewNotFoundError builds a NotFoundError for a single entity
func NewNotFoundError(entity string, ids ...int64) *NotFoundError {
	return &NotFoundError{Entity: entity, IDs: ids}
}

// ConflictError indicates an operation collided with existing state,
// typically an association pair that already exists.
type ConflictError struct {
	Entity string
	Detail string
}

func (e *ConflictError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s already exists", e.Entity)
	}
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Detail)
}

// ValidationError indicates invalid input for a specific field.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Detail)
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err wraps a ConflictError
func IsConflict(err error) bool {
	var c *ConflictError
	return errors.As(err, &c)
}

// IsValidation reports whether err wraps a ValidationError
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
