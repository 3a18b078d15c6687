// Package storage provides the state management for products.
package storage

import (
	"context"

	"github.com/HenningWaack/ccAcmePairing/internal/storage/db"
)

const (
	// ErrNotFound is returned when a product cannot be found.
	ErrNotFound Error = "not found"
	// ErrInternal is returned for any other type of error.
	ErrInternal Error = "internal error"
)

// Error is an error type returned by the storage implementation.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// Products are the methods on a storage implementation that are responsible
// for accessing and modifying products.
type Products interface {
	// ListProducts returns every product in the store. The ordering is an
	// implementation detail.
	ListProducts(ctx context.Context) ([]db.Product, error)
	// GetProduct returns the product with the given identifier. An
	// [ErrNotFound] is returned if the identifier does not exist.
	GetProduct(ctx context.Context, id int64) (db.Product, error)
	// SaveProduct persists the product and returns the stored row. A zero ID
	// requests a store-assigned identifier; identifiers are never reused once
	// assigned. A non-zero ID is a full PUT-style upsert of that row.
	SaveProduct(ctx context.Context, product db.Product) (db.Product, error)
}

// Store is the [Products] interface plus lifecycle management.
type Store interface {
	Products
	// Close releases any resources held by the store. An error is returned if
	// the store cannot be cleanly closed.
	Close() error
}
