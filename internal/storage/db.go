package storage

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/HenningWaack/ccAcmePairing/internal/storage/db"
)

// DB is a [Store] backed by a SQLite database.
type DB struct {
	db      *sql.DB
	queries *db.Queries
}

// NewDB opens (creating and migrating if necessary) the SQLite database at
// dbPath and returns a store over it.
func NewDB(ctx context.Context, dbPath string, logger *slog.Logger) (*DB, error) {
	handle, err := db.Open(ctx, logger, dbPath)
	if err != nil {
		return nil, err
	}
	return &DB{
		db:      handle,
		queries: db.New(handle),
	}, nil
}

// Close satisfies the [Store] interface.
func (d *DB) Close() error {
	return d.db.Close()
}

// ListProducts satisfies the [Products] interface.
func (d *DB) ListProducts(ctx context.Context) ([]db.Product, error) {
	return d.queries.ListProducts(ctx)
}

// GetProduct satisfies the [Products] interface.
func (d *DB) GetProduct(ctx context.Context, id int64) (db.Product, error) {
	product, err := d.queries.GetProduct(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return product, ErrNotFound
	}
	return product, err
}

// SaveProduct satisfies the [Products] interface.
func (d *DB) SaveProduct(ctx context.Context, product db.Product) (db.Product, error) {
	if product.ID == 0 {
		return d.queries.InsertProduct(ctx, db.InsertProductParams{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
		})
	}
	return d.queries.UpsertProduct(ctx, db.UpsertProductParams(product))
}

var _ Store = (*DB)(nil)
