package db

import (
	"context"
	"database/sql"
)

// DBTX is the query execution surface shared by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// New returns a query layer over the given connection or transaction.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries executes the product queries against a DBTX.
type Queries struct {
	db DBTX
}

const listProducts = `
SELECT id, name, description, price FROM products ORDER BY id
`

// ListProducts returns all products ordered by identifier.
func (q *Queries) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := q.db.QueryContext(ctx, listProducts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getProduct = `
SELECT id, name, description, price FROM products WHERE id = ?
`

// GetProduct returns the product with the given id, or [sql.ErrNoRows].
func (q *Queries) GetProduct(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRowContext(ctx, getProduct, id)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	return p, err
}

const insertProduct = `
INSERT INTO products (name, description, price)
VALUES (?, ?, ?)
RETURNING id, name, description, price
`

// InsertProductParams are the columns of a store-assigned-id insert.
type InsertProductParams struct {
	Name        string
	Description string
	Price       float64
}

// InsertProduct inserts a new product and returns the stored row including
// its assigned id.
func (q *Queries) InsertProduct(ctx context.Context, arg InsertProductParams) (Product, error) {
	row := q.db.QueryRowContext(ctx, insertProduct, arg.Name, arg.Description, arg.Price)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	return p, err
}

const upsertProduct = `
INSERT INTO products (id, name, description, price)
VALUES (?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    description = excluded.description,
    price = excluded.price
RETURNING id, name, description, price
`

// UpsertProductParams are the columns of an explicit-id upsert.
type UpsertProductParams struct {
	ID          int64
	Name        string
	Description string
	Price       float64
}

// UpsertProduct writes the full row at the given id, replacing all mutable
// columns if it already exists, and returns the stored row.
func (q *Queries) UpsertProduct(ctx context.Context, arg UpsertProductParams) (Product, error) {
	row := q.db.QueryRowContext(ctx, upsertProduct, arg.ID, arg.Name, arg.Description, arg.Price)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price)
	return p, err
}
