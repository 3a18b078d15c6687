// Package catalog implements the product service: input validation,
// existence checks, and translation of store rows into API representations.
package catalog

import (
	"github.com/HenningWaack/ccAcmePairing/internal/storage/db"
)

// Product is the API representation of a product.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Draft is the caller-supplied portion of a product on create and update.
// Price is a pointer so a missing field can be told apart from zero.
type Draft struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
}

// ValidationError reports a draft constraint violation. The message names the
// failed constraint and nothing else.
type ValidationError string

// Error satisfies [error].
func (e ValidationError) Error() string { return string(e) }

// The draft constraints.
const (
	ErrNameRequired  ValidationError = "name must not be empty"
	ErrPriceRequired ValidationError = "price is required"
	ErrNegativePrice ValidationError = "price must not be negative"
)

func (d Draft) validate() error {
	if d.Name == "" {
		return ErrNameRequired
	}
	if d.Price == nil {
		return ErrPriceRequired
	}
	if *d.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func fromRow(row db.Product) Product {
	return Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       row.Price,
	}
}
