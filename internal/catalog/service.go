package catalog

import (
	"context"

	"github.com/HenningWaack/ccAcmePairing/internal/storage"
	"github.com/HenningWaack/ccAcmePairing/internal/storage/db"
)

// Service exposes the product operations over a [storage.Products] store.
// Validation and existence checks run before any mutating store call, so a
// failed request never leaves partial state.
type Service struct {
	store storage.Products
}

// NewService returns a product service over the given store.
func NewService(store storage.Products) *Service {
	return &Service{store: store}
}

// List returns all products in the store.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	rows, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, fromRow(row))
	}
	return products, nil
}

// Get returns the product with the given id. Absence is a modeled outcome
// reported as [storage.ErrNotFound].
func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	row, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return Product{}, err
	}
	return fromRow(row), nil
}

// Create validates the draft and persists it, returning the product with its
// store-assigned identifier.
func (s *Service) Create(ctx context.Context, draft Draft) (Product, error) {
	if err := draft.validate(); err != nil {
		return Product{}, err
	}
	row, err := s.store.SaveProduct(ctx, db.Product{
		Name:        draft.Name,
		Description: draft.Description,
		Price:       *draft.Price,
	})
	if err != nil {
		return Product{}, err
	}
	return fromRow(row), nil
}

// Update replaces all mutable fields of the product with the given id. It
// returns [storage.ErrNotFound] without side effect if the id does not exist,
// and a [ValidationError] if the draft is invalid.
func (s *Service) Update(ctx context.Context, id int64, draft Draft) (Product, error) {
	if _, err := s.store.GetProduct(ctx, id); err != nil {
		return Product{}, err
	}
	if err := draft.validate(); err != nil {
		return Product{}, err
	}
	row, err := s.store.SaveProduct(ctx, db.Product{
		ID:          id,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       *draft.Price,
	})
	if err != nil {
		return Product{}, err
	}
	return fromRow(row), nil
}
