package catalog

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HenningWaack/ccAcmePairing/internal/storage"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.NewDB(t.Context(), filepath.Join(t.TempDir(), "db.sqlite"), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewService(store)
}

func ptr(f float64) *float64 { return &f }

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("valid draft", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(t)

		created, err := svc.Create(t.Context(), Draft{
			Name:        "New Product",
			Description: "A new product",
			Price:       ptr(10.0),
		})
		require.NoError(t, err)
		assert.Positive(t, created.ID)
		assert.Equal(t, "New Product", created.Name)

		actual, err := svc.Get(t.Context(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, actual)
	})

	t.Run("invalid drafts never touch the store", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(t)

		tests := []struct {
			name  string
			draft Draft
			want  ValidationError
		}{
			{name: "empty name", draft: Draft{Name: "", Price: ptr(1)}, want: ErrNameRequired},
			{name: "missing price", draft: Draft{Name: "x"}, want: ErrPriceRequired},
			{name: "negative price", draft: Draft{Name: "x", Price: ptr(-0.01)}, want: ErrNegativePrice},
		}
		for _, test := range tests {
			_, err := svc.Create(t.Context(), test.draft)
			require.ErrorIs(t, err, test.want, test.name)
		}

		products, err := svc.List(t.Context())
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(t)

		created, err := svc.Create(t.Context(), Draft{Name: "Freebie", Price: ptr(0)})
		require.NoError(t, err)
		assert.Zero(t, created.Price)
	})
}

func TestServiceGet(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	_, err := svc.Get(t.Context(), 999)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("replaces all mutable fields", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(t)

		created, err := svc.Create(t.Context(), Draft{Name: "Before", Description: "old", Price: ptr(1)})
		require.NoError(t, err)

		updated, err := svc.Update(t.Context(), created.ID, Draft{
			Name:        "Updated Product",
			Description: "An updated product",
			Price:       ptr(10.0),
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Updated Product", updated.Name)
		assert.Equal(t, "An updated product", updated.Description)
		assert.InEpsilon(t, 10.0, updated.Price, 1e-9)

		actual, err := svc.Get(t.Context(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated, actual)
	})

	t.Run("unknown id never creates a product", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(t)

		_, err := svc.Update(t.Context(), 999, Draft{Name: "x", Price: ptr(1)})
		require.ErrorIs(t, err, storage.ErrNotFound)

		products, err := svc.List(t.Context())
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("existence is checked before validation", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(t)

		_, err := svc.Update(t.Context(), 999, Draft{})
		require.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("invalid draft leaves the product untouched", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(t)

		created, err := svc.Create(t.Context(), Draft{Name: "Keep", Price: ptr(5)})
		require.NoError(t, err)

		_, err = svc.Update(t.Context(), created.ID, Draft{Name: "", Price: ptr(1)})
		require.ErrorIs(t, err, ErrNameRequired)

		actual, err := svc.Get(t.Context(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, actual)
	})
}

func TestServiceList(t *testing.T) {
	t.Parallel()
	svc := newTestService(t)

	products, err := svc.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, products)

	first, err := svc.Create(t.Context(), Draft{Name: "a", Price: ptr(1)})
	require.NoError(t, err)
	second, err := svc.Create(t.Context(), Draft{Name: "b", Price: ptr(2)})
	require.NoError(t, err)

	products, err = svc.List(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []Product{first, second}, products)
}
