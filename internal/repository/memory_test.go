package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fashion-catalog/internal/models"
)

var base = time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

func batch(brand string, at time.Time, ids ...string) models.ImportBatch {
	products := make([]models.Product, len(ids))
	for i, id := range ids {
		products[i] = models.Product{ID: id, Brand: brand}
	}
	return models.ImportBatch{ID: brand + "-batch", Brand: brand, Products: products, ImportedAt: at}
}

func TestMemoryImportStore_SaveReplacesBrand(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryImportStore()

	require.NoError(t, s.SaveBatch(ctx, batch("GUCCI", base, "g1", "g2")))
	require.NoError(t, s.SaveBatch(ctx, batch("PRADA", base.Add(time.Minute), "p1")))
	require.NoError(t, s.SaveBatch(ctx, batch("GUCCI", base.Add(2*time.Minute), "g3")))

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)

	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	assert.Equal(t, []string{"p1", "g3"}, ids)
}

func TestMemoryImportStore_DeleteBrand(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryImportStore()
	require.NoError(t, s.SaveBatch(ctx, batch("GUCCI", base, "g1")))

	require.NoError(t, s.DeleteBrand(ctx, "GUCCI"))
	assert.ErrorIs(t, s.DeleteBrand(ctx, "GUCCI"), ErrNotFound)

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestMemoryImportStore_History(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryImportStore()

	for i, brand := range []string{"A", "B", "C"} {
		require.NoError(t, s.AppendHistory(ctx, models.ImportEntry{
			ID: brand, Brand: brand, ImportedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := s.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "C", all[0].Brand)

	limited, err := s.History(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, []string{limited[0].Brand, limited[1].Brand})
}

func TestMemoryImportStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryImportStore()

	assert.ErrorIs(t, s.SaveBatch(ctx, batch("A", base)), context.Canceled)
	_, err := s.History(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryImportStore_BatchIsCopied(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryImportStore()
	b := batch("A", base, "a1")
	require.NoError(t, s.SaveBatch(ctx, b))

	b.Products[0].Name = "mutated"

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products[0].Name)
}
