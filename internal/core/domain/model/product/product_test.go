package product_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(t *testing.T) *product.Product {
	t.Helper()

	p, err := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(),
		"Onions", "Fresh red onions", "vegetables",
		40, 100, product.UnitKg,
	)
	require.NoError(t, err)
	return p
}

func TestUnitFromString(t *testing.T) {
	t.Run("round trips every valid unit", func(t *testing.T) {
		for _, u := range []product.Unit{
			product.UnitKg, product.UnitPieces, product.UnitLiters, product.UnitGrams,
		} {
			parsed, err := product.UnitFromString(u.String())
			require.NoError(t, err)
			assert.Equal(t, u, parsed)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "KG", "boxes"} {
			_, err := product.UnitFromString(input)
			require.Error(t, err, input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestNewProduct(t *testing.T) {
	t.Run("creates an available product", func(t *testing.T) {
		p := testProduct(t)

		assert.True(t, p.IsAvailable())
		assert.True(t, p.IsOrderable())
		assert.Equal(t, float64(100), p.StockQty())
		assert.NoError(t, p.Validate())
	})

	t.Run("allows zero stock", func(t *testing.T) {
		p, err := product.NewProduct(
			kernel.NewUUID(), kernel.NewUUID(),
			"Onions", "", "vegetables", 40, 0, product.UnitKg,
		)

		require.NoError(t, err)
		assert.True(t, p.IsAvailable())
		assert.False(t, p.IsOrderable())
	})

	t.Run("rejects invalid parameters", func(t *testing.T) {
		tests := map[string]func() error{
			"zero supplier": func() error {
				_, err := product.NewProduct(kernel.NewUUID(), kernel.UUID{}, "Onions", "", "vegetables", 40, 1, product.UnitKg)
				return err
			},
			"empty name": func() error {
				_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "", "", "vegetables", 40, 1, product.UnitKg)
				return err
			},
			"empty category": func() error {
				_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Onions", "", "", 40, 1, product.UnitKg)
				return err
			},
			"non-positive price": func() error {
				_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Onions", "", "vegetables", 0, 1, product.UnitKg)
				return err
			},
			"negative stock": func() error {
				_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Onions", "", "vegetables", 40, -1, product.UnitKg)
				return err
			},
			"unknown unit": func() error {
				_, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(), "Onions", "", "vegetables", 40, 1, product.UnitUnknown)
				return err
			},
		}
		for name, construct := range tests {
			t.Run(name, func(t *testing.T) {
				require.Error(t, construct())
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p product.Product
		assert.Equal(t, product.ErrProductIsNotConstructed, p.Validate())
	})
}

func TestProduct_ReduceStock(t *testing.T) {
	t.Run("consumes available stock", func(t *testing.T) {
		p := testProduct(t)

		require.NoError(t, p.ReduceStock(30.5))

		assert.Equal(t, 69.5, p.StockQty())
	})

	t.Run("fails when stock does not cover the request", func(t *testing.T) {
		p := testProduct(t)

		err := p.ReduceStock(100.5)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, float64(100), p.StockQty())
	})

	t.Run("can drain stock to exactly zero", func(t *testing.T) {
		p := testProduct(t)

		require.NoError(t, p.ReduceStock(100))

		assert.Equal(t, float64(0), p.StockQty())
		assert.False(t, p.IsOrderable())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := testProduct(t)
		require.Error(t, p.ReduceStock(0))
		require.Error(t, p.ReduceStock(-5))
	})
}

func TestProduct_RestoreStock(t *testing.T) {
	p := testProduct(t)
	require.NoError(t, p.ReduceStock(40))

	require.NoError(t, p.RestoreStock(40))

	assert.Equal(t, float64(100), p.StockQty())
	require.Error(t, p.RestoreStock(0))
}

func TestProduct_Update(t *testing.T) {
	t.Run("replaces catalog attributes", func(t *testing.T) {
		p := testProduct(t)

		require.NoError(t, p.Update("Shallots", "Small shallots", "vegetables", 55, product.UnitGrams))

		assert.Equal(t, "Shallots", p.Name())
		assert.Equal(t, float64(55), p.Price())
		assert.Equal(t, product.UnitGrams, p.Unit())
		assert.Equal(t, float64(100), p.StockQty())
	})

	t.Run("rejects invalid attributes", func(t *testing.T) {
		p := testProduct(t)

		require.Error(t, p.Update("", "", "vegetables", 55, product.UnitKg))
		require.Error(t, p.Update("Shallots", "", "vegetables", -1, product.UnitKg))

		assert.Equal(t, "Onions", p.Name())
	})
}

func TestProduct_SetAvailability(t *testing.T) {
	p := testProduct(t)

	p.SetAvailability(false)
	assert.False(t, p.IsAvailable())
	assert.False(t, p.IsOrderable())

	p.SetAvailability(true)
	assert.True(t, p.IsOrderable())
}

func TestRestoreProduct(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	p, err := product.RestoreProduct(
		id, kernel.NewUUID(),
		"Onions", "", "vegetables",
		40, 12.5, product.UnitKg,
		false, createdAt, createdAt,
	)

	require.NoError(t, err)
	assert.True(t, p.ID().IsEqual(id))
	assert.False(t, p.IsAvailable())
	assert.Equal(t, 12.5, p.StockQty())
	assert.Equal(t, createdAt, p.CreatedAt())
}
