package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_AdjustStock_Add(t *testing.T) {
	product := &Product{StockQuantity: 5, Status: ProductStatusActive}

	previous, err := product.AdjustStock(StockActionAdd, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, previous)
	assert.Equal(t, 12, product.StockQuantity)
	assert.Equal(t, ProductStatusActive, product.Status)
}

func TestProduct_AdjustStock_SubtractToZero(t *testing.T) {
	product := &Product{StockQuantity: 4, Status: ProductStatusActive}

	previous, err := product.AdjustStock(StockActionSubtract, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, previous)
	assert.Equal(t, 0, product.StockQuantity)
	assert.Equal(t, ProductStatusOutOfStock, product.Status)
}

func TestProduct_AdjustStock_SubtractBelowZeroFails(t *testing.T) {
	product := &Product{StockQuantity: 3, Status: ProductStatusActive}

	previous, err := product.AdjustStock(StockActionSubtract, 10)
	require.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 3, previous)
	// A failed subtract leaves the product untouched.
	assert.Equal(t, 3, product.StockQuantity)
	assert.Equal(t, ProductStatusActive, product.Status)
}

func TestProduct_AdjustStock_Set(t *testing.T) {
	product := &Product{StockQuantity: 9, Status: ProductStatusActive}

	previous, err := product.AdjustStock(StockActionSet, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, previous)
	assert.Equal(t, 0, product.StockQuantity)
	assert.Equal(t, ProductStatusOutOfStock, product.Status)

	previous, err = product.AdjustStock(StockActionSet, 15)
	require.NoError(t, err)
	assert.Equal(t, 0, previous)
	assert.Equal(t, 15, product.StockQuantity)
	assert.Equal(t, ProductStatusActive, product.Status)
}

func TestProduct_AdjustStock_InactiveStaysInactive(t *testing.T) {
	product := &Product{StockQuantity: 0, Status: ProductStatusInactive}

	_, err := product.AdjustStock(StockActionAdd, 5)
	require.NoError(t, err)
	// A deliberately unlisted product never auto-relists on restock.
	assert.Equal(t, ProductStatusInactive, product.Status)
}

func TestProduct_AdjustStock_UnknownAction(t *testing.T) {
	product := &Product{StockQuantity: 5, Status: ProductStatusActive}

	_, err := product.AdjustStock(StockAction("multiply"), 2)
	require.Error(t, err)
	assert.Equal(t, 5, product.StockQuantity)
}

func TestProduct_InStock(t *testing.T) {
	assert.True(t, (&Product{StockQuantity: 1}).InStock())
	assert.False(t, (&Product{StockQuantity: 0}).InStock())
}

func TestProductCategories_HaveSubcategories(t *testing.T) {
	require.NotEmpty(t, ProductCategories)

	keys := make(map[string]bool, len(ProductCategories))
	for _, category := range ProductCategories {
		assert.NotEmpty(t, category.Subcategories, category.Key)
		keys[category.Key] = true
	}

	assert.True(t, keys["seeds"])
	assert.True(t, keys["fertilizers"])
	assert.True(t, keys["livestock"])
}
