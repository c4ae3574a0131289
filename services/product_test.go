package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop-admin/models"
	"petshop-admin/utils"
)

func noCollision(string) (bool, error) { return false, nil }

func TestNewProduct(t *testing.T) {
	t.Run("FullDocument", func(t *testing.T) {
		in := Input{
			"name":       "Dog Leash",
			"price":      "24.99",
			"sale_price": "19.99",
			"quantity":   "12",
			"tags":       "dog, leash, outdoor",
			"featured":   "true",
		}

		product, err := NewProduct(in, noCollision)
		require.NoError(t, err)

		assert.Equal(t, "Dog Leash", product.Name)
		assert.Equal(t, "dog-leash", product.Slug)
		assert.Equal(t, 24.99, product.Price)
		require.NotNil(t, product.SalePrice)
		assert.Equal(t, 19.99, *product.SalePrice)
		assert.Equal(t, 12, product.Quantity)
		assert.Equal(t, models.StockStatusIn, product.StockStatus)
		assert.Equal(t, []string{"dog", "leash", "outdoor"}, product.Tags)
		assert.True(t, product.Featured)
		assert.True(t, product.IsActive)
	})

	t.Run("ZeroSalePriceStoresNull", func(t *testing.T) {
		in := Input{"name": "Dog Leash", "price": "24.99", "sale_price": "0"}
		product, err := NewProduct(in, noCollision)
		require.NoError(t, err)
		assert.Nil(t, product.SalePrice)
	})

	t.Run("AbsentSalePriceStoresNull", func(t *testing.T) {
		in := Input{"name": "Dog Leash", "price": "24.99"}
		product, err := NewProduct(in, noCollision)
		require.NoError(t, err)
		assert.Nil(t, product.SalePrice)
	})

	t.Run("ZeroQuantityIsOutOfStock", func(t *testing.T) {
		in := Input{"name": "Dog Leash", "price": "24.99", "quantity": "0"}
		product, err := NewProduct(in, noCollision)
		require.NoError(t, err)
		assert.Equal(t, models.StockStatusOut, product.StockStatus)
	})

	t.Run("AcceptsQuantityInStockAlias", func(t *testing.T) {
		in := Input{"name": "Dog Leash", "price": "24.99", "quantity_in_stock": "3"}
		product, err := NewProduct(in, noCollision)
		require.NoError(t, err)
		assert.Equal(t, 3, product.Quantity)
	})

	t.Run("MissingNameRejected", func(t *testing.T) {
		_, err := NewProduct(Input{"price": "10"}, noCollision)
		var vErr *utils.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "name")
	})

	t.Run("MissingPriceRejected", func(t *testing.T) {
		_, err := NewProduct(Input{"name": "Dog Leash"}, noCollision)
		var vErr *utils.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "price")
	})

	t.Run("NegativePriceRejected", func(t *testing.T) {
		_, err := NewProduct(Input{"name": "Dog Leash", "price": "-5"}, noCollision)
		assert.Error(t, err)
	})

	t.Run("NegativeSalePriceRejected", func(t *testing.T) {
		_, err := NewProduct(Input{"name": "Dog Leash", "price": "10", "sale_price": "-5"}, noCollision)
		var vErr *utils.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "sale_price")
	})
}

func TestProductUpdate(t *testing.T) {
	current := &models.Product{Name: "Dog Leash", Slug: "dog-leash"}

	t.Run("OnlyPresentKeysAppear", func(t *testing.T) {
		set, err := ProductUpdate(Input{"price": "29.99"}, current, noCollision)
		require.NoError(t, err)

		assert.Contains(t, set, "price")
		assert.Contains(t, set, "updated_at")
		assert.NotContains(t, set, "name")
		assert.NotContains(t, set, "description")
		assert.NotContains(t, set, "quantity")
	})

	t.Run("EmptyInputProducesEmptyUpdate", func(t *testing.T) {
		set, err := ProductUpdate(Input{}, current, noCollision)
		require.NoError(t, err)
		assert.Empty(t, set)
	})

	t.Run("SlugRegeneratedOnNameChange", func(t *testing.T) {
		set, err := ProductUpdate(Input{"name": "Cat Leash"}, current, noCollision)
		require.NoError(t, err)
		assert.Equal(t, "cat-leash", set["slug"])
	})

	t.Run("SlugKeptWhenNameUnchanged", func(t *testing.T) {
		set, err := ProductUpdate(Input{"name": "Dog Leash"}, current, noCollision)
		require.NoError(t, err)
		assert.NotContains(t, set, "slug")
	})

	t.Run("QuantityRederivesStockStatus", func(t *testing.T) {
		set, err := ProductUpdate(Input{"quantity": "0"}, current, noCollision)
		require.NoError(t, err)
		assert.Equal(t, models.StockStatusOut, set["stock_status"])

		set, err = ProductUpdate(Input{"quantity": "4"}, current, noCollision)
		require.NoError(t, err)
		assert.Equal(t, models.StockStatusIn, set["stock_status"])
	})

	t.Run("QuantityInStockAliasAccepted", func(t *testing.T) {
		set, err := ProductUpdate(Input{"quantity_in_stock": "0"}, current, noCollision)
		require.NoError(t, err)
		assert.Equal(t, 0, set["quantity"])
		assert.Equal(t, models.StockStatusOut, set["stock_status"])
	})

	t.Run("NegativeSalePriceRejected", func(t *testing.T) {
		_, err := ProductUpdate(Input{"sale_price": "-5"}, current, noCollision)
		var vErr *utils.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Fields, "sale_price")
	})

	t.Run("SalePriceClearedByZero", func(t *testing.T) {
		set, err := ProductUpdate(Input{"sale_price": "0"}, current, noCollision)
		require.NoError(t, err)
		assert.Contains(t, set, "sale_price")
		assert.Nil(t, set["sale_price"])
	})

	t.Run("StrictBooleanOnFeatured", func(t *testing.T) {
		set, err := ProductUpdate(Input{"featured": "false"}, current, noCollision)
		require.NoError(t, err)
		assert.Equal(t, false, set["featured"])
	})
}
