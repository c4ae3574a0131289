package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"petshop-admin/models"
)

func TestNewCategory(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		category, err := NewCategory(Input{"name": "Dogs"}, noCollision)
		require.NoError(t, err)

		assert.Equal(t, "Dogs", category.Name)
		assert.Equal(t, "dogs", category.Slug)
		assert.True(t, category.IsActive)
		assert.False(t, category.Featured)
	})

	t.Run("MissingNameRejected", func(t *testing.T) {
		_, err := NewCategory(Input{}, noCollision)
		assert.Error(t, err)
	})
}

// The featured flag goes through the lenient string coercion, so the form
// value "false" still turns the flag on. Clients send an empty value or omit
// the field to keep it off. Changing this would break existing admin panels.
func TestCategoryFeaturedCoercion(t *testing.T) {
	t.Run("StringFalseStillFeatured", func(t *testing.T) {
		category, err := NewCategory(Input{"name": "Dogs", "featured": "false"}, noCollision)
		require.NoError(t, err)
		assert.True(t, category.Featured)
	})

	t.Run("EmptyStringNotFeatured", func(t *testing.T) {
		category, err := NewCategory(Input{"name": "Dogs", "featured": ""}, noCollision)
		require.NoError(t, err)
		assert.False(t, category.Featured)
	})

	t.Run("UpdateUsesSameCoercion", func(t *testing.T) {
		current := &models.Category{Name: "Dogs", Slug: "dogs"}
		set, err := CategoryUpdate(Input{"featured": "false"}, current, noCollision)
		require.NoError(t, err)
		assert.Equal(t, true, set["featured"])
	})

	t.Run("IsActiveStaysStrict", func(t *testing.T) {
		category, err := NewCategory(Input{"name": "Dogs", "is_active": "false"}, noCollision)
		require.NoError(t, err)
		assert.False(t, category.IsActive)
	})
}

func TestCategoryUpdate(t *testing.T) {
	current := &models.Category{Name: "Dogs", Slug: "dogs"}

	t.Run("OnlyPresentKeysAppear", func(t *testing.T) {
		set, err := CategoryUpdate(Input{"color": "#ff6600"}, current, noCollision)
		require.NoError(t, err)
		assert.Contains(t, set, "color")
		assert.NotContains(t, set, "name")
		assert.NotContains(t, set, "featured")
	})

	t.Run("SlugRegeneratedOnRename", func(t *testing.T) {
		set, err := CategoryUpdate(Input{"name": "Cats"}, current, noCollision)
		require.NoError(t, err)
		assert.Equal(t, "cats", set["slug"])
	})
}

func TestNewSubcategory(t *testing.T) {
	parentID := primitive.NewObjectID()

	sub, err := NewSubcategory(Input{"name": "Leashes", "featured": "false"}, parentID, noCollision)
	require.NoError(t, err)

	assert.Equal(t, "Leashes", sub.Name)
	assert.Equal(t, "leashes", sub.Slug)
	assert.Equal(t, parentID, sub.CategoryID)
	assert.True(t, sub.Featured)
	assert.Zero(t, sub.ProductCount)
}
