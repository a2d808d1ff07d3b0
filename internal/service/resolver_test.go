package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_AssembleRecipe(t *testing.T) {
	resolver := NewResolver(testDataset())

	t.Run("should return not found for unknown id", func(t *testing.T) {
		doc, err := resolver.AssembleRecipe(999)
		assert.ErrorIs(t, err, ErrRecipeNotFound)
		assert.Nil(t, doc)
	})

	t.Run("should resolve ingredient names", func(t *testing.T) {
		doc, err := resolver.AssembleRecipe(1)
		require.NoError(t, err)

		require.Len(t, doc.Ingredients, 3)
		assert.Equal(t, "Chicken Breast", doc.Ingredients[0].Name)
		assert.Equal(t, "Rice", doc.Ingredients[1].Name)
	})

	t.Run("should default unresolved foreign keys to Unknown", func(t *testing.T) {
		doc, err := resolver.AssembleRecipe(1)
		require.NoError(t, err)

		assert.Equal(t, "Unknown", doc.Ingredients[2].Name)
		require.Len(t, doc.Tags, 2)
		assert.Equal(t, "Unknown", doc.Tags[1].TagName)
	})

	t.Run("should resolve nutrient names and units", func(t *testing.T) {
		doc, err := resolver.AssembleRecipe(1)
		require.NoError(t, err)

		require.Len(t, doc.Nutrition, 3)
		assert.Equal(t, "Calories", doc.Nutrition[0].Name)
		assert.Equal(t, "kcal", doc.Nutrition[0].Unit)
		assert.Equal(t, "500", doc.Nutrition[0].Value.String())
	})

	t.Run("should resolve diet plans with Unknown fallback", func(t *testing.T) {
		doc, err := resolver.AssembleRecipe(2)
		require.NoError(t, err)

		require.Len(t, doc.DietPlans, 1)
		assert.Equal(t, "Unknown", doc.DietPlans[0].Name)
	})

	t.Run("should attach instructions and tips by recipe id", func(t *testing.T) {
		doc, err := resolver.AssembleRecipe(1)
		require.NoError(t, err)

		require.Len(t, doc.Instructions, 2)
		assert.Equal(t, "Cook the rice", doc.Instructions[0].Description)
		assert.Equal(t, "Grill the chicken", doc.Instructions[1].Description)
		require.Len(t, doc.MealPrepTips, 1)
	})

	t.Run("should return empty slices for recipe with no joins", func(t *testing.T) {
		doc, err := resolver.AssembleRecipe(3)
		require.NoError(t, err)

		assert.Empty(t, doc.Ingredients)
		assert.Empty(t, doc.Tags)
		assert.Empty(t, doc.Instructions)
		assert.NotNil(t, doc.Ingredients)
	})
}
