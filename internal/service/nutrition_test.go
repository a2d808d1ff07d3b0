package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macroprep/backend/internal/models"
)

func TestNutritionEngine_RankByCaloriesPerProtein(t *testing.T) {
	engine := NewNutritionEngine(testDataset())

	t.Run("should rank ascending by ratio", func(t *testing.T) {
		results, err := engine.RankByCaloriesPerProtein()
		require.NoError(t, err)

		// Recipe 1: 500/40 = 12.5; recipe 2: 350/10 = 35.
		require.Len(t, results, 2)
		assert.Equal(t, int64(1), results[0].RecipeID)
		assert.InDelta(t, 12.5, results[0].CalPerProtein, 1e-9)
		assert.Equal(t, int64(2), results[1].RecipeID)
		assert.InDelta(t, 35.0, results[1].CalPerProtein, 1e-9)
	})

	t.Run("should exclude zero-protein recipes", func(t *testing.T) {
		results, err := engine.RankByCaloriesPerProtein()
		require.NoError(t, err)

		for _, r := range results {
			assert.NotEqual(t, int64(3), r.RecipeID)
		}
	})

	t.Run("should exclude recipes missing calories", func(t *testing.T) {
		data := testDataset()
		data.RecipeNutrition = append(data.RecipeNutrition,
			models.RecipeNutrition{RecipeID: 4, NutrientID: 21, Value: json.Number("30")})

		results, err := NewNutritionEngine(data).RankByCaloriesPerProtein()
		require.NoError(t, err)
		for _, r := range results {
			assert.NotEqual(t, int64(4), r.RecipeID)
		}
	})

	t.Run("should fail loudly on malformed values", func(t *testing.T) {
		data := testDataset()
		data.RecipeNutrition[0].Value = json.Number("not-a-number")

		_, err := NewNutritionEngine(data).RankByCaloriesPerProtein()
		assert.Error(t, err)
	})
}

func TestNutritionEngine_FilterByMacros(t *testing.T) {
	engine := NewNutritionEngine(testDataset())

	float := func(v float64) *float64 { return &v }

	t.Run("should include everything without thresholds", func(t *testing.T) {
		results, err := engine.FilterByMacros(nil, nil)
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("should exclude recipes below min protein", func(t *testing.T) {
		results, err := engine.FilterByMacros(float(20), nil)
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, int64(1), results[0]["recipe_id"])
	})

	t.Run("should include recipes exactly at min protein", func(t *testing.T) {
		results, err := engine.FilterByMacros(float(10), nil)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("should exclude recipes above max carbs", func(t *testing.T) {
		results, err := engine.FilterByMacros(nil, float(56))
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, int64(1), results[0]["recipe_id"])
	})

	t.Run("should exclude recipes missing a thresholded nutrient", func(t *testing.T) {
		// Recipe 3 has no carbs entry, so a max_carbs threshold drops it.
		results, err := engine.FilterByMacros(nil, float(1000))
		require.NoError(t, err)

		ids := []int64{}
		for _, r := range results {
			ids = append(ids, r["recipe_id"].(int64))
		}
		assert.NotContains(t, ids, int64(3))
	})

	t.Run("should keep nutrient-missing recipes when no threshold set", func(t *testing.T) {
		results, err := engine.FilterByMacros(nil, nil)
		require.NoError(t, err)

		ids := []int64{}
		for _, r := range results {
			ids = append(ids, r["recipe_id"].(int64))
		}
		assert.Contains(t, ids, int64(3))
	})

	t.Run("should combine both thresholds", func(t *testing.T) {
		results, err := engine.FilterByMacros(float(5), float(56))
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, int64(1), results[0]["recipe_id"])
		assert.Equal(t, 40.0, results[0]["protein"])
		assert.Equal(t, 55.0, results[0]["carbs"])
	})
}
