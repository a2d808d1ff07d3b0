package service

import (
	"fmt"
	"sort"
	"strings"
)

// RatioEntry is one row of the calories-per-gram-of-protein ranking.
type RatioEntry struct {
	RecipeID      int64   `json:"recipe_id"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	CalPerProtein float64 `json:"cal_per_protein"`
}

// NutritionEngine computes derived nutrient ratios and threshold filters
// across the whole recipe corpus.
type NutritionEngine struct {
	data *Dataset
}

// NewNutritionEngine creates an engine over the given dataset.
func NewNutritionEngine(data *Dataset) *NutritionEngine {
	return &NutritionEngine{data: data}
}

// nutrientsByRecipe flattens the nutrition join table into a per-recipe
// name→value map, with names resolved through the library and lowercased.
// Recipe ids are returned in first-seen scan order so callers stay
// deterministic. A value that cannot be parsed as a number is an error;
// defaulting it would silently corrupt any ranking built on top.
func (e *NutritionEngine) nutrientsByRecipe() ([]int64, map[int64]map[string]float64, error) {
	names := make(map[int64]string, len(e.data.Nutrients))
	for _, n := range e.data.Nutrients {
		names[n.NutrientID] = strings.ToLower(n.Name)
	}

	var order []int64
	byRecipe := make(map[int64]map[string]float64)
	for _, entry := range e.data.RecipeNutrition {
		name, ok := names[entry.NutrientID]
		if !ok {
			continue
		}
		value := 0.0
		if entry.Value != "" {
			v, err := entry.Value.Float64()
			if err != nil {
				return nil, nil, fmt.Errorf("invalid nutrient value %q for recipe %d: %w", entry.Value, entry.RecipeID, err)
			}
			value = v
		}
		m, ok := byRecipe[entry.RecipeID]
		if !ok {
			m = make(map[string]float64)
			byRecipe[entry.RecipeID] = m
			order = append(order, entry.RecipeID)
		}
		m[name] = value
	}
	return order, byRecipe, nil
}

// RankByCaloriesPerProtein returns every recipe with a calories value and a
// nonzero protein value, sorted ascending by calories/protein. Recipes
// missing either value are excluded, not errors. Ties keep scan order.
func (e *NutritionEngine) RankByCaloriesPerProtein() ([]RatioEntry, error) {
	order, byRecipe, err := e.nutrientsByRecipe()
	if err != nil {
		return nil, err
	}

	results := []RatioEntry{}
	for _, rid := range order {
		nutrients := byRecipe[rid]
		calories, hasCalories := nutrients["calories"]
		protein, hasProtein := nutrients["protein"]
		if !hasCalories || !hasProtein || protein == 0 {
			continue
		}
		results = append(results, RatioEntry{
			RecipeID:      rid,
			Calories:      calories,
			Protein:       protein,
			CalPerProtein: calories / protein,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CalPerProtein < results[j].CalPerProtein
	})
	return results, nil
}

// FilterByMacros returns recipes passing the given thresholds. A nil
// threshold always passes; a set threshold excludes recipes missing the
// corresponding nutrient. Each result carries the recipe id plus its full
// nutrient map.
func (e *NutritionEngine) FilterByMacros(minProtein, maxCarbs *float64) ([]map[string]interface{}, error) {
	order, byRecipe, err := e.nutrientsByRecipe()
	if err != nil {
		return nil, err
	}

	results := []map[string]interface{}{}
	for _, rid := range order {
		nutrients := byRecipe[rid]

		if minProtein != nil {
			protein, ok := nutrients["protein"]
			if !ok || protein < *minProtein {
				continue
			}
		}
		if maxCarbs != nil {
			carbs, ok := nutrients["carbs"]
			if !ok || carbs > *maxCarbs {
				continue
			}
		}

		entry := map[string]interface{}{"recipe_id": rid}
		for name, value := range nutrients {
			entry[name] = value
		}
		results = append(results, entry)
	}
	return results, nil
}
