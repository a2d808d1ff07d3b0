package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/macroprep/backend/internal/models"
)

// Dataset is the in-memory copy of the reference tables. It is loaded once
// at startup and treated as read-only for the process lifetime.
type Dataset struct {
	Recipes           []models.Recipe
	Ingredients       []models.Ingredient
	RecipeIngredients []models.RecipeIngredient
	Nutrients         []models.Nutrient
	RecipeNutrition   []models.RecipeNutrition
	DietPlans         []models.DietPlan
	RecipeDietPlans   []models.RecipeDietPlan
	Tags              []models.Tag
	RecipeTags        []models.RecipeTag
	Instructions      []models.Instruction
	MealPrepTips      []models.MealPrepTip
}

// TableFetcher reads a whole table from the reference-data store.
type TableFetcher interface {
	FetchTable(ctx context.Context, table string, dest interface{}) error
}

// LoadDataset pulls every reference table into memory.
func LoadDataset(ctx context.Context, fetcher TableFetcher, logger *zap.Logger) (*Dataset, error) {
	ds := &Dataset{}

	tables := []struct {
		name string
		dest interface{}
	}{
		{"recipes", &ds.Recipes},
		{"ingredients_library", &ds.Ingredients},
		{"recipe_ingredients_join_table", &ds.RecipeIngredients},
		{"nutrient_library", &ds.Nutrients},
		{"recipe_nutrition_join_table", &ds.RecipeNutrition},
		{"diet_plans", &ds.DietPlans},
		{"recipe_diet_plan_join_table", &ds.RecipeDietPlans},
		{"tags_library", &ds.Tags},
		{"recipe_tags_join_table", &ds.RecipeTags},
		{"instructions", &ds.Instructions},
		{"meal_prep_tips", &ds.MealPrepTips},
	}

	for _, t := range tables {
		if err := fetcher.FetchTable(ctx, t.name, t.dest); err != nil {
			return nil, fmt.Errorf("loading dataset: %w", err)
		}
	}

	logger.Info("reference data loaded",
		zap.Int("recipes", len(ds.Recipes)),
		zap.Int("ingredients", len(ds.Ingredients)),
		zap.Int("nutrients", len(ds.Nutrients)))

	return ds, nil
}

// RecipeByID returns the recipe row with the given id, or nil.
func (d *Dataset) RecipeByID(id int64) *models.Recipe {
	for i := range d.Recipes {
		if d.Recipes[i].RecipeID == id {
			return &d.Recipes[i]
		}
	}
	return nil
}
