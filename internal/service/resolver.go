package service

import (
	"encoding/json"

	"github.com/macroprep/backend/internal/models"
)

// unknownName is attached to join entries whose foreign id has no match in
// the library table. Unresolved references are a leniency policy here, not
// an error.
const unknownName = "Unknown"

// Resolver assembles full recipe documents from the normalized reference
// tables.
type Resolver struct {
	data *Dataset
}

// NewResolver creates a resolver over the given dataset.
func NewResolver(data *Dataset) *Resolver {
	return &Resolver{data: data}
}

// AssembleRecipe joins a recipe against the related tables and returns the
// resolved document, or ErrRecipeNotFound if the id has no recipe row.
// Entries keep each table's natural order.
func (r *Resolver) AssembleRecipe(recipeID int64) (*models.AssembledRecipe, error) {
	recipe := r.data.RecipeByID(recipeID)
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}

	doc := &models.AssembledRecipe{
		Recipe:       *recipe,
		Ingredients:  []models.ResolvedIngredient{},
		Nutrition:    []models.ResolvedNutrient{},
		DietPlans:    []models.ResolvedDietPlan{},
		Tags:         []models.ResolvedTag{},
		Instructions: []models.Instruction{},
		MealPrepTips: []models.MealPrepTip{},
	}

	ingredientNames := make(map[int64]string, len(r.data.Ingredients))
	for _, ing := range r.data.Ingredients {
		ingredientNames[ing.IngredientID] = ing.Name
	}
	for _, entry := range r.data.RecipeIngredients {
		if entry.RecipeID != recipeID {
			continue
		}
		name, ok := ingredientNames[entry.IngredientID]
		if !ok {
			name = unknownName
		}
		doc.Ingredients = append(doc.Ingredients, models.ResolvedIngredient{
			RecipeIngredient: entry,
			Name:             name,
		})
	}

	nutrients := make(map[int64]models.Nutrient, len(r.data.Nutrients))
	for _, n := range r.data.Nutrients {
		nutrients[n.NutrientID] = n
	}
	for _, entry := range r.data.RecipeNutrition {
		if entry.RecipeID != recipeID {
			continue
		}
		resolved := models.ResolvedNutrient{
			RecipeID:   entry.RecipeID,
			NutrientID: entry.NutrientID,
			Name:       unknownName,
			Value:      entry.Value,
		}
		if n, ok := nutrients[entry.NutrientID]; ok {
			resolved.Name = n.Name
			resolved.Unit = n.Unit
		}
		if resolved.Value == "" {
			resolved.Value = json.Number("0")
		}
		doc.Nutrition = append(doc.Nutrition, resolved)
	}

	planNames := make(map[int64]string, len(r.data.DietPlans))
	for _, p := range r.data.DietPlans {
		planNames[p.DietPlanID] = p.Name
	}
	for _, entry := range r.data.RecipeDietPlans {
		if entry.RecipeID != recipeID {
			continue
		}
		name, ok := planNames[entry.DietPlanID]
		if !ok {
			name = unknownName
		}
		doc.DietPlans = append(doc.DietPlans, models.ResolvedDietPlan{
			DietPlanID: entry.DietPlanID,
			Name:       name,
		})
	}

	tagNames := make(map[int64]string, len(r.data.Tags))
	for _, t := range r.data.Tags {
		tagNames[t.TagID] = t.TagName
	}
	for _, entry := range r.data.RecipeTags {
		if entry.RecipeID != recipeID {
			continue
		}
		name, ok := tagNames[entry.TagID]
		if !ok {
			name = unknownName
		}
		doc.Tags = append(doc.Tags, models.ResolvedTag{
			TagID:   entry.TagID,
			TagName: name,
		})
	}

	for _, ins := range r.data.Instructions {
		if ins.RecipeID == recipeID {
			doc.Instructions = append(doc.Instructions, ins)
		}
	}
	for _, tip := range r.data.MealPrepTips {
		if tip.RecipeID == recipeID {
			doc.MealPrepTips = append(doc.MealPrepTips, tip)
		}
	}

	return doc, nil
}
