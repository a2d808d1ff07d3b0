package service

import (
	"encoding/json"

	"github.com/macroprep/backend/internal/models"
)

// testDataset returns a small corpus exercising every join table, including
// an entry with a dangling foreign key and a recipe with zero protein.
func testDataset() *Dataset {
	return &Dataset{
		Recipes: []models.Recipe{
			{RecipeID: 1, Name: "Chicken Rice Bowl"},
			{RecipeID: 2, Name: "Oat Pancakes"},
			{RecipeID: 3, Name: "Celery Sticks"},
		},
		Ingredients: []models.Ingredient{
			{IngredientID: 10, Name: "Chicken Breast"},
			{IngredientID: 11, Name: "Rice"},
			{IngredientID: 12, Name: "Oats"},
		},
		RecipeIngredients: []models.RecipeIngredient{
			{RecipeID: 1, IngredientID: 10, Amount: json.Number("200"), Unit: "g"},
			{RecipeID: 1, IngredientID: 11, Amount: json.Number("150"), Unit: "g"},
			{RecipeID: 1, IngredientID: 99}, // no library entry
			{RecipeID: 2, IngredientID: 12, Amount: json.Number("100"), Unit: "g"},
		},
		Nutrients: []models.Nutrient{
			{NutrientID: 20, Name: "Calories", Unit: "kcal"},
			{NutrientID: 21, Name: "Protein", Unit: "g"},
			{NutrientID: 22, Name: "Carbs", Unit: "g"},
		},
		RecipeNutrition: []models.RecipeNutrition{
			{RecipeID: 1, NutrientID: 20, Value: json.Number("500")},
			{RecipeID: 1, NutrientID: 21, Value: json.Number("40")},
			{RecipeID: 1, NutrientID: 22, Value: json.Number("55")},
			{RecipeID: 2, NutrientID: 20, Value: json.Number("350")},
			{RecipeID: 2, NutrientID: 21, Value: json.Number("10")},
			{RecipeID: 2, NutrientID: 22, Value: json.Number("60")},
			{RecipeID: 3, NutrientID: 20, Value: json.Number("15")},
			{RecipeID: 3, NutrientID: 21, Value: json.Number("0")},
		},
		DietPlans: []models.DietPlan{
			{DietPlanID: 30, Name: "High Protein"},
		},
		RecipeDietPlans: []models.RecipeDietPlan{
			{RecipeID: 1, DietPlanID: 30},
			{RecipeID: 2, DietPlanID: 31}, // no library entry
		},
		Tags: []models.Tag{
			{TagID: 40, TagName: "dinner"},
		},
		RecipeTags: []models.RecipeTag{
			{RecipeID: 1, TagID: 40},
			{RecipeID: 1, TagID: 41}, // no library entry
		},
		Instructions: []models.Instruction{
			{InstructionID: 50, RecipeID: 1, StepNumber: 1, Description: "Cook the rice"},
			{InstructionID: 51, RecipeID: 1, StepNumber: 2, Description: "Grill the chicken"},
			{InstructionID: 52, RecipeID: 2, StepNumber: 1, Description: "Mix the batter"},
		},
		MealPrepTips: []models.MealPrepTip{
			{TipID: 60, RecipeID: 1, Tip: "Keeps 4 days refrigerated"},
		},
	}
}
