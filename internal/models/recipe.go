package models

import "encoding/json"

// Recipe is a row from the remote recipes table. Beyond the identifier and
// name the table carries free-form metadata columns, so unknown fields are
// kept and round-tripped as-is.
type Recipe struct {
	RecipeID int64
	Name     string
	Meta     map[string]json.RawMessage
}

func (r *Recipe) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["recipe_id"]; ok {
		if err := json.Unmarshal(v, &r.RecipeID); err != nil {
			return err
		}
		delete(raw, "recipe_id")
	}
	if v, ok := raw["name"]; ok {
		if err := json.Unmarshal(v, &r.Name); err != nil {
			return err
		}
		delete(raw, "name")
	}
	r.Meta = raw
	return nil
}

func (r Recipe) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Meta)+2)
	for k, v := range r.Meta {
		out[k] = v
	}
	out["recipe_id"] = r.RecipeID
	out["name"] = r.Name
	return json.Marshal(out)
}

// Ingredient is a row from the ingredients library table.
type Ingredient struct {
	IngredientID int64  `json:"ingredient_id"`
	Name         string `json:"name"`
}

// RecipeIngredient links a recipe to a library ingredient with a quantity.
type RecipeIngredient struct {
	RecipeID     int64       `json:"recipe_id"`
	IngredientID int64       `json:"ingredient_id"`
	Amount       json.Number `json:"amount,omitempty"`
	Unit         string      `json:"unit,omitempty"`
}

// Nutrient is a row from the nutrient library table.
type Nutrient struct {
	NutrientID int64  `json:"nutrient_id"`
	Name       string `json:"name"`
	Unit       string `json:"unit"`
}

// RecipeNutrition links a recipe to a library nutrient with a value. The
// value stays a json.Number until a caller needs arithmetic, so malformed
// stored values surface as conversion errors instead of silent zeros.
type RecipeNutrition struct {
	RecipeID   int64       `json:"recipe_id"`
	NutrientID int64       `json:"nutrient_id"`
	Value      json.Number `json:"value"`
}

// DietPlan is a row from the diet plans table.
type DietPlan struct {
	DietPlanID int64  `json:"diet_plan_id"`
	Name       string `json:"name"`
}

// RecipeDietPlan links a recipe to a diet plan.
type RecipeDietPlan struct {
	RecipeID   int64 `json:"recipe_id"`
	DietPlanID int64 `json:"diet_plan_id"`
}

// Tag is a row from the tags library table.
type Tag struct {
	TagID   int64  `json:"tag_id"`
	TagName string `json:"tag_name"`
}

// RecipeTag links a recipe to a tag.
type RecipeTag struct {
	RecipeID int64 `json:"recipe_id"`
	TagID    int64 `json:"tag_id"`
}

// Instruction is a per-recipe preparation step.
type Instruction struct {
	InstructionID int64  `json:"instruction_id"`
	RecipeID      int64  `json:"recipe_id"`
	StepNumber    int    `json:"step_number"`
	Description   string `json:"description"`
}

// MealPrepTip is a per-recipe storage or prep note.
type MealPrepTip struct {
	TipID    int64  `json:"tip_id"`
	RecipeID int64  `json:"recipe_id"`
	Tip      string `json:"tip"`
}

// ResolvedIngredient is a join entry with the library name attached.
type ResolvedIngredient struct {
	RecipeIngredient
	Name string `json:"name"`
}

// ResolvedNutrient is a join entry with the library name and unit attached.
type ResolvedNutrient struct {
	RecipeID   int64       `json:"recipe_id"`
	NutrientID int64       `json:"nutrient_id"`
	Name       string      `json:"name"`
	Unit       string      `json:"unit"`
	Value      json.Number `json:"value"`
}

// ResolvedDietPlan is a join entry with the plan name attached.
type ResolvedDietPlan struct {
	DietPlanID int64  `json:"diet_plan_id"`
	Name       string `json:"name"`
}

// ResolvedTag is a join entry with the tag name attached.
type ResolvedTag struct {
	TagID   int64  `json:"tag_id"`
	TagName string `json:"tag_name"`
}

// AssembledRecipe is the fully resolved, request-scoped recipe document
// returned to clients.
type AssembledRecipe struct {
	Recipe       Recipe               `json:"recipe"`
	Ingredients  []ResolvedIngredient `json:"ingredients"`
	Nutrition    []ResolvedNutrient   `json:"nutrition"`
	DietPlans    []ResolvedDietPlan   `json:"diet_plans"`
	Tags         []ResolvedTag        `json:"tags"`
	Instructions []Instruction        `json:"instructions"`
	MealPrepTips []MealPrepTip        `json:"meal_prep_tips"`
}
