package api

import (
	"context"
	"encoding/json"

	"github.com/macroprep/backend/internal/models"
	"github.com/macroprep/backend/internal/service"
	"github.com/macroprep/backend/internal/types"
)

type stubResolver struct {
	doc *models.AssembledRecipe
	err error
}

func (s *stubResolver) AssembleRecipe(recipeID int64) (*models.AssembledRecipe, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.doc, nil
}

type stubNutrition struct {
	ranked     []service.RatioEntry
	rankErr    error
	filtered   []map[string]interface{}
	filterErr  error
	minProtein *float64
	maxCarbs   *float64
}

func (s *stubNutrition) RankByCaloriesPerProtein() ([]service.RatioEntry, error) {
	return s.ranked, s.rankErr
}

func (s *stubNutrition) FilterByMacros(minProtein, maxCarbs *float64) ([]map[string]interface{}, error) {
	s.minProtein = minProtein
	s.maxCarbs = maxCarbs
	return s.filtered, s.filterErr
}

type stubChat struct {
	response string
	message  string
}

func (s *stubChat) ChatAboutRecipe(_ context.Context, _ *models.AssembledRecipe, userMessage string) string {
	s.message = userMessage
	return s.response
}

type stubShopping struct {
	url         string
	err         error
	called      bool
	ingredients []types.IngredientInput
}

func (s *stubShopping) GetShoppingList(_ context.Context, ingredients []types.IngredientInput) (string, error) {
	s.called = true
	s.ingredients = ingredients
	return s.url, s.err
}

type stubIdentity struct {
	sendStatus string
	sendErr    error
	verify     *service.VerifyResult
	verifyErr  error
	token      string
	updateErr  error
	claims     *types.TokenClaims
	claimsErr  error
}

func (s *stubIdentity) SendOTP(_ context.Context, phone string) (string, error) {
	return s.sendStatus, s.sendErr
}

func (s *stubIdentity) VerifyOTP(_ context.Context, phone, code, username string) (*service.VerifyResult, error) {
	return s.verify, s.verifyErr
}

func (s *stubIdentity) UpdateUsername(_ context.Context, phone, username string) (string, error) {
	return s.token, s.updateErr
}

func (s *stubIdentity) ValidateToken(token string) (*types.TokenClaims, error) {
	return s.claims, s.claimsErr
}

func sampleDoc() *models.AssembledRecipe {
	return &models.AssembledRecipe{
		Recipe: models.Recipe{RecipeID: 1, Name: "Chicken Rice Bowl"},
		Ingredients: []models.ResolvedIngredient{
			{RecipeIngredient: models.RecipeIngredient{RecipeID: 1, IngredientID: 10}, Name: "Chicken Breast"},
		},
		Nutrition: []models.ResolvedNutrient{
			{RecipeID: 1, NutrientID: 20, Name: "Calories", Unit: "kcal", Value: json.Number("500")},
		},
		DietPlans:    []models.ResolvedDietPlan{},
		Tags:         []models.ResolvedTag{},
		Instructions: []models.Instruction{},
		MealPrepTips: []models.MealPrepTip{},
	}
}
