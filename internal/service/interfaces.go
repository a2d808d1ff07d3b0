package service

import (
	"context"

	"github.com/macroprep/backend/internal/models"
	"github.com/macroprep/backend/internal/types"
)

// IResolver assembles recipe documents.
type IResolver interface {
	AssembleRecipe(recipeID int64) (*models.AssembledRecipe, error)
}

// INutritionEngine ranks and filters recipes by nutrient values.
type INutritionEngine interface {
	RankByCaloriesPerProtein() ([]RatioEntry, error)
	FilterByMacros(minProtein, maxCarbs *float64) ([]map[string]interface{}, error)
}

// IChatService answers questions about assembled recipes.
type IChatService interface {
	ChatAboutRecipe(ctx context.Context, doc *models.AssembledRecipe, userMessage string) string
}

// IShoppingListService generates shareable shopping-list URLs.
type IShoppingListService interface {
	GetShoppingList(ctx context.Context, ingredients []types.IngredientInput) (string, error)
}

// IIdentityService handles OTP flows and session tokens.
type IIdentityService interface {
	SendOTP(ctx context.Context, phone string) (string, error)
	VerifyOTP(ctx context.Context, phone, code, username string) (*VerifyResult, error)
	UpdateUsername(ctx context.Context, phone, username string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}
