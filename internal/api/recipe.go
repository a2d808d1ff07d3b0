package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/macroprep/backend/internal/service"
)

// RecipeHandler serves the recipe listing, assembly, ranking and search
// endpoints.
type RecipeHandler struct {
	data      *service.Dataset
	resolver  service.IResolver
	nutrition service.INutritionEngine
	logger    *zap.Logger
}

// NewRecipeHandler creates the handler.
func NewRecipeHandler(data *service.Dataset, resolver service.IResolver, nutrition service.INutritionEngine, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		data:      data,
		resolver:  resolver,
		nutrition: nutrition,
		logger:    logger,
	}
}

// RegisterRoutes attaches the recipe endpoints.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes", h.ListRecipes)
	router.GET("/recipes/filter", h.FilterRecipes)
	router.GET("/recipe/:id", h.GetRecipe)
	router.GET("/search", h.SearchRecipes)
}

// ListRecipes returns every raw recipe row.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.Recipes)
}

// GetRecipe returns the assembled document for one recipe.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	doc, err := h.resolver.AssembleRecipe(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// FilterRecipes returns the corpus ranked ascending by calories per gram of
// protein.
func (h *RecipeHandler) FilterRecipes(c *gin.Context) {
	results, err := h.nutrition.RankByCaloriesPerProtein()
	if err != nil {
		h.logger.Error("ratio ranking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// SearchRecipes filters the corpus by optional min_protein and max_carbs
// thresholds.
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	var minProtein, maxCarbs *float64

	if v := c.Query("min_protein"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_protein"})
			return
		}
		minProtein = &f
	}
	if v := c.Query("max_carbs"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_carbs"})
			return
		}
		maxCarbs = &f
	}

	results, err := h.nutrition.FilterByMacros(minProtein, maxCarbs)
	if err != nil {
		h.logger.Error("macro search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, results)
}
