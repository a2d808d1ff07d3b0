package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/macroprep/backend/internal/service"
	"github.com/macroprep/backend/internal/types"
)

// ShoppingHandler serves the grocery-list endpoint.
type ShoppingHandler struct {
	shopping service.IShoppingListService
	logger   *zap.Logger
}

// NewShoppingHandler creates the handler.
func NewShoppingHandler(shopping service.IShoppingListService, logger *zap.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		shopping: shopping,
		logger:   logger,
	}
}

// RegisterRoutes attaches the shopping-list endpoint.
func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/instacart/shopping-list", h.GenerateShoppingList)
}

// GenerateShoppingList turns an ingredient list into a shareable URL. The
// provider is never called with an empty list. Config and provider failures
// collapse into a single 403; the detailed reason is already in the logs.
func (h *ShoppingHandler) GenerateShoppingList(c *gin.Context) {
	var req types.ShoppingListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ingredients provided"})
		return
	}
	if len(req.Ingredients) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No ingredients provided"})
		return
	}

	url, err := h.shopping.GetShoppingList(c.Request.Context(), req.Ingredients)
	if err != nil {
		h.logger.Error("shopping list generation failed", zap.Error(err))
		c.JSON(http.StatusForbidden, gin.H{"error": "Failed to generate shopping list. Please check your API key and permissions."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"shopping_list_url": url})
}
