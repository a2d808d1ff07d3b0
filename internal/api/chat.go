package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/macroprep/backend/internal/service"
	"github.com/macroprep/backend/internal/types"
)

// ChatHandler serves the per-recipe AI assistant endpoint.
type ChatHandler struct {
	resolver service.IResolver
	chat     service.IChatService
	logger   *zap.Logger
}

// NewChatHandler creates the handler.
func NewChatHandler(resolver service.IResolver, chat service.IChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		resolver: resolver,
		chat:     chat,
		logger:   logger,
	}
}

// RegisterRoutes attaches the chat endpoint.
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipe/:id/chat", h.Chat)
}

// Chat answers a question about one recipe. The response is always
// conversational text; provider faults never reach the client.
func (h *ChatHandler) Chat(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	doc, err := h.resolver.AssembleRecipe(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	response := h.chat.ChatAboutRecipe(c.Request.Context(), doc, req.Message)
	c.JSON(http.StatusOK, gin.H{"response": response})
}
