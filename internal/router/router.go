package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macroprep/backend/internal/api"
	"github.com/macroprep/backend/internal/middleware"
	"github.com/macroprep/backend/internal/service"
)

// Setup configures the application routes.
func Setup(
	recipeHandler *api.RecipeHandler,
	chatHandler *api.ChatHandler,
	shoppingHandler *api.ShoppingHandler,
	authHandler *api.AuthHandler,
	identity service.IIdentityService,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := router.Group("")
	recipeHandler.RegisterRoutes(root)
	chatHandler.RegisterRoutes(root)
	authHandler.RegisterRoutes(root)

	// The grocery-list provider spends real credentials, so the route
	// requires a session token.
	apiGroup := router.Group("/api")
	apiGroup.Use(middleware.Auth(identity))
	shoppingHandler.RegisterRoutes(apiGroup)

	return router
}
