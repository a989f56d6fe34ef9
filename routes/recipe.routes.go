package routes

import (
	"foodgram/internal/controllers"
	"foodgram/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRecipeRoutes(router *gin.Engine, recipeController *controllers.RecipeController) {
	// Reads are open but requester-aware: the optional middleware lets the
	// is_favorited / is_in_shopping_cart flags and filters see the actor.
	recipeRoutesPublic := router.Group("/api/recipes")
	recipeRoutesPublic.Use(middleware.OptionalAuthMiddleware())
	{
		recipeRoutesPublic.GET("", recipeController.ListRecipes)
		recipeRoutesPublic.GET("/:id", recipeController.GetRecipeByID)
	}

	recipeRoutesPrivate := router.Group("/api/recipes")
	recipeRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		recipeRoutesPrivate.POST("", recipeController.CreateRecipe)
		recipeRoutesPrivate.PATCH("/:id", recipeController.UpdateRecipe)
		recipeRoutesPrivate.DELETE("/:id", recipeController.DeleteRecipe)
		recipeRoutesPrivate.POST("/:id/favorite", recipeController.Favorite)
		recipeRoutesPrivate.DELETE("/:id/favorite", recipeController.Favorite)
		recipeRoutesPrivate.POST("/:id/shopping_cart", recipeController.ShoppingCart)
		recipeRoutesPrivate.DELETE("/:id/shopping_cart", recipeController.ShoppingCart)
		recipeRoutesPrivate.GET("/download_shopping_cart", recipeController.DownloadShoppingCart)
	}
}
