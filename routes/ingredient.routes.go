package routes

import (
	"foodgram/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterIngredientRoutes(router *gin.Engine, ingredientController *controllers.IngredientController) {
	ingredientRoutes := router.Group("/api/ingredients")
	{
		ingredientRoutes.GET("", ingredientController.ListIngredients)
		ingredientRoutes.GET("/:id", ingredientController.GetIngredientByID)
	}
}
