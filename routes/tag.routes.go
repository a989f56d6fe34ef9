package routes

import (
	"foodgram/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterTagRoutes(router *gin.Engine, tagController *controllers.TagController) {
	tagRoutes := router.Group("/api/tags")
	{
		tagRoutes.GET("", tagController.ListTags)
		tagRoutes.GET("/:id", tagController.GetTagByID)
	}
}
