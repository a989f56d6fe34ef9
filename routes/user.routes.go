package routes

import (
	"foodgram/internal/controllers"
	"foodgram/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	router.POST("/api/auth/token/login", userController.LoginUser)

	userRoutesPublic := router.Group("/api/users")
	userRoutesPublic.Use(middleware.OptionalAuthMiddleware())
	{
		userRoutesPublic.POST("", userController.RegisterUser)
		userRoutesPublic.GET("", userController.ListUsers)
		userRoutesPublic.GET("/:id", userController.GetUserByID)
	}

	userRoutesPrivate := router.Group("/api/users")
	userRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		userRoutesPrivate.GET("/me", userController.GetCurrentUser)
		userRoutesPrivate.GET("/subscriptions", userController.ListSubscriptions)
		userRoutesPrivate.POST("/:id/subscribe", userController.Subscribe)
		userRoutesPrivate.DELETE("/:id/subscribe", userController.Subscribe)
	}
}
