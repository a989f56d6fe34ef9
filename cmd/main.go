package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"foodgram/database"
	"foodgram/docs"
	"foodgram/internal/cache"
	"foodgram/internal/controllers"
	"foodgram/internal/repository"
	"foodgram/internal/utils"
	"foodgram/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Foodgram API
// @description Recipe sharing backend: recipes, tags, ingredients, favorites, shopping lists and subscriptions.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	docs.SwaggerInfo.Title = "Foodgram API"
	docs.SwaggerInfo.Description = "Recipe sharing backend with shopping list aggregation"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Reference data is served from cache when Redis is reachable; the
	// repositories degrade to plain database reads when it is not.
	var (
		tagRepo        repository.TagRepository
		ingredientRepo repository.IngredientRepository
	)
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, reference data caching disabled: %v", err)
		tagRepo = repository.NewTagRepository(database.DB)
		ingredientRepo = repository.NewIngredientRepository(database.DB)
	} else {
		defer redisClient.Close()
		tagRepo = repository.NewCachedTagRepository(database.DB, redisClient)
		ingredientRepo = repository.NewCachedIngredientRepository(database.DB, redisClient)
	}

	userRepo := repository.NewUserRepository(database.DB)
	recipeRepo := repository.NewRecipeRepository(database.DB)
	relationRepo := repository.NewRelationRepository(database.DB)
	shoppingRepo := repository.NewShoppingListRepository(database.DB)

	tagController := controllers.NewTagController(tagRepo)
	ingredientController := controllers.NewIngredientController(ingredientRepo)
	recipeController := controllers.NewRecipeController(recipeRepo, relationRepo, shoppingRepo, userRepo)
	userController := controllers.NewUserController(userRepo, recipeRepo, relationRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Foodgram API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	router.Static("/media", utils.MediaRoot())

	routes.RegisterTagRoutes(router, tagController)
	routes.RegisterIngredientRoutes(router, ingredientController)
	routes.RegisterRecipeRoutes(router, recipeController)
	routes.RegisterUserRoutes(router, userController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
