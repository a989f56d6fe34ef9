package controllers

import (
	"net/http"
	"strconv"

	"foodgram/internal/middleware"
	"foodgram/internal/models"
	"foodgram/internal/repository"
	"foodgram/internal/utils"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	recipeRepo   repository.RecipeRepository
	relationRepo repository.RelationRepository
	shoppingRepo repository.ShoppingListRepository
	userRepo     repository.UserRepository
}

func NewRecipeController(
	recipeRepo repository.RecipeRepository,
	relationRepo repository.RelationRepository,
	shoppingRepo repository.ShoppingListRepository,
	userRepo repository.UserRepository,
) *RecipeController {
	return &RecipeController{
		recipeRepo:   recipeRepo,
		relationRepo: relationRepo,
		shoppingRepo: shoppingRepo,
		userRepo:     userRepo,
	}
}

type ingredientAmountRequest struct {
	ID     uint `json:"id" binding:"required"`
	Amount int  `json:"amount" binding:"required,min=1,max=32000"`
}

type recipeRequest struct {
	Tags        []uint                    `json:"tags" binding:"required,min=1"`
	Ingredients []ingredientAmountRequest `json:"ingredients" binding:"required,min=1,dive"`
	Name        string                    `json:"name" binding:"required,max=200"`
	Image       string                    `json:"image"`
	Text        string                    `json:"text" binding:"required"`
	CookingTime int                       `json:"cooking_time" binding:"required,min=1,max=32000"`
}

func (req *recipeRequest) ingredientAmounts() []repository.IngredientAmount {
	pairs := make([]repository.IngredientAmount, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		pairs = append(pairs, repository.IngredientAmount{ID: ing.ID, Amount: ing.Amount})
	}
	return pairs
}

// buildRecipeResponse resolves the requester-relative flags. All three are
// false for an anonymous requester.
func (rc *RecipeController) buildRecipeResponse(c *gin.Context, recipe *models.Recipe) RecipeResponse {
	requesterID := middleware.CurrentUserID(c)
	var isFavorited, inCart, subscribed bool
	if requesterID != 0 {
		isFavorited, _ = rc.relationRepo.Exists(repository.RelationFavorite, requesterID, recipe.ID)
		inCart, _ = rc.relationRepo.Exists(repository.RelationShoppingCart, requesterID, recipe.ID)
		subscribed, _ = rc.relationRepo.Exists(repository.RelationSubscription, requesterID, recipe.AuthorID)
	}
	return newRecipeResponse(recipe, subscribed, isFavorited, inCart)
}

// ListRecipes godoc
// @Summary List recipes
// @Description Paginated recipe listing with tag, author, favorite and cart filters
// @Tags recipes
// @Produce json
// @Param tags query []string false "Tag slugs" collectionFormat(multi)
// @Param author query int false "Author ID"
// @Param is_favorited query bool false "Only recipes favorited by the requester"
// @Param is_in_shopping_cart query bool false "Only recipes in the requester's cart"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{} "Recipes retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve recipes"
// @Router /api/recipes [get]
func (rc *RecipeController) ListRecipes(c *gin.Context) {
	requesterID := middleware.CurrentUserID(c)

	var filter repository.RecipeFilter
	if tags := c.QueryArray("tags"); len(tags) > 0 {
		filter.TagSlugs = tags
	}
	if author, err := strconv.ParseUint(c.Query("author"), 10, 32); err == nil {
		filter.AuthorID = uint(author)
	}
	// The boolean filters restrict nothing for anonymous requesters.
	if requesterID != 0 {
		if favorited, err := strconv.ParseBool(c.Query("is_favorited")); err == nil && favorited {
			filter.FavoritedBy = requesterID
		}
		if inCart, err := strconv.ParseBool(c.Query("is_in_shopping_cart")); err == nil && inCart {
			filter.InCartOf = requesterID
		}
	}

	page, limit := parsePagination(c)
	recipes, count, err := rc.recipeRepo.FindAll(filter, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve recipes",
			"error":   err.Error(),
		})
		return
	}

	results := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		results = append(results, rc.buildRecipeResponse(c, &recipes[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipes retrieved successfully",
		"data":    paginatedData(results, count, page, limit),
	})
}

// GetRecipeByID godoc
// @Summary Get a recipe by ID
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid recipe ID"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Router /api/recipes/{id} [get]
func (rc *RecipeController) GetRecipeByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	recipe, err := rc.recipeRepo.FindByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err, "Recipe not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe retrieved successfully",
		"data":    rc.buildRecipeResponse(c, recipe),
	})
}

// CreateRecipe godoc
// @Summary Create a recipe
// @Description Create a recipe with its tag set, ingredient amounts and base64 image as one atomic unit
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipe body controllers.recipeRequest true "Recipe data"
// @Success 201 {object} map[string]interface{} "Recipe created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 500 {object} map[string]interface{} "Failed to create recipe"
// @Security BearerAuth
// @Router /api/recipes [post]
func (rc *RecipeController) CreateRecipe(c *gin.Context) {
	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   "Image is required",
		})
		return
	}

	imagePath, err := utils.DecodeRecipeImage(req.Image)
	if err != nil {
		respondRepositoryError(c, err, "Failed to decode image")
		return
	}

	recipe := models.Recipe{
		AuthorID:    middleware.CurrentUserID(c),
		Name:        req.Name,
		Image:       imagePath,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	if err := rc.recipeRepo.CreateWithAssociations(&recipe, req.Tags, req.ingredientAmounts()); err != nil {
		respondRepositoryError(c, err, "Failed to create recipe")
		return
	}

	created, err := rc.recipeRepo.FindByID(recipe.ID)
	if err != nil {
		respondRepositoryError(c, err, "Failed to load created recipe")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Recipe created successfully",
		"data":    rc.buildRecipeResponse(c, created),
	})
}

// checkOwnership loads the recipe and verifies the requester is its author
// or an admin. Authorization runs before any mutation.
func (rc *RecipeController) checkOwnership(c *gin.Context, recipeID uint) (*models.Recipe, bool) {
	recipe, err := rc.recipeRepo.FindByID(recipeID)
	if err != nil {
		respondRepositoryError(c, err, "Recipe not found")
		return nil, false
	}

	requesterID := middleware.CurrentUserID(c)
	if recipe.AuthorID != requesterID {
		requester, err := rc.userRepo.FindByID(requesterID)
		if err != nil || !requester.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Not allowed",
				"error":   "Only the author can modify this recipe",
			})
			return nil, false
		}
	}

	return recipe, true
}

// UpdateRecipe godoc
// @Summary Update a recipe
// @Description Full replace of the recipe's fields and association sets; author or admin only
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Recipe ID"
// @Param recipe body controllers.recipeRequest true "Recipe data"
// @Success 200 {object} map[string]interface{} "Recipe updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Not allowed"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Security BearerAuth
// @Router /api/recipes/{id} [patch]
func (rc *RecipeController) UpdateRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	recipe, ok := rc.checkOwnership(c, uint(id))
	if !ok {
		return
	}

	var req recipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	imagePath := recipe.Image
	if req.Image != "" {
		imagePath, err = utils.DecodeRecipeImage(req.Image)
		if err != nil {
			respondRepositoryError(c, err, "Failed to decode image")
			return
		}
	}

	updated := models.Recipe{
		ID:          recipe.ID,
		AuthorID:    recipe.AuthorID,
		Name:        req.Name,
		Image:       imagePath,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}

	if err := rc.recipeRepo.UpdateWithAssociations(&updated, req.Tags, req.ingredientAmounts()); err != nil {
		respondRepositoryError(c, err, "Failed to update recipe")
		return
	}

	reloaded, err := rc.recipeRepo.FindByID(recipe.ID)
	if err != nil {
		respondRepositoryError(c, err, "Failed to load updated recipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe updated successfully",
		"data":    rc.buildRecipeResponse(c, reloaded),
	})
}

// DeleteRecipe godoc
// @Summary Delete a recipe
// @Description Delete a recipe; author or admin only. Cascades to favorites, carts and ingredient rows.
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} map[string]interface{} "Recipe deleted successfully"
// @Failure 403 {object} map[string]interface{} "Not allowed"
// @Failure 404 {object} map[string]interface{} "Recipe not found"
// @Security BearerAuth
// @Router /api/recipes/{id} [delete]
func (rc *RecipeController) DeleteRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, ok := rc.checkOwnership(c, uint(id)); !ok {
		return
	}

	if err := rc.recipeRepo.Delete(uint(id)); err != nil {
		respondRepositoryError(c, err, "Failed to delete recipe")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recipe deleted successfully",
		"data":    nil,
	})
}

// toggleRelation implements the shared POST/DELETE handling for the
// favorite and shopping cart endpoints.
func (rc *RecipeController) toggleRelation(c *gin.Context, kind repository.RelationKind, addedMsg string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recipe ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	recipe, err := rc.recipeRepo.FindByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err, "Recipe not found")
		return
	}

	requesterID := middleware.CurrentUserID(c)

	if c.Request.Method == http.MethodDelete {
		if err := rc.relationRepo.Remove(kind, requesterID, recipe.ID); err != nil {
			respondRepositoryError(c, err, "Nothing to remove")
			return
		}
		c.Status(http.StatusNoContent)
		return
	}

	if err := rc.relationRepo.Add(kind, requesterID, recipe.ID); err != nil {
		respondRepositoryError(c, err, "Already added")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": addedMsg,
		"data":    newRecipeShortResponse(recipe),
	})
}

// Favorite godoc
// @Summary Add or remove a favorite
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} map[string]interface{} "Recipe favorited"
// @Success 204 "Favorite removed"
// @Failure 404 {object} map[string]interface{} "Recipe or favorite not found"
// @Failure 409 {object} map[string]interface{} "Already favorited"
// @Security BearerAuth
// @Router /api/recipes/{id}/favorite [post]
func (rc *RecipeController) Favorite(c *gin.Context) {
	rc.toggleRelation(c, repository.RelationFavorite, "Recipe favorited")
}

// ShoppingCart godoc
// @Summary Add or remove a recipe from the shopping cart
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 201 {object} map[string]interface{} "Recipe added to shopping cart"
// @Success 204 "Recipe removed from shopping cart"
// @Failure 404 {object} map[string]interface{} "Recipe or cart entry not found"
// @Failure 409 {object} map[string]interface{} "Already in shopping cart"
// @Security BearerAuth
// @Router /api/recipes/{id}/shopping_cart [post]
func (rc *RecipeController) ShoppingCart(c *gin.Context) {
	rc.toggleRelation(c, repository.RelationShoppingCart, "Recipe added to shopping cart")
}

// DownloadShoppingCart godoc
// @Summary Download the aggregated shopping list
// @Description Plain-text attachment with one "name - amount unit" line per ingredient across all cart recipes
// @Tags recipes
// @Produce plain
// @Success 200 {string} string "Shopping list"
// @Failure 500 {object} map[string]interface{} "Failed to build shopping list"
// @Security BearerAuth
// @Router /api/recipes/download_shopping_cart [get]
func (rc *RecipeController) DownloadShoppingCart(c *gin.Context) {
	items, err := rc.shoppingRepo.Aggregate(middleware.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build shopping list",
			"error":   err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_list.txt"`)
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(utils.RenderShoppingList(items)))
}
