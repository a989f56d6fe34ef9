package controllers

import (
	"net/http"
	"strconv"

	"foodgram/internal/repository"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	repo repository.IngredientRepository
}

func NewIngredientController(repo repository.IngredientRepository) *IngredientController {
	return &IngredientController{repo: repo}
}

// ListIngredients godoc
// @Summary List ingredients
// @Description Retrieve ingredients, optionally narrowed by a case-insensitive name prefix
// @Tags ingredients
// @Produce json
// @Param name query string false "Name prefix filter"
// @Success 200 {object} map[string]interface{} "Ingredients retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve ingredients"
// @Router /api/ingredients [get]
func (ic *IngredientController) ListIngredients(c *gin.Context) {
	ingredients, err := ic.repo.FindAll(c.Query("name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve ingredients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredients retrieved successfully",
		"data":    ingredients,
	})
}

// GetIngredientByID godoc
// @Summary Get an ingredient by ID
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} map[string]interface{} "Ingredient retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid ingredient ID"
// @Failure 404 {object} map[string]interface{} "Ingredient not found"
// @Router /api/ingredients/{id} [get]
func (ic *IngredientController) GetIngredientByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ingredient ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	ingredient, err := ic.repo.FindByID(uint(id))
	if err != nil {
		respondRepositoryError(c, err, "Ingredient not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Ingredient retrieved successfully",
		"data":    ingredient,
	})
}
