package repository

import (
	"foodgram/internal/models"

	"gorm.io/gorm"
)

// ShoppingListItem is one aggregated line of a user's shopping list.
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

type ShoppingListRepository interface {
	// Aggregate sums ingredient amounts across every recipe in the user's
	// cart, grouped by (name, unit) and ordered by name then unit. An
	// empty cart yields an empty slice.
	Aggregate(userID uint) ([]ShoppingListItem, error)
}

type shoppingListRepository struct {
	db *gorm.DB
}

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db}
}

func (r *shoppingListRepository) Aggregate(userID uint) ([]ShoppingListItem, error) {
	var items []ShoppingListItem
	err := r.db.Model(&models.IngredientRecipe{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(ingredient_recipes.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = ingredient_recipes.ingredient_id").
		Joins("JOIN shopping_carts ON shopping_carts.recipe_id = ingredient_recipes.recipe_id").
		Where("shopping_carts.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name, ingredients.measurement_unit").
		Scan(&items).Error
	return items, err
}
