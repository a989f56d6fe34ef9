package models

import "time"

const (
	// Bounds shared by cooking time and ingredient amounts.
	MinAmount = 1
	MaxAmount = 32000
)

type Recipe struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt   time.Time `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time `json:"-"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id" example:"1"`
	Author      User      `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Name        string    `gorm:"size:200;not null;uniqueIndex:idx_recipes_name_text" json:"name" example:"Борщ"`
	Image       string    `gorm:"size:255" json:"image" example:"recipes/images/3f2a.png"`
	Text        string    `gorm:"not null;uniqueIndex:idx_recipes_name_text" json:"text"`
	CookingTime int       `gorm:"not null" json:"cooking_time" example:"45"`

	Tags        []Tag              `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags"`
	Ingredients []IngredientRecipe `gorm:"foreignKey:RecipeID" json:"ingredients"`
}

// IngredientRecipe binds one ingredient to one recipe with a quantity.
// A recipe holds at most one row per ingredient.
type IngredientRecipe struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	RecipeID     uint       `gorm:"not null;uniqueIndex:idx_ingredient_recipe" json:"-"`
	IngredientID uint       `gorm:"not null;uniqueIndex:idx_ingredient_recipe" json:"id" example:"1"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe       Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Amount       int        `gorm:"not null" json:"amount" example:"100"`
}

func (IngredientRecipe) TableName() string {
	return "ingredient_recipes"
}
