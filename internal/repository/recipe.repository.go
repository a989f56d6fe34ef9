package repository

import (
	"errors"
	"fmt"
	"log"

	"foodgram/internal/apperrors"
	"foodgram/internal/models"

	"gorm.io/gorm"
)

// IngredientAmount is one {ingredient id, amount} pair of a recipe submission.
type IngredientAmount struct {
	ID     uint
	Amount int
}

type RecipeRepository interface {
	// CreateWithAssociations persists the recipe together with its full tag
	// set and ingredient-quantity set as one transaction. A reader never
	// observes the recipe without its associations.
	CreateWithAssociations(recipe *models.Recipe, tagIDs []uint, ingredients []IngredientAmount) error
	// UpdateWithAssociations replaces the recipe's scalar fields and its
	// entire association sets. Clear-then-insert runs inside one
	// transaction; last writer wins across concurrent updates.
	UpdateWithAssociations(recipe *models.Recipe, tagIDs []uint, ingredients []IngredientAmount) error
	FindByID(id uint) (*models.Recipe, error)
	FindAll(filter RecipeFilter, page, limit int) ([]models.Recipe, int64, error)
	FindByAuthor(authorID uint, limit int) ([]models.Recipe, error)
	CountByAuthor(authorID uint) (int64, error)
	Delete(id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db}
}

// ValidateAssociations checks a submission's tag and ingredient lists before
// anything touches the store: both lists must be non-empty, ingredient ids
// must not repeat, and every amount must stay within bounds.
func ValidateAssociations(tagIDs []uint, ingredients []IngredientAmount) error {
	if len(tagIDs) == 0 {
		return fmt.Errorf("%w: at least one tag is required", apperrors.ErrValidation)
	}
	if len(ingredients) == 0 {
		return fmt.Errorf("%w: at least one ingredient is required", apperrors.ErrValidation)
	}
	seen := make(map[uint]struct{}, len(ingredients))
	for _, ing := range ingredients {
		if _, ok := seen[ing.ID]; ok {
			return fmt.Errorf("%w: ingredient %d listed more than once", apperrors.ErrValidation, ing.ID)
		}
		seen[ing.ID] = struct{}{}
		if ing.Amount < models.MinAmount || ing.Amount > models.MaxAmount {
			return fmt.Errorf("%w: amount for ingredient %d must be between %d and %d",
				apperrors.ErrValidation, ing.ID, models.MinAmount, models.MaxAmount)
		}
	}
	return nil
}

// ValidateCookingTime bounds-checks a recipe's cooking time.
func ValidateCookingTime(minutes int) error {
	if minutes < models.MinAmount || minutes > models.MaxAmount {
		return fmt.Errorf("%w: cooking_time must be between %d and %d",
			apperrors.ErrValidation, models.MinAmount, models.MaxAmount)
	}
	return nil
}

// resolveAssociations verifies every referenced tag and ingredient exists
// and returns the tag rows needed for the many-to-many replace.
func (r *recipeRepository) resolveAssociations(tx *gorm.DB, tagIDs []uint, ingredients []IngredientAmount) ([]models.Tag, error) {
	var tags []models.Tag
	if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, fmt.Errorf("%w: unknown tag id in %v", apperrors.ErrValidation, tagIDs)
	}

	ingredientIDs := make([]uint, 0, len(ingredients))
	for _, ing := range ingredients {
		ingredientIDs = append(ingredientIDs, ing.ID)
	}
	var count int64
	if err := tx.Model(&models.Ingredient{}).Where("id IN ?", ingredientIDs).Count(&count).Error; err != nil {
		return nil, err
	}
	if count != int64(len(ingredientIDs)) {
		return nil, fmt.Errorf("%w: unknown ingredient id in %v", apperrors.ErrValidation, ingredientIDs)
	}

	return tags, nil
}

func (r *recipeRepository) checkUniqueNameText(name, text string, excludeID uint) error {
	var count int64
	query := r.db.Model(&models.Recipe{}).Where("name = ? AND text = ?", name, text)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: a recipe with the same name and text already exists", apperrors.ErrValidation)
	}
	return nil
}

func (r *recipeRepository) CreateWithAssociations(recipe *models.Recipe, tagIDs []uint, ingredients []IngredientAmount) error {
	if err := ValidateAssociations(tagIDs, ingredients); err != nil {
		return err
	}
	if err := ValidateCookingTime(recipe.CookingTime); err != nil {
		return err
	}
	if err := r.checkUniqueNameText(recipe.Name, recipe.Text, 0); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		tags, err := r.resolveAssociations(tx, tagIDs, ingredients)
		if err != nil {
			return err
		}

		if err := tx.Omit("Tags", "Ingredients").Create(recipe).Error; err != nil {
			log.Printf("Error creating recipe: %v", err)
			return err
		}

		rows := make([]models.IngredientRecipe, 0, len(ingredients))
		for _, ing := range ingredients {
			rows = append(rows, models.IngredientRecipe{
				RecipeID:     recipe.ID,
				IngredientID: ing.ID,
				Amount:       ing.Amount,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		return tx.Model(recipe).Association("Tags").Replace(&tags)
	})
}

func (r *recipeRepository) UpdateWithAssociations(recipe *models.Recipe, tagIDs []uint, ingredients []IngredientAmount) error {
	if err := ValidateAssociations(tagIDs, ingredients); err != nil {
		return err
	}
	if err := ValidateCookingTime(recipe.CookingTime); err != nil {
		return err
	}
	if err := r.checkUniqueNameText(recipe.Name, recipe.Text, recipe.ID); err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		tags, err := r.resolveAssociations(tx, tagIDs, ingredients)
		if err != nil {
			return err
		}

		// Full replace: drop the old sets before inserting the new ones.
		if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.IngredientRecipe{}).Error; err != nil {
			return err
		}

		if err := tx.Model(recipe).Select("Name", "Image", "Text", "CookingTime").Updates(recipe).Error; err != nil {
			return err
		}

		rows := make([]models.IngredientRecipe, 0, len(ingredients))
		for _, ing := range ingredients {
			rows = append(rows, models.IngredientRecipe{
				RecipeID:     recipe.ID,
				IngredientID: ing.ID,
				Amount:       ing.Amount,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}

		return tx.Model(recipe).Association("Tags").Replace(&tags)
	})
}

func (r *recipeRepository) FindByID(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Preload("Author").
		First(&recipe, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindAll(filter RecipeFilter, page, limit int) ([]models.Recipe, int64, error) {
	var count int64
	if err := r.db.Model(&models.Recipe{}).Scopes(filter.Scopes()...).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := r.db.Model(&models.Recipe{}).Scopes(filter.Scopes()...).
		Preload("Tags").
		Preload("Ingredients.Ingredient").
		Preload("Author").
		Order("recipes.created_at DESC").
		Order("recipes.id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&recipes).Error
	return recipes, count, err
}

func (r *recipeRepository) FindByAuthor(authorID uint, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	query := r.db.Where("author_id = ?", authorID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Recipe{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *recipeRepository) Delete(id uint) error {
	// Cascades clean up ingredient_recipes, favorites, shopping_carts and
	// recipe_tags rows at the store level.
	result := r.db.Delete(&models.Recipe{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: recipe %d", apperrors.ErrNotFound, id)
	}
	return nil
}
