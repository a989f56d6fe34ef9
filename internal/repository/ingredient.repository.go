package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"foodgram/internal/apperrors"
	"foodgram/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const allIngredientsCacheKey = "ingredients:all"

type IngredientRepository interface {
	Create(ingredient *models.Ingredient) error
	// FindAll returns ingredients whose name starts with namePrefix,
	// case-insensitively. An empty prefix returns everything.
	FindAll(namePrefix string) ([]models.Ingredient, error)
	FindByID(id uint) (*models.Ingredient, error)
	FindByIDs(ids []uint) ([]models.Ingredient, error)
	InvalidateCache() error
}

type ingredientRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db, redis: nil, ctx: context.Background()}
}

func NewCachedIngredientRepository(db *gorm.DB, redisClient *redis.Client) IngredientRepository {
	return &ingredientRepository{db: db, redis: redisClient, ctx: context.Background()}
}

func (r *ingredientRepository) Create(ingredient *models.Ingredient) error {
	if err := r.db.Create(ingredient).Error; err != nil {
		log.Printf("Error creating ingredient: %v", err)
		return err
	}
	_ = r.InvalidateCache()
	return nil
}

func (r *ingredientRepository) FindAll(namePrefix string) ([]models.Ingredient, error) {
	// Only the unfiltered listing is worth caching.
	if namePrefix == "" && r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, allIngredientsCacheKey).Result()
		if err == nil {
			var ingredients []models.Ingredient
			if err := json.Unmarshal([]byte(cachedData), &ingredients); err == nil {
				return ingredients, nil
			}
		}
	}

	var ingredients []models.Ingredient
	if err := r.db.Scopes(FilterByNamePrefix(namePrefix)).Order("id").Find(&ingredients).Error; err != nil {
		return nil, err
	}

	if namePrefix == "" && r.redis != nil {
		ingredientsJSON, err := json.Marshal(ingredients)
		if err == nil {
			if err := r.redis.Set(r.ctx, allIngredientsCacheKey, ingredientsJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache all ingredients: %v", err)
			}
		}
	}

	return ingredients, nil
}

func (r *ingredientRepository) FindByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := r.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: ingredient %d", apperrors.ErrNotFound, id)
		}
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) FindByIDs(ids []uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := r.db.Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) InvalidateCache() error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, allIngredientsCacheKey).Err()
}
