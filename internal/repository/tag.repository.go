package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"foodgram/internal/apperrors"
	"foodgram/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	tagCacheKeyPrefix = "tag:"
	allTagsCacheKey   = "tags:all"
	cacheExpiration   = 30 * time.Minute
)

type TagRepository interface {
	Create(tag *models.Tag) error
	FindAll() ([]models.Tag, error)
	FindByID(id uint) (*models.Tag, error)
	FindByIDs(ids []uint) ([]models.Tag, error)
	InvalidateCache() error
}

type tagRepository struct {
	db    *gorm.DB
	redis *redis.Client
	ctx   context.Context
}

func tagCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", tagCacheKeyPrefix, id)
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db, redis: nil, ctx: context.Background()}
}

func NewCachedTagRepository(db *gorm.DB, redisClient *redis.Client) TagRepository {
	return &tagRepository{db: db, redis: redisClient, ctx: context.Background()}
}

func (r *tagRepository) Create(tag *models.Tag) error {
	if err := r.db.Create(tag).Error; err != nil {
		log.Printf("Error creating tag: %v", err)
		return err
	}
	_ = r.InvalidateCache()
	return nil
}

func (r *tagRepository) FindAll() ([]models.Tag, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, allTagsCacheKey).Result()
		if err == nil {
			var tags []models.Tag
			if err := json.Unmarshal([]byte(cachedData), &tags); err == nil {
				return tags, nil
			}
		}
	}

	var tags []models.Tag
	if err := r.db.Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}

	if r.redis != nil {
		tagsJSON, err := json.Marshal(tags)
		if err == nil {
			if err := r.redis.Set(r.ctx, allTagsCacheKey, tagsJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache all tags: %v", err)
			}
		}
	}

	return tags, nil
}

func (r *tagRepository) FindByID(id uint) (*models.Tag, error) {
	if r.redis != nil {
		cachedData, err := r.redis.Get(r.ctx, tagCacheKey(id)).Result()
		if err == nil {
			var tag models.Tag
			if err := json.Unmarshal([]byte(cachedData), &tag); err == nil {
				return &tag, nil
			}
		}
	}

	var tag models.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tag %d", apperrors.ErrNotFound, id)
		}
		return nil, err
	}

	if r.redis != nil {
		tagJSON, err := json.Marshal(tag)
		if err == nil {
			if err := r.redis.Set(r.ctx, tagCacheKey(id), tagJSON, cacheExpiration).Err(); err != nil {
				log.Printf("Failed to cache tag %d: %v", id, err)
			}
		}
	}

	return &tag, nil
}

func (r *tagRepository) FindByIDs(ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *tagRepository) InvalidateCache() error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Del(r.ctx, allTagsCacheKey).Err()
}
