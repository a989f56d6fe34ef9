package repository

import (
	"fmt"

	"foodgram/internal/apperrors"
	"foodgram/internal/models"

	"gorm.io/gorm"
)

// RelationKind names one of the three actor→target membership relations.
type RelationKind string

const (
	RelationFavorite     RelationKind = "favorite"
	RelationShoppingCart RelationKind = "shopping_cart"
	RelationSubscription RelationKind = "subscription"
)

// RelationRepository is the single implementation behind favorites,
// shopping carts and subscriptions. Each pair is a two-state toggle:
// Add on a present pair is a conflict, Remove on an absent pair is
// not-found. Duplicate user actions surface as errors rather than no-ops.
type RelationRepository interface {
	Add(kind RelationKind, actorID, targetID uint) error
	Remove(kind RelationKind, actorID, targetID uint) error
	Exists(kind RelationKind, actorID, targetID uint) (bool, error)
}

type relationRepository struct {
	db *gorm.DB
}

func NewRelationRepository(db *gorm.DB) RelationRepository {
	return &relationRepository{db}
}

// row returns a fresh model value for the kind with both columns set.
func (r *relationRepository) row(kind RelationKind, actorID, targetID uint) (interface{}, error) {
	switch kind {
	case RelationFavorite:
		return &models.Favorite{UserID: actorID, RecipeID: targetID}, nil
	case RelationShoppingCart:
		return &models.ShoppingCart{UserID: actorID, RecipeID: targetID}, nil
	case RelationSubscription:
		return &models.Subscription{UserID: actorID, AuthorID: targetID}, nil
	}
	return nil, fmt.Errorf("unknown relation kind %q", kind)
}

func (r *relationRepository) query(kind RelationKind, actorID, targetID uint) (*gorm.DB, error) {
	switch kind {
	case RelationFavorite:
		return r.db.Model(&models.Favorite{}).
			Where("user_id = ? AND recipe_id = ?", actorID, targetID), nil
	case RelationShoppingCart:
		return r.db.Model(&models.ShoppingCart{}).
			Where("user_id = ? AND recipe_id = ?", actorID, targetID), nil
	case RelationSubscription:
		return r.db.Model(&models.Subscription{}).
			Where("user_id = ? AND author_id = ?", actorID, targetID), nil
	}
	return nil, fmt.Errorf("unknown relation kind %q", kind)
}

func (r *relationRepository) Add(kind RelationKind, actorID, targetID uint) error {
	if kind == RelationSubscription && actorID == targetID {
		return fmt.Errorf("%w: cannot subscribe to yourself", apperrors.ErrValidation)
	}

	exists, err := r.Exists(kind, actorID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s already exists", apperrors.ErrConflict, kind)
	}

	row, err := r.row(kind, actorID, targetID)
	if err != nil {
		return err
	}
	return r.db.Create(row).Error
}

func (r *relationRepository) Remove(kind RelationKind, actorID, targetID uint) error {
	query, err := r.query(kind, actorID, targetID)
	if err != nil {
		return err
	}

	row, err := r.row(kind, actorID, targetID)
	if err != nil {
		return err
	}

	result := query.Delete(row)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: no %s to remove", apperrors.ErrNotFound, kind)
	}
	return nil
}

func (r *relationRepository) Exists(kind RelationKind, actorID, targetID uint) (bool, error) {
	query, err := r.query(kind, actorID, targetID)
	if err != nil {
		return false, err
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
