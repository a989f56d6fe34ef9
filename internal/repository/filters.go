package repository

import "gorm.io/gorm"

// RecipeFilter carries the read-side predicates for recipe listings. Every
// field present is AND-ed with the rest; zero values mean "no restriction".
// FavoritedBy and InCartOf stay zero for anonymous requesters, so the
// boolean filters never exclude anything without an authenticated actor.
type RecipeFilter struct {
	TagSlugs    []string
	AuthorID    uint
	FavoritedBy uint
	InCartOf    uint
}

func FilterByTagSlugs(slugs []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(slugs) == 0 {
			return db
		}
		return db.Where(
			"recipes.id IN (SELECT recipe_tags.recipe_id FROM recipe_tags"+
				" JOIN tags ON tags.id = recipe_tags.tag_id WHERE tags.slug IN ?)",
			slugs,
		)
	}
}

func FilterByAuthor(authorID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if authorID == 0 {
			return db
		}
		return db.Where("recipes.author_id = ?", authorID)
	}
}

func FilterFavoritedBy(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == 0 {
			return db
		}
		return db.Where(
			"recipes.id IN (SELECT recipe_id FROM favorites WHERE user_id = ?)",
			userID,
		)
	}
}

func FilterInCartOf(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if userID == 0 {
			return db
		}
		return db.Where(
			"recipes.id IN (SELECT recipe_id FROM shopping_carts WHERE user_id = ?)",
			userID,
		)
	}
}

// FilterByNamePrefix is the ingredient name predicate: a case-insensitive
// prefix match, never substring. ILIKE keeps it correct for non-ASCII names.
func FilterByNamePrefix(prefix string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if prefix == "" {
			return db
		}
		return db.Where("name ILIKE ?", prefix+"%")
	}
}

// Scopes expands the filter into its named predicates.
func (f RecipeFilter) Scopes() []func(*gorm.DB) *gorm.DB {
	return []func(*gorm.DB) *gorm.DB{
		FilterByTagSlugs(f.TagSlugs),
		FilterByAuthor(f.AuthorID),
		FilterFavoritedBy(f.FavoritedBy),
		FilterInCartOf(f.InCartOf),
	}
}
