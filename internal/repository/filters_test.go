package repository

import (
	"testing"

	"foodgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormtests "gorm.io/gorm/utils/tests"
)

// dryRunDB builds queries without a live database so each predicate's SQL
// can be inspected.
func dryRunDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(gormtests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func recipeSQL(t *testing.T, db *gorm.DB, filter RecipeFilter) (string, []interface{}) {
	var recipes []models.Recipe
	stmt := db.Model(&models.Recipe{}).Scopes(filter.Scopes()...).Find(&recipes).Statement
	return stmt.SQL.String(), stmt.Vars
}

func TestRecipeFilterNoPredicates(t *testing.T) {
	sql, vars := recipeSQL(t, dryRunDB(t), RecipeFilter{})

	assert.NotContains(t, sql, "recipe_tags")
	assert.NotContains(t, sql, "favorites")
	assert.NotContains(t, sql, "shopping_carts")
	assert.NotContains(t, sql, "author_id")
	assert.Empty(t, vars)
}

func TestRecipeFilterByTagSlugs(t *testing.T) {
	sql, vars := recipeSQL(t, dryRunDB(t), RecipeFilter{TagSlugs: []string{"breakfast", "dinner"}})

	assert.Contains(t, sql, "recipe_tags")
	assert.Contains(t, sql, "tags.slug IN")
	assert.Contains(t, vars, "breakfast")
	assert.Contains(t, vars, "dinner")
}

func TestRecipeFilterByAuthor(t *testing.T) {
	sql, vars := recipeSQL(t, dryRunDB(t), RecipeFilter{AuthorID: 5})

	assert.Contains(t, sql, "recipes.author_id")
	assert.Contains(t, vars, uint(5))
}

func TestRecipeFilterFavoritedBy(t *testing.T) {
	sql, vars := recipeSQL(t, dryRunDB(t), RecipeFilter{FavoritedBy: 7})

	assert.Contains(t, sql, "favorites")
	assert.Contains(t, vars, uint(7))
}

func TestRecipeFilterFavoritedByAnonymousIsNoRestriction(t *testing.T) {
	// Zero actor means no restriction rather than an error or empty set.
	sql, _ := recipeSQL(t, dryRunDB(t), RecipeFilter{FavoritedBy: 0, InCartOf: 0})

	assert.NotContains(t, sql, "favorites")
	assert.NotContains(t, sql, "shopping_carts")
}

func TestRecipeFilterConjunction(t *testing.T) {
	filter := RecipeFilter{
		TagSlugs:    []string{"supper"},
		AuthorID:    3,
		FavoritedBy: 4,
		InCartOf:    4,
	}
	sql, vars := recipeSQL(t, dryRunDB(t), filter)

	assert.Contains(t, sql, "recipe_tags")
	assert.Contains(t, sql, "recipes.author_id")
	assert.Contains(t, sql, "favorites")
	assert.Contains(t, sql, "shopping_carts")
	assert.Len(t, vars, 4)
}

func TestIngredientNamePrefixFilter(t *testing.T) {
	db := dryRunDB(t)

	var ingredients []models.Ingredient
	stmt := db.Model(&models.Ingredient{}).
		Scopes(FilterByNamePrefix("ап")).
		Find(&ingredients).Statement

	// Prefix match, not substring: the wildcard trails the query only.
	assert.Contains(t, stmt.SQL.String(), "name ILIKE")
	assert.Contains(t, stmt.Vars, "ап%")
}

func TestIngredientNamePrefixFilterEmpty(t *testing.T) {
	db := dryRunDB(t)

	var ingredients []models.Ingredient
	stmt := db.Model(&models.Ingredient{}).
		Scopes(FilterByNamePrefix("")).
		Find(&ingredients).Statement

	assert.NotContains(t, stmt.SQL.String(), "ILIKE")
}
