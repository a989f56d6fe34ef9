package mocks

import (
	"foodgram/internal/models"
	"foodgram/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Shared MockTagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(tag *models.Tag) error {
	args := m.Called(tag)
	return args.Error(0)
}

func (m *MockTagRepository) FindAll() ([]models.Tag, error) {
	args := m.Called()
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByID(id uint) (*models.Tag, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) FindByIDs(ids []uint) ([]models.Tag, error) {
	args := m.Called(ids)
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) InvalidateCache() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockIngredientRepository
type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Create(ingredient *models.Ingredient) error {
	args := m.Called(ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) FindAll(namePrefix string) ([]models.Ingredient, error) {
	args := m.Called(namePrefix)
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByID(id uint) (*models.Ingredient, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) FindByIDs(ids []uint) ([]models.Ingredient, error) {
	args := m.Called(ids)
	return args.Get(0).([]models.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) InvalidateCache() error {
	args := m.Called()
	return args.Error(0)
}

// Shared MockRecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateWithAssociations(recipe *models.Recipe, tagIDs []uint, ingredients []repository.IngredientAmount) error {
	args := m.Called(recipe, tagIDs, ingredients)
	return args.Error(0)
}

func (m *MockRecipeRepository) UpdateWithAssociations(recipe *models.Recipe, tagIDs []uint, ingredients []repository.IngredientAmount) error {
	args := m.Called(recipe, tagIDs, ingredients)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(id uint) (*models.Recipe, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(filter repository.RecipeFilter, page, limit int) ([]models.Recipe, int64, error) {
	args := m.Called(filter, page, limit)
	return args.Get(0).([]models.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) FindByAuthor(authorID uint, limit int) ([]models.Recipe, error) {
	args := m.Called(authorID, limit)
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) CountByAuthor(authorID uint) (int64, error) {
	args := m.Called(authorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockRelationRepository
type MockRelationRepository struct {
	mock.Mock
}

func (m *MockRelationRepository) Add(kind repository.RelationKind, actorID, targetID uint) error {
	args := m.Called(kind, actorID, targetID)
	return args.Error(0)
}

func (m *MockRelationRepository) Remove(kind repository.RelationKind, actorID, targetID uint) error {
	args := m.Called(kind, actorID, targetID)
	return args.Error(0)
}

func (m *MockRelationRepository) Exists(kind repository.RelationKind, actorID, targetID uint) (bool, error) {
	args := m.Called(kind, actorID, targetID)
	return args.Bool(0), args.Error(1)
}

// Shared MockShoppingListRepository
type MockShoppingListRepository struct {
	mock.Mock
}

func (m *MockShoppingListRepository) Aggregate(userID uint) ([]repository.ShoppingListItem, error) {
	args := m.Called(userID)
	return args.Get(0).([]repository.ShoppingListItem), args.Error(1)
}

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(page, limit int) ([]models.User, int64, error) {
	args := m.Called(page, limit)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) FindSubscribedAuthors(userID uint, page, limit int) ([]models.User, int64, error) {
	args := m.Called(userID, page, limit)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}
