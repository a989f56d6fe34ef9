package utils

import (
	"testing"

	"foodgram/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestRenderShoppingList(t *testing.T) {
	items := []repository.ShoppingListItem{
		{Name: "Salt", MeasurementUnit: "g", Amount: 8},
		{Name: "Milk", MeasurementUnit: "ml", Amount: 500},
	}

	assert.Equal(t, "Salt - 8 g\nMilk - 500 ml\n", RenderShoppingList(items))
}

func TestRenderShoppingListEmptyCart(t *testing.T) {
	assert.Equal(t, "", RenderShoppingList(nil))
	assert.Equal(t, "", RenderShoppingList([]repository.ShoppingListItem{}))
}

func TestRenderShoppingListUnicode(t *testing.T) {
	items := []repository.ShoppingListItem{
		{Name: "Соль", MeasurementUnit: "г", Amount: 8},
	}

	assert.Equal(t, "Соль - 8 г\n", RenderShoppingList(items))
}
