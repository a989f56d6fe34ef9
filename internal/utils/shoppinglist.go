package utils

import (
	"fmt"
	"strings"

	"foodgram/internal/repository"
)

// RenderShoppingList turns aggregated cart items into the plain-text
// attachment body, one "name - amount unit" line per item. Items arrive
// already ordered by the aggregation query; an empty cart renders as an
// empty string.
func RenderShoppingList(items []repository.ShoppingListItem) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "%s - %d %s\n", item.Name, item.Amount, item.MeasurementUnit)
	}
	return b.String()
}
