package services

import (
	"cmp"
	"shopping-path-service/internal/domain"
	"slices"
)

// orderCorridorItems returns the visiting order inside one corridor:
// categories ascending, then item names ascending within a category.
// The entry direction does not reorder items; it only selected the entrance.
func orderCorridorItems(items []locatedItem) []domain.ShoppingItem {
	out := make([]domain.ShoppingItem, 0, len(items))
	for _, it := range items {
		out = append(out, domain.ShoppingItem{
			Name:     it.name,
			Location: it.location,
			Category: it.location.Category,
		})
	}

	slices.SortStableFunc(out, func(a, b domain.ShoppingItem) int {
		if c := cmp.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	return out
}
