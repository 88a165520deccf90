package services

import (
	"cmp"
	"shopping-path-service/internal/domain"
	"slices"
)

// locatedItem is a requested name that resolved to a location.
type locatedItem struct {
	name     string
	location domain.Location
}

// corridorGroup holds the located items of one corridor, in request order.
type corridorGroup struct {
	corridor string
	items    []locatedItem
}

// groupByCorridor partitions located items by their stored corridor id.
// Groups are returned in order of first appearance.
func groupByCorridor(items []locatedItem) []corridorGroup {
	pos := make(map[string]int)
	groups := make([]corridorGroup, 0)

	for _, it := range items {
		c := it.location.Corridor
		i, ok := pos[c]
		if !ok {
			i = len(groups)
			pos[c] = i
			groups = append(groups, corridorGroup{corridor: c})
		}
		groups[i].items = append(groups[i].items, it)
	}

	return groups
}

// sortByDistance orders groups by distance from the start. Corridors at the
// same distance keep their first-appearance order.
func sortByDistance(groups []corridorGroup, profile domain.StoreProfile) {
	slices.SortStableFunc(groups, func(a, b corridorGroup) int {
		return cmp.Compare(profile.Distance(a.corridor), profile.Distance(b.corridor))
	})
}
