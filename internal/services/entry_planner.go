package services

import "shopping-path-service/internal/domain"

// densityRatio is how much denser one end must be before it overrides
// continuity with the walker's current position.
const densityRatio = 1.5

// endCounts counts the items near each corridor end. Items without an end
// affinity span the whole corridor and count toward both.
func endCounts(items []locatedItem) (east, west int) {
	for _, it := range items {
		switch it.location.End {
		case domain.EndEast:
			east++
		case domain.EndWest:
			west++
		default:
			east++
			west++
		}
	}
	return east, west
}

// chooseEntry picks the entrance of one regular corridor given the walker's
// position, and returns the walker's position after walking it.
func chooseEntry(position domain.End, items []locatedItem) (entry, next domain.End) {
	east, west := endCounts(items)

	switch {
	case float64(east) > float64(west)*densityRatio:
		entry = domain.EndEast
	case float64(west) > float64(east)*densityRatio:
		entry = domain.EndWest
	default:
		// No clear density winner: keep walking from where we are.
		entry = position
	}

	return entry, entry.Opposite()
}

// planEntries decides the entrance of each corridor in visiting order.
//
// It is a greedy single pass: the walker starts at the east end, and each
// decision only sees the position left by the previous corridor. The side
// corridor is always entered from the east and does not move the walker.
// Groups must already be sorted by distance.
func planEntries(groups []corridorGroup, profile domain.StoreProfile) map[string]domain.End {
	entries := make(map[string]domain.End, len(groups))
	position := domain.EndEast

	for _, g := range groups {
		if profile.IsSpecial(g.corridor) {
			entries[g.corridor] = domain.EndEast
			continue
		}

		var entry domain.End
		entry, position = chooseEntry(position, g.items)
		entries[g.corridor] = entry
	}

	return entries
}
