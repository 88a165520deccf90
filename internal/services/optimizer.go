package services

import (
	"errors"
	"fmt"
	"shopping-path-service/internal/domain"
)

// Optimizer plans walks through one store layout.
//
// The plan is a fixed-order heuristic: corridors are visited by distance from
// the entrance, entrances are chosen greedily, and items are sorted by
// category and name. It does not search for a shortest path.
// An Optimizer is safe for concurrent use; its index is never mutated.
type Optimizer struct {
	index   *LocationIndex
	profile domain.StoreProfile
}

// NewOptimizer builds the location index for a flattened layout.
// The side corridor flag and distance of every entry are taken from profile,
// not from whatever profile the entries were stored with.
func NewOptimizer(entries []domain.ProductLocation, profile domain.StoreProfile) (*Optimizer, error) {
	if profile.SpecialCorridor == "" {
		return nil, errors.New("new optimizer: store profile has no special corridor")
	}

	idx, err := NewLocationIndex(applyProfile(entries, profile))
	if err != nil {
		return nil, fmt.Errorf("new optimizer: %w", err)
	}

	return &Optimizer{index: idx, profile: profile}, nil
}

func applyProfile(entries []domain.ProductLocation, profile domain.StoreProfile) []domain.ProductLocation {
	out := make([]domain.ProductLocation, len(entries))
	for i, e := range entries {
		e.Location.Special = profile.IsSpecial(e.Location.Corridor)
		e.Location.DistanceFromStart = profile.Distance(e.Location.Corridor)
		out[i] = e
	}
	return out
}

// Index exposes the read-only location index.
func (o *Optimizer) Index() *LocationIndex { return o.index }

// Profile returns the store profile the optimizer was built with.
func (o *Optimizer) Profile() domain.StoreProfile { return o.profile }

// Optimize orders a shopping list into corridor stops.
// Names that cannot be located are reported in NotFound, in request order.
func (o *Optimizer) Optimize(shoppingList []string) *domain.OptimizedPath {
	located := make([]locatedItem, 0, len(shoppingList))
	notFound := make([]string, 0)

	for _, name := range shoppingList {
		loc, ok := o.index.Resolve(name)
		if !ok {
			notFound = append(notFound, name)
			continue
		}
		located = append(located, locatedItem{name: name, location: loc})
	}

	groups := groupByCorridor(located)
	sortByDistance(groups, o.profile)
	entries := planEntries(groups, o.profile)

	return assemblePath(groups, entries, notFound)
}

// assemblePath turns planned corridor groups into the final itinerary.
func assemblePath(groups []corridorGroup, entries map[string]domain.End, notFound []string) *domain.OptimizedPath {
	corridors := make([]domain.CorridorPath, 0, len(groups))
	for _, g := range groups {
		if len(g.items) == 0 {
			continue
		}

		entry := entries[g.corridor]
		if entry == "" {
			entry = domain.EndEast
		}

		corridors = append(corridors, domain.CorridorPath{
			Name:  g.corridor,
			Entry: entry,
			Exit:  entry.Opposite(),
			Items: orderCorridorItems(g.items),
		})
	}

	return &domain.OptimizedPath{
		Corridors: corridors,
		NotFound:  notFound,
	}
}
